package domain

import "fmt"

// Коды ошибок домена. Транспортный слой сопоставляет их со статусами ответа.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInsufficientBudget = "INSUFFICIENT_BUDGET"
	CodeValidation         = "VALIDATION_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is() по коду ошибки
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrConflict - операция конфликтует с текущим составом команды
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "conflict",
	}

	// ErrSlotOccupied - слот состава уже занят
	ErrSlotOccupied = &DomainError{
		Code:    CodeConflict,
		Message: "slot occupied",
	}

	// ErrBenchFull - все шесть слотов скамейки заняты
	ErrBenchFull = &DomainError{
		Code:    CodeConflict,
		Message: "Bench is full",
	}

	// ErrPlayerOnRoster - игрок уже есть в составе этой команды
	ErrPlayerOnRoster = &DomainError{
		Code:    CodeConflict,
		Message: "player already on roster",
	}

	// ErrInsufficientBudget - цена превышает остаток бюджета
	ErrInsufficientBudget = &DomainError{
		Code:    CodeInsufficientBudget,
		Message: "not enough budget remaining",
	}

	// ErrValidation - некорректные входные данные
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_ERROR с описанием проблемы
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}
