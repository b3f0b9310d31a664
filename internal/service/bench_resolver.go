package service

import "github.com/bagdasarian/auction-draft/internal/domain"

// ResolveBenchSlot выбирает слот скамейки для запроса BENCH по текущим назначениям команды.
// Возвращает BEN{n+1}, где n - число занятых слотов скамейки, или ErrBenchFull.
func ResolveBenchSlot(assignments []*domain.DraftAssignment) (domain.RosterSlot, error) {
	count := 0
	for _, a := range assignments {
		if a != nil && a.Slot.IsBench() {
			count++
		}
	}

	if count >= domain.BenchSize {
		return "", domain.ErrBenchFull
	}

	return domain.BenchSlot(count + 1)
}
