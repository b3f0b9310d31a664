// Package events доставляет события драфта подписчикам после коммита.
package events

import (
	"context"
	"errors"

	"github.com/bagdasarian/auction-draft/internal/domain"
	"github.com/google/uuid"
)

type Publisher interface {
	Publish(ctx context.Context, event *domain.DraftEvent) error
}

// Fanout присваивает событию ID и передает его всем издателям.
// Ошибка одного издателя не мешает остальным.
type Fanout struct {
	publishers []Publisher
}

func NewFanout(publishers ...Publisher) *Fanout {
	return &Fanout{publishers: publishers}
}

func (f *Fanout) Publish(ctx context.Context, event *domain.DraftEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
