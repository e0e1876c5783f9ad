package repository

import (
	"context"
	"sync"
	"time"

	"slotpoll/modules/event/entity"

	"github.com/google/uuid"
)

// MemoryEventRepository keeps events in a mutex-guarded map. It backs
// the tests and serializes writers, which is all the concurrency model
// asks for.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]*entity.Event
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{
		events: make(map[string]*entity.Event),
	}
}

func (r *MemoryEventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := event.Clone()
	stored.ID = uuid.New()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.events[stored.Code] = stored
	return stored.Clone(), nil
}

func (r *MemoryEventRepository) LoadByCode(ctx context.Context, code string) (*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[code]
	if !ok {
		return nil, nil
	}
	return event.Clone(), nil
}

func (r *MemoryEventRepository) Save(ctx context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.events[event.Code]
	if !ok {
		r.events[event.Code] = event.Clone()
		r.events[event.Code].UpdatedAt = time.Now()
		event.UpdatedAt = r.events[event.Code].UpdatedAt
		return nil
	}

	stored.Participants = event.Clone().Participants
	stored.UpdatedAt = time.Now()
	event.UpdatedAt = stored.UpdatedAt
	return nil
}
