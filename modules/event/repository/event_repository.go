package repository

import (
	"context"
	"database/sql"

	"slotpoll/core/database"
	"slotpoll/core/logger"
	"slotpoll/modules/event/entity"
)

// EventRepositoryInterface is the persistence contract: the core only
// ever resolves an event by its public code and writes the full record
// back. Concurrent submissions resolve as last writer wins.
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	LoadByCode(ctx context.Context, code string) (*entity.Event, error)
	Save(ctx context.Context, event *entity.Event) error
}

// EventRepository handles event database operations
type EventRepository struct {
	DB database.IDatabase
}

// NewEventRepository creates a new repository instance
func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (code, name, description, date_start, date_end, time_start, time_end,
		                    allowed_participants, participants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, code, name, description, date_start, date_end, time_start, time_end,
		          allowed_participants, participants, created_at, updated_at
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Code, event.Name, event.Description,
		event.DateStart, event.DateEnd, event.TimeStart, event.TimeEnd,
		event.AllowedParticipants, event.Participants)

	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) LoadByCode(ctx context.Context, code string) (*entity.Event, error) {
	query := `
		SELECT id, code, name, description, date_start, date_end, time_start, time_end,
		       allowed_participants, participants, created_at, updated_at
		FROM events WHERE code = $1
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:LoadByCode", err)
		return nil, err
	}

	return &event, nil
}

// Save writes the participants document back. The single UPDATE keeps
// the write atomic; a racing submission simply wins or loses whole.
func (r *EventRepository) Save(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET participants = $2, updated_at = NOW()
		WHERE code = $1
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(ctx, query, event.Code, event.Participants).Scan(&event.UpdatedAt)
	if err != nil {
		logger.Error("EventRepository:Save", err)
		return err
	}

	return nil
}
