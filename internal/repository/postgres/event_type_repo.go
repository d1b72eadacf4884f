package postgres

import (
	"context"
	"database/sql"
	"errors"

	"orgevents/internal/domain"
)

type eventTypeRepository struct {
	DB *sql.DB
}

func NewEventTypeRepository(db *sql.DB) domain.EventTypeRepository {
	return &eventTypeRepository{DB: db}
}

func (r *eventTypeRepository) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	query := `
		SELECT id, name
		FROM event_types
		WHERE name = $1
	`
	t := &domain.EventType{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *eventTypeRepository) EnsureNames(ctx context.Context, names []string) (int, error) {
	return ensureNames(ctx, r.DB, "event_types", names)
}

func (r *eventTypeRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.DB, "event_types")
}
