package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"orgevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `e.id, e.title, e.description, e.event_date, e.event_time, e.location,
			e.event_type_id, t.name, e.created_by, e.created_at, e.updated_at`

const selectEvents = `
		SELECT ` + eventColumns + `
		FROM events e
		INNER JOIN event_types t ON t.id = e.event_type_id
`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location,
		&e.EventTypeID, &e.EventType, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, event_date, event_time, location, event_type_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.Time, e.Location, e.EventTypeID, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := selectEvents + `
		WHERE e.id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// List returns events matching every non-empty filter field. EventType names are
// not matched here; callers resolve them to EventTypeID first.
func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var where []string
	var args []any
	n := 1
	if filter.Date != "" {
		where = append(where, fmt.Sprintf("e.event_date = $%d", n))
		args = append(args, filter.Date)
		n++
	}
	if filter.Location != "" {
		where = append(where, fmt.Sprintf("e.location = $%d", n))
		args = append(args, filter.Location)
		n++
	}
	if filter.EventTypeID != "" {
		where = append(where, fmt.Sprintf("e.event_type_id = $%d", n))
		args = append(args, filter.EventTypeID)
		n++
	}
	query := selectEvents
	if len(where) > 0 {
		query += "		WHERE " + strings.Join(where, " AND ") + "\n"
	}
	query += `		ORDER BY e.created_at DESC`
	return r.list(ctx, query, args...)
}

func (r *eventRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}
	query := selectEvents + `
		WHERE e.id = ANY($1)
		ORDER BY e.event_date, e.event_time, e.id
	`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *eventRepository) CountByCreator(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM events WHERE created_by = $1`
	var n int
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update applies the non-nil fields of upd and returns the updated event.
// created_by is never part of the SET list.
func (r *eventRepository) Update(ctx context.Context, eventID string, upd domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	set := func(column string, v *string) {
		if v == nil {
			return
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, *v)
		n++
	}
	set("title", upd.Title)
	set("description", upd.Description)
	set("event_date", upd.Date)
	set("event_time", upd.Time)
	set("location", upd.Location)
	set("event_type_id", upd.EventTypeID)
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, eventID)
	}
	args = append(args, eventID)
	query := fmt.Sprintf(`
		WITH e AS (
			UPDATE events SET %s
			WHERE id = $%d
			RETURNING *
		)
		SELECT %s
		FROM e
		INNER JOIN event_types t ON t.id = e.event_type_id
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrInvalidReference
		}
		return nil, err
	}
	return e, nil
}
