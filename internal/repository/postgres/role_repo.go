package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"orgevents/internal/domain"
)

type roleRepository struct {
	DB *sql.DB
}

func NewRoleRepository(db *sql.DB) domain.RoleRepository {
	return &roleRepository{DB: db}
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE name = $1
	`
	role := &domain.Role{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) ListByNames(ctx context.Context, names []string) ([]*domain.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE name = ANY($1)
		ORDER BY name
	`
	return r.list(ctx, query, pq.Array(names))
}

func (r *roleRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		INNER JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`
	return r.list(ctx, query, userID)
}

func (r *roleRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Role, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]*domain.Role, 0)
	for rows.Next() {
		role := &domain.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepository) EnsureNames(ctx context.Context, names []string) (int, error) {
	return ensureNames(ctx, r.DB, "roles", names)
}

func (r *roleRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.DB, "roles")
}

// ensureNames inserts the missing names into a (id, name UNIQUE) reference table.
// Concurrent callers never produce duplicates; the count of rows actually inserted is returned.
func ensureNames(ctx context.Context, db *sql.DB, table string, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (name)
		SELECT unnest($1::text[])
		ON CONFLICT (name) DO NOTHING
	`, table)
	result, err := db.ExecContext(ctx, query, pq.Array(names))
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func countRows(ctx context.Context, db *sql.DB, table string) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
