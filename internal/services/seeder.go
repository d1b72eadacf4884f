package services

import (
	"context"
	"fmt"
	"log/slog"

	"orgevents/internal/domain"
)

// referenceTable is the part of a name-keyed reference repository the seeder needs.
type referenceTable interface {
	EnsureNames(ctx context.Context, names []string) (int, error)
	Count(ctx context.Context) (int64, error)
}

type seeder struct {
	roleRepo      domain.RoleRepository
	eventTypeRepo domain.EventTypeRepository
	logger        *slog.Logger
}

// NewSeeder creates a Seeder for the fixed roles and event types.
func NewSeeder(roleRepo domain.RoleRepository, eventTypeRepo domain.EventTypeRepository, logger *slog.Logger) domain.Seeder {
	return &seeder{
		roleRepo:      roleRepo,
		eventTypeRepo: eventTypeRepo,
		logger:        logger,
	}
}

// Seed inserts any missing roles and event types. Running it again inserts nothing.
func (s *seeder) Seed(ctx context.Context) error {
	if err := s.seed(ctx, "roles", s.roleRepo, domain.DefaultRoles); err != nil {
		return err
	}
	return s.seed(ctx, "event_types", s.eventTypeRepo, domain.DefaultEventTypes)
}

func (s *seeder) seed(ctx context.Context, table string, repo referenceTable, names []string) error {
	before, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	inserted, err := repo.EnsureNames(ctx, names)
	if err != nil {
		return fmt.Errorf("seed %s: %w", table, err)
	}
	s.logger.InfoContext(ctx, "reference data seeded", "table", table, "existing", before, "inserted", inserted)
	return nil
}
