package services

import (
	"context"
	"errors"
	"fmt"

	"orgevents/internal/domain"
)

type authorizer struct {
	userRepo domain.UserRepository
}

// NewAuthorizer creates an Authorizer that reads role membership from the user store.
func NewAuthorizer(userRepo domain.UserRepository) domain.Authorizer {
	return &authorizer{userRepo: userRepo}
}

func (a *authorizer) RequireRole(ctx context.Context, userID string, roles ...string) error {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("get user: %w", err)
	}
	held := make(map[string]struct{}, len(user.Roles))
	for _, r := range user.Roles {
		held[r] = struct{}{}
	}
	for _, role := range roles {
		if _, ok := held[role]; ok {
			return nil
		}
	}
	return domain.ErrForbidden
}

func (a *authorizer) RequireOwnership(userID, createdBy string) error {
	if userID == "" || userID != createdBy {
		return domain.ErrForbidden
	}
	return nil
}
