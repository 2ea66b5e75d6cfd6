package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// DuplicateError reports a unique field already held by another registration.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return e.Field + " already exists"
}

// Repository describes user persistence needs from use cases.
// List methods return registrations newest first.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	ListByStatus(ctx context.Context, status string) ([]User, error)
	GetByID(ctx context.Context, userID string) (User, bool, error)
	Create(ctx context.Context, item User) error
	Update(ctx context.Context, item User) error
	Delete(ctx context.Context, userID string) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
