package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-api-boilerplate/internal/domain/entity"
)

// ErrNotFound is returned by lookups when no user matches.
var ErrNotFound = errors.New("user not found")

// UserRepository defines the interface for user persistence. Any other
// error than ErrNotFound is treated as fatal by the application layer
// and is never retried or reinterpreted.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
