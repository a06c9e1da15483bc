package repositories

import (
	"context"

	"github.com/google/uuid"

	"auth-service/internal/domain/entities"
)

// UserRepository is the credential store contract. Create must rely on the
// store's own unique index for email and return domain.ErrDuplicateEmail on
// a violation; callers never pre-check existence before writing. The find
// methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}
