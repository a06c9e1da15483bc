package interfaces

import (
	"context"

	"github.com/google/uuid"

	"auth-service/internal/application/command"
	"auth-service/internal/application/common"
)

type AuthService interface {
	Register(ctx context.Context, cmd *command.RegisterUserCommand) (*common.AuthResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*common.AuthResult, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*common.UserResult, error)
}
