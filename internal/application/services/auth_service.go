package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"auth-service/internal/application/command"
	"auth-service/internal/application/common"
	"auth-service/internal/application/interfaces"
	"auth-service/internal/application/mapper"
	"auth-service/internal/domain"
	"auth-service/internal/domain/entities"
	"auth-service/internal/domain/repositories"
	"auth-service/internal/infrastructure"
)

type AuthService struct {
	userRepo     repositories.UserRepository
	jwtService   *infrastructure.JWTService
	profileCache *infrastructure.ProfileCache
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	profileCache *infrastructure.ProfileCache,
) interfaces.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		profileCache: profileCache,
	}
}

// Register hashes the password, persists the user and issues a token.
// Uniqueness of the email is left entirely to the store's unique index:
// two concurrent registrations with the same email race at the insert, and
// the loser gets domain.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*common.AuthResult, error) {
	hash, err := infrastructure.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := entities.NewUser(cmd.Email, hash, cmd.FirstName, cmd.LastName)

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(created.ID.String(), created.Email)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &common.AuthResult{
		User:  mapper.NewUserResultFromEntity(created),
		Token: token,
	}, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password both return domain.ErrInvalidCredentials so the response
// never reveals which factor failed.
func (s *AuthService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*common.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := infrastructure.CheckPassword(cmd.Password, user.PasswordHash); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &common.AuthResult{
		User:  mapper.NewUserResultFromEntity(user),
		Token: token,
	}, nil
}

// GetProfile returns the public view of a user, consulting the cache first.
// Tokens are stateless, so the account can be gone by the time its token is
// presented; that surfaces as domain.ErrUserNotFound.
func (s *AuthService) GetProfile(ctx context.Context, id uuid.UUID) (*common.UserResult, error) {
	if s.profileCache != nil {
		cached, err := s.profileCache.Get(ctx, id.String())
		if err != nil {
			log.Printf("profile cache read failed: %v", err)
		}
		if cached != nil {
			return mapper.NewUserResultFromEntity(cached), nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if s.profileCache != nil {
		if err := s.profileCache.Set(ctx, id.String(), user); err != nil {
			log.Printf("profile cache write failed: %v", err)
		}
	}

	return mapper.NewUserResultFromEntity(user), nil
}
