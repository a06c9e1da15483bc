package postgres

import (
	"time"

	"github.com/google/uuid"

	"auth-service/internal/domain/entities"
)

// UserModel is the gorm mapping for the users table. The unique index on
// email is what enforces the duplicate-registration invariant; the service
// never checks existence before writing.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email           string    `gorm:"uniqueIndex;not null"`
	Password        string
	FirstName       string
	LastName        string
	GoogleID        *string
	IsEmailVerified bool `gorm:"default:false"`
	IsGoogleUser    bool `gorm:"default:false"`
	IsActive        bool `gorm:"default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func modelFromEntity(user *entities.User) *UserModel {
	m := &UserModel{
		ID:              user.ID,
		Email:           user.Email,
		Password:        user.PasswordHash,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		IsEmailVerified: user.IsEmailVerified,
		IsGoogleUser:    user.IsGoogleUser,
		IsActive:        user.IsActive,
	}
	if user.GoogleID != "" {
		m.GoogleID = &user.GoogleID
	}
	return m
}

func (m *UserModel) toEntity() *entities.User {
	user := &entities.User{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.Password,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		IsEmailVerified: m.IsEmailVerified,
		IsGoogleUser:    m.IsGoogleUser,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.GoogleID != nil {
		user.GoogleID = *m.GoogleID
	}
	return user
}
