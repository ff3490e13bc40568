package user

import (
	"context"
	"time"

	userRepo "photostudio/database/repository/user"
	"photostudio/models"
)

// UserService manages studio client accounts and their credentials.
type UserService interface {
	Register(ctx context.Context, req models.UserRegistration) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	TokenTTL time.Duration
}
