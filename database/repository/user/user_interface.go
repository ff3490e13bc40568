package userRepo

import (
	"context"
	"errors"

	"photostudio/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateEmail is returned by Create when the email is already registered.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	EnsureIndexes(ctx context.Context) error
}
