package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "photostudio/database/repository/user"
	"photostudio/models"
	"photostudio/services/validation"
	"photostudio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the registration, stores the account with a bcrypt
// password hash and returns a credential for it.
func (s *DefaultUserService) Register(ctx context.Context, req models.UserRegistration) (*models.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.ConfirmPassword == "" {
		req.ConfirmPassword = req.Password
	}
	if errs := (validation.Rules{}).Registration(req); !errs.Valid() {
		return nil, &RegistrationError{Fields: errs}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.authResponse(u)
}

// Authenticate checks the password and returns a fresh credential.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(u)
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *DefaultUserService) authResponse(u *models.User) (*models.AuthResponse, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, err := utils.GenerateToken(u.ID, u.Email, ttl)
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token", zap.String("userID", u.ID), zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	return &models.AuthResponse{ID: u.ID, Token: token, Name: u.Name, Email: u.Email}, nil
}
