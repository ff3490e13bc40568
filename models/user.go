package models

import (
	"fmt"
	"time"
)

// User is a studio client account. Bookings reference it by ID.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistration is the register form payload.
type UserRegistration struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

func (r *UserRegistration) SetField(name, value string) error {
	switch name {
	case "name":
		r.Name = value
	case "email":
		r.Email = value
	case "password":
		r.Password = value
	case "confirmPassword":
		r.ConfirmPassword = value
	default:
		return fmt.Errorf("unknown registration field %q", name)
	}
	return nil
}

type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
