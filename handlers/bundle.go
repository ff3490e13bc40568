package handlers

import (
	userRepoPkg "photostudio/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers registered by the routes
// package.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Submission endpoints
	CreateBookingHandler gin.HandlerFunc
	SubmitContactHandler gin.HandlerFunc

	// Catalogue endpoints
	GetServicesHandler  gin.HandlerFunc
	GetPortfolioHandler gin.HandlerFunc

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(userRepo userRepoPkg.UserRepository, b *BookingHandler, ct *ContactHandler, cat *CatalogHandler, u *UserHandler) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:                userRepo,
		CreateBookingHandler:    b.CreateBookingHandler,
		SubmitContactHandler:    ct.SubmitContactHandler,
		GetServicesHandler:      cat.GetServicesHandler,
		GetPortfolioHandler:     cat.GetPortfolioHandler,
		RegisterUserHandler:     u.RegisterUserHandler,
		AuthenticateUserHandler: u.AuthenticateUserHandler,
	}
}
