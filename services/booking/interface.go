package booking

import (
	"context"
	"time"

	bookingRepo "photostudio/database/repository/booking"
	"photostudio/models"
	"photostudio/services/notification"

	"go.uber.org/zap"
)

// BookingService persists bookings submitted by authenticated clients.
type BookingService interface {
	// CreateBooking stores exactly one Booking owned by userID.
	CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.Notifier
	Logger   *zap.Logger
	Now      func() time.Time
}
