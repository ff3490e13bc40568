package bookingRepo

import (
	"context"

	"photostudio/models"
)

// BookingRepository defines methods for booking data access. Bookings are
// insert-only.
type BookingRepository interface {
	// Create inserts a new booking record, stamping its creation time.
	Create(ctx context.Context, booking *models.Booking) error
	// EnsureIndexes creates the indexes the collection relies on.
	EnsureIndexes(ctx context.Context) error
}
