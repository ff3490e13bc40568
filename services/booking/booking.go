package booking

import (
	"context"
	"strings"
	"time"

	"photostudio/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking builds the booking record from the request, persists it and
// announces it to the studio. A failed announcement does not fail the
// booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error) {
	if userID == "" {
		return nil, ErrNoOwner
	}
	if strings.TrimSpace(req.Service) == "" {
		return nil, &InputError{Field: "service", Message: "service is required"}
	}
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return nil, &InputError{Field: "date", Message: "date must be formatted YYYY-MM-DD"}
	}

	b := &models.Booking{
		ID:        uuid.New().String(),
		UserID:    userID,
		Service:   req.Service,
		Date:      req.Date,
		Time:      req.Time,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, models.BookingNotification(*b)); err != nil {
			s.logger().Warn("CreateBooking: studio notification failed",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
	return b, nil
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
