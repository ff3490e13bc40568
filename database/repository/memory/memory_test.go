package memoryRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "photostudio/database/repository/booking"
	catalogRepo "photostudio/database/repository/catalog"
	contactRepo "photostudio/database/repository/contact"
	userRepo "photostudio/database/repository/user"
	"photostudio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ bookingRepo.BookingRepository   = (*BookingStore)(nil)
	_ contactRepo.ContactRepository   = (*ContactStore)(nil)
	_ catalogRepo.ServiceRepository   = (*ServiceStore)(nil)
	_ catalogRepo.PortfolioRepository = (*PortfolioStore)(nil)
	_ userRepo.UserRepository         = (*UserStore)(nil)
)

func TestBookingStore(t *testing.T) {
	s := NewBookingStore()
	b := &models.Booking{ID: "b-1", UserID: "u-1", Service: "wedding"}
	require.NoError(t, s.Create(context.Background(), b))
	assert.False(t, b.CreatedAt.IsZero())
	assert.Len(t, s.All(), 1)

	s.Err = errors.New("down")
	assert.Error(t, s.Create(context.Background(), &models.Booking{ID: "b-2"}))
	assert.Len(t, s.All(), 1)
}

func TestServiceStoreOrdersByPrice(t *testing.T) {
	s := NewServiceStore(models.DefaultServices...)
	got, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"portrait", "commercial", "video", "wedding"}, models.ServiceIDs(got))
}

func TestPortfolioStoreNewestFirst(t *testing.T) {
	now := time.Now()
	s := NewPortfolioStore(
		models.PortfolioItem{ID: "old", CreatedAt: now.Add(-time.Hour)},
		models.PortfolioItem{ID: "new", CreatedAt: now},
	)
	got, err := s.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.Create(context.Background(), &models.User{ID: "1", Email: "a@b.co"}))
	assert.ErrorIs(t, s.Create(context.Background(), &models.User{ID: "2", Email: "A@b.co"}), userRepo.ErrDuplicateEmail)

	u, err := s.GetByEmail(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	missing, err := s.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
