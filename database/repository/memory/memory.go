// Package memoryRepo holds in-process implementations of the repositories.
// They back local runs without MongoDB and the end-to-end tests. Setting
// Err on a store makes every write fail with it.
package memoryRepo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	userRepo "photostudio/database/repository/user"
	"photostudio/models"

	"go.mongodb.org/mongo-driver/bson"
)

type BookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	Err      error
}

func NewBookingStore() *BookingStore { return &BookingStore{} }

func (s *BookingStore) Create(_ context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *BookingStore) EnsureIndexes(context.Context) error { return nil }

// All returns a copy of the stored bookings in insertion order.
func (s *BookingStore) All() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking(nil), s.bookings...)
}

type ContactStore struct {
	mu       sync.Mutex
	messages []models.ContactMessage
	Err      error
}

func NewContactStore() *ContactStore { return &ContactStore{} }

func (s *ContactStore) Create(_ context.Context, m *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	s.messages = append(s.messages, *m)
	return nil
}

func (s *ContactStore) EnsureIndexes(context.Context) error { return nil }

func (s *ContactStore) All() []models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ContactMessage(nil), s.messages...)
}

type ServiceStore struct {
	mu       sync.Mutex
	services map[string]models.Service
}

func NewServiceStore(seed ...models.Service) *ServiceStore {
	s := &ServiceStore{services: map[string]models.Service{}}
	for _, svc := range seed {
		s.services[svc.ID] = svc
	}
	return s
}

// GetAll returns services cheapest first, ties broken by id.
func (s *ServiceStore) GetAll(context.Context) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *ServiceStore) Upsert(_ context.Context, svc models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[svc.ID] = svc
	return nil
}

type PortfolioStore struct {
	mu    sync.Mutex
	items map[string]models.PortfolioItem
}

func NewPortfolioStore(seed ...models.PortfolioItem) *PortfolioStore {
	s := &PortfolioStore{items: map[string]models.PortfolioItem{}}
	for _, it := range seed {
		s.items[it.ID] = it
	}
	return s
}

// GetAll returns items newest first.
func (s *PortfolioStore) GetAll(context.Context) ([]models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PortfolioItem, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *PortfolioStore) Upsert(_ context.Context, item models.PortfolioItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	return nil
}

type UserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserStore() *UserStore { return &UserStore{users: map[string]models.User{}} }

func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// GetByIDWithProjection ignores the projection.
func (s *UserStore) GetByIDWithProjection(ctx context.Context, id string, _ bson.M) (*models.User, error) {
	return s.GetByID(ctx, id)
}

func (s *UserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return userRepo.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) EnsureIndexes(context.Context) error { return nil }
