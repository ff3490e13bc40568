// Package app assembles repositories, services and handlers into the HTTP
// router. main wires it against MongoDB and Redis; tests wire it against
// the in-memory repositories.
package app

import (
	"time"

	bookingRepo "photostudio/database/repository/booking"
	catalogRepo "photostudio/database/repository/catalog"
	contactRepo "photostudio/database/repository/contact"
	userRepo "photostudio/database/repository/user"
	"photostudio/handlers"
	"photostudio/routes"
	"photostudio/services/booking"
	"photostudio/services/catalog"
	"photostudio/services/contact"
	"photostudio/services/notification"
	"photostudio/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the router is built from. Cache and
// Notifier may be nil.
type Dependencies struct {
	Bookings  bookingRepo.BookingRepository
	Contacts  contactRepo.ContactRepository
	Services  catalogRepo.ServiceRepository
	Portfolio catalogRepo.PortfolioRepository
	Users     userRepo.UserRepository

	Cache    catalog.ServiceCache
	Notifier notification.Notifier
	Logger   *zap.Logger

	TokenTTL time.Duration
	Routes   routes.Options
}

// Services are the use cases built by NewServices.
type Services struct {
	Booking booking.BookingService
	Contact contact.ContactService
	Catalog catalog.CatalogService
	User    user.UserService
}

func NewServices(d Dependencies) Services {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := d.Notifier
	if notifier == nil {
		notifier = notification.NoopNotifier{}
	}

	return Services{
		Booking: &booking.DefaultBookingService{
			Repo:     d.Bookings,
			Notifier: notifier,
			Logger:   logger,
		},
		Contact: &contact.DefaultContactService{
			Repo:     d.Contacts,
			Notifier: notifier,
			Logger:   logger,
		},
		Catalog: &catalog.DefaultCatalogService{
			Services:  d.Services,
			Portfolio: d.Portfolio,
			Cache:     d.Cache,
			Logger:    logger,
		},
		User: &user.DefaultUserService{
			Repo:     d.Users,
			TokenTTL: d.TokenTTL,
		},
	}
}

// NewRouter builds the services, the handler bundle and the router.
func NewRouter(d Dependencies) *gin.Engine {
	svc := NewServices(d)
	bundle := handlers.NewHandlerBundle(
		d.Users,
		handlers.NewBookingHandler(svc.Booking),
		handlers.NewContactHandler(svc.Contact),
		handlers.NewCatalogHandler(svc.Catalog),
		handlers.NewUserHandler(svc.User),
	)
	return routes.NewRouter(bundle, d.Routes)
}
