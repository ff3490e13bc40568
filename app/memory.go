package app

import (
	memoryRepo "photostudio/database/repository/memory"
	"photostudio/models"
)

// MemoryStores are the in-memory repositories behind MemoryDependencies.
type MemoryStores struct {
	Bookings  *memoryRepo.BookingStore
	Contacts  *memoryRepo.ContactStore
	Services  *memoryRepo.ServiceStore
	Portfolio *memoryRepo.PortfolioStore
	Users     *memoryRepo.UserStore
}

// MemoryDependencies returns dependencies backed by fresh in-memory stores
// with the default service catalogue loaded.
func MemoryDependencies() (Dependencies, *MemoryStores) {
	stores := &MemoryStores{
		Bookings:  memoryRepo.NewBookingStore(),
		Contacts:  memoryRepo.NewContactStore(),
		Services:  memoryRepo.NewServiceStore(models.DefaultServices...),
		Portfolio: memoryRepo.NewPortfolioStore(),
		Users:     memoryRepo.NewUserStore(),
	}
	return Dependencies{
		Bookings:  stores.Bookings,
		Contacts:  stores.Contacts,
		Services:  stores.Services,
		Portfolio: stores.Portfolio,
		Users:     stores.Users,
	}, stores
}
