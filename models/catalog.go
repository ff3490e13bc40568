package models

import "time"

// Service is a bookable studio offering. Prices are whole currency units.
type Service struct {
	ID          string `bson:"id" json:"id"` // e.g. "wedding"
	Name        string `bson:"name" json:"name"`
	Price       int64  `bson:"price" json:"price"`
	Currency    string `bson:"currency" json:"currency"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// PortfolioItem is a published piece of studio work.
type PortfolioItem struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Category    string    `bson:"category" json:"category"`
	ImageURL    string    `bson:"image_url" json:"imageUrl"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// DefaultServices is the catalogue the studio launched with.
var DefaultServices = []Service{
	{ID: "portrait", Name: "Portrait Photography", Price: 10000, Currency: "INR"},
	{ID: "wedding", Name: "Wedding Photography", Price: 50000, Currency: "INR"},
	{ID: "video", Name: "Video Production", Price: 30000, Currency: "INR"},
	{ID: "commercial", Name: "Commercial Shoots", Price: 20000, Currency: "INR"},
}

// ServiceIDs returns the ids of services in their given order.
func ServiceIDs(services []Service) []string {
	ids := make([]string, 0, len(services))
	for _, s := range services {
		ids = append(ids, s.ID)
	}
	return ids
}
