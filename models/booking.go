package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of a booking date.
const DateLayout = "2006-01-02"

// BookingRequest is a booking form draft as the studio site submits it.
// Only service and date are mandatory on the wire; the booking form
// validates the remaining contact fields before anything is sent.
type BookingRequest struct {
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time,omitempty"`          // one of the configured slots, e.g. "10:00 AM"
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// SetField assigns a draft field by its form name.
func (r *BookingRequest) SetField(name, value string) error {
	switch name {
	case "service":
		r.Service = value
	case "date":
		r.Date = value
	case "time":
		r.Time = value
	case "name":
		r.Name = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "notes":
		r.Notes = value
	default:
		return fmt.Errorf("unknown booking field %q", name)
	}
	return nil
}

// Booking represents a persisted booking record.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user" json:"user"` // account that submitted the booking
	Service   string    `bson:"service" json:"service"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time,omitempty" json:"time,omitempty"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Request returns the submitted fields of the booking.
func (b Booking) Request() BookingRequest {
	return BookingRequest{
		Service: b.Service,
		Date:    b.Date,
		Time:    b.Time,
		Name:    b.Name,
		Email:   b.Email,
		Phone:   b.Phone,
		Notes:   b.Notes,
	}
}
