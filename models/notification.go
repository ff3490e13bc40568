package models

import "time"

// StudioNotification is the queued payload announcing a new submission
// to the studio inbox.
type StudioNotification struct {
	Kind        string    `json:"kind"` // "booking" or "contact"
	RecordID    string    `json:"recordId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Service     string    `json:"service,omitempty"`
	Date        string    `json:"date,omitempty"`
	Time        string    `json:"time,omitempty"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// BookingNotification builds the studio notification for b.
func BookingNotification(b Booking) StudioNotification {
	return StudioNotification{
		Kind:        "booking",
		RecordID:    b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Service:     b.Service,
		Date:        b.Date,
		Time:        b.Time,
		Message:     b.Notes,
		SubmittedAt: b.CreatedAt,
	}
}

// ContactNotification builds the studio notification for m.
func ContactNotification(m ContactMessage) StudioNotification {
	return StudioNotification{
		Kind:        m.Kind,
		RecordID:    m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Message:     m.Message,
		SubmittedAt: m.CreatedAt,
	}
}
