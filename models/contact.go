package models

import (
	"fmt"
	"time"
)

// Contact message kinds.
const (
	ContactKindMessage  = "contact"
	ContactKindFeedback = "feedback"
)

// ContactRequest is a contact form draft.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
	Kind    string `json:"kind,omitempty" binding:"omitempty,oneof=contact feedback"`
}

func (r *ContactRequest) SetField(name, value string) error {
	switch name {
	case "name":
		r.Name = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "message":
		r.Message = value
	default:
		return fmt.Errorf("unknown contact field %q", name)
	}
	return nil
}

// FeedbackRequest is the feedback-tab variant of the contact form. It is
// delivered through the contact endpoint with kind "feedback".
type FeedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Feedback string `json:"feedback"`
}

func (r *FeedbackRequest) SetField(name, value string) error {
	switch name {
	case "name":
		r.Name = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "feedback":
		r.Feedback = value
	default:
		return fmt.Errorf("unknown feedback field %q", name)
	}
	return nil
}

// ContactRequest converts the feedback into the contact endpoint payload.
func (r FeedbackRequest) ContactRequest() ContactRequest {
	return ContactRequest{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Feedback,
		Kind:    ContactKindFeedback,
	}
}

// ContactMessage is a persisted contact or feedback submission. It has no
// owning account.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Kind      string    `bson:"kind" json:"kind"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
