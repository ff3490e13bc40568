package form

import (
	"context"

	"photostudio/models"
	"photostudio/services/validation"
)

type (
	BookingForm      = Controller[models.BookingRequest, *models.BookingRequest]
	ContactForm      = Controller[models.ContactRequest, *models.ContactRequest]
	FeedbackForm     = Controller[models.FeedbackRequest, *models.FeedbackRequest]
	RegistrationForm = Controller[models.UserRegistration, *models.UserRegistration]
)

// The submitters are satisfied by *client.Client.
type (
	BookingSubmitter interface {
		CreateBooking(ctx context.Context, token string, req models.BookingRequest) error
	}
	ContactSubmitter interface {
		SubmitContact(ctx context.Context, req models.ContactRequest) error
	}
	FeedbackSubmitter interface {
		SubmitFeedback(ctx context.Context, req models.FeedbackRequest) error
	}
	RegistrationSubmitter interface {
		Register(ctx context.Context, req models.UserRegistration) (*models.AuthResponse, error)
	}
	ServiceLister interface {
		ListServices(ctx context.Context) ([]models.Service, error)
	}
)

// CredentialFunc returns the caller's current bearer credential, or "" when
// signed out.
type CredentialFunc func() string

func NewBookingForm(rules validation.Rules, s BookingSubmitter, credential CredentialFunc) *BookingForm {
	return New[models.BookingRequest, *models.BookingRequest](rules.Booking,
		func(ctx context.Context, req models.BookingRequest) error {
			token := ""
			if credential != nil {
				token = credential()
			}
			return s.CreateBooking(ctx, token, req)
		})
}

func NewContactForm(rules validation.Rules, s ContactSubmitter) *ContactForm {
	return New[models.ContactRequest, *models.ContactRequest](rules.Contact, s.SubmitContact)
}

func NewFeedbackForm(rules validation.Rules, s FeedbackSubmitter) *FeedbackForm {
	return New[models.FeedbackRequest, *models.FeedbackRequest](rules.Feedback, s.SubmitFeedback)
}

// NewRegistrationForm passes the issued credential to onRegistered.
func NewRegistrationForm(rules validation.Rules, s RegistrationSubmitter, onRegistered func(*models.AuthResponse)) *RegistrationForm {
	return New[models.UserRegistration, *models.UserRegistration](rules.Registration,
		func(ctx context.Context, req models.UserRegistration) error {
			resp, err := s.Register(ctx, req)
			if err != nil {
				return err
			}
			if onRegistered != nil {
				onRegistered(resp)
			}
			return nil
		})
}

// BookingRules returns base with the offered service ids loaded from the
// catalogue.
func BookingRules(ctx context.Context, l ServiceLister, base validation.Rules) (validation.Rules, error) {
	services, err := l.ListServices(ctx)
	if err != nil {
		return base, err
	}
	base.ServiceIDs = models.ServiceIDs(services)
	return base, nil
}
