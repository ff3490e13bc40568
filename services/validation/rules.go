// Package validation holds the field rules applied to the studio's booking,
// contact, feedback and registration forms before anything is submitted.
package validation

import (
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"photostudio/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// IndianPhonePattern matches +91 followed by a ten digit mobile number.
	IndianPhonePattern = regexp.MustCompile(`^\+91[6-9]\d{9}$`)

	// DefaultTimeSlots are the session start times offered by the studio.
	DefaultTimeSlots = []string{"10:00 AM", "12:00 PM", "2:00 PM", "4:00 PM", "6:00 PM"}
)

const minPasswordLength = 6

// Errors maps a form field name to its error message. An empty mapping
// means the draft is valid.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Valid reports whether no rule failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Rules carries the configurable inputs of the checks. The zero value is
// usable: any service id is accepted, DefaultTimeSlots and
// IndianPhonePattern apply, and "today" is taken from the local clock.
type Rules struct {
	ServiceIDs   []string
	TimeSlots    []string
	PhonePattern *regexp.Regexp
	Location     *time.Location
	Now          func() time.Time
}

func (r Rules) timeSlots() []string {
	if len(r.TimeSlots) == 0 {
		return DefaultTimeSlots
	}
	return r.TimeSlots
}

func (r Rules) phonePattern() *regexp.Regexp {
	if r.PhonePattern == nil {
		return IndianPhonePattern
	}
	return r.PhonePattern
}

func (r Rules) today() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	y, m, d := now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Booking checks every field of a booking draft.
func (r Rules) Booking(req models.BookingRequest) Errors {
	errs := Errors{}

	switch {
	case strings.TrimSpace(req.Service) == "":
		errs["service"] = "Please select a service"
	case len(r.ServiceIDs) > 0 && !slices.Contains(r.ServiceIDs, req.Service):
		errs["service"] = "Please select a valid service"
	}

	if msg := r.checkDate(req.Date); msg != "" {
		errs["date"] = msg
	}

	switch {
	case strings.TrimSpace(req.Time) == "":
		errs["time"] = "Please select a time"
	case !slices.Contains(r.timeSlots(), req.Time):
		errs["time"] = "Please select a valid time"
	}

	r.checkContact(errs, req.Name, req.Email, req.Phone)
	return errs
}

// Contact checks every field of a contact draft.
func (r Rules) Contact(req models.ContactRequest) Errors {
	errs := Errors{}
	r.checkContact(errs, req.Name, req.Email, req.Phone)
	if strings.TrimSpace(req.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

// Feedback checks every field of a feedback draft.
func (r Rules) Feedback(req models.FeedbackRequest) Errors {
	errs := Errors{}
	r.checkContact(errs, req.Name, req.Email, req.Phone)
	if strings.TrimSpace(req.Feedback) == "" {
		errs["feedback"] = "Feedback is required"
	}
	return errs
}

// Registration checks the register form.
func (r Rules) Registration(req models.UserRegistration) Errors {
	errs := Errors{}
	if msg := checkName(req.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := checkEmail(req.Email); msg != "" {
		errs["email"] = msg
	}
	switch {
	case strings.TrimSpace(req.Password) == "":
		errs["password"] = "Password is required"
	case len(req.Password) < minPasswordLength:
		errs["password"] = "Password must be at least 6 characters"
	}
	if req.ConfirmPassword != req.Password {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}

func (r Rules) checkContact(errs Errors, name, email, phone string) {
	if msg := checkName(name); msg != "" {
		errs["name"] = msg
	}
	if msg := checkEmail(email); msg != "" {
		errs["email"] = msg
	}
	if msg := r.checkPhone(phone); msg != "" {
		errs["phone"] = msg
	}
}

func (r Rules) checkDate(date string) string {
	if strings.TrimSpace(date) == "" {
		return "Please select a date"
	}
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(models.DateLayout, date, loc)
	if err != nil {
		return "Date is invalid"
	}
	if d.Before(r.today()) {
		return "Date cannot be in the past"
	}
	return ""
}

func (r Rules) checkPhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "Phone number is required"
	}
	if !r.phonePattern().MatchString(phone) {
		return "Enter a valid phone number (e.g., +919876543210)"
	}
	return ""
}

func checkName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required"
	}
	return ""
}

func checkEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return "Email is invalid"
	}
	return ""
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
