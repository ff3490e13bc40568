// Package client talks to the studio backend on behalf of the booking,
// contact and account forms. Every call issues exactly one HTTP request and
// never retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"photostudio/models"
	"photostudio/services/validation"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, whose timeout is left to the
// transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTPClient = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateBooking submits a booking on behalf of the account behind token.
func (c *Client) CreateBooking(ctx context.Context, token string, req models.BookingRequest) error {
	return c.send(ctx, http.MethodPost, "/api/bookings", token, true, req, nil)
}

// SubmitContact submits a contact message. No credential is needed.
func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) error {
	return c.send(ctx, http.MethodPost, "/api/contact", "", false, req, nil)
}

// SubmitFeedback submits feedback through the contact endpoint.
func (c *Client) SubmitFeedback(ctx context.Context, req models.FeedbackRequest) error {
	return c.SubmitContact(ctx, req.ContactRequest())
}

// ListServices fetches the service catalogue, cheapest first.
func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.send(ctx, http.MethodGet, "/api/services", "", false, nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) Register(ctx context.Context, req models.UserRegistration) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.send(ctx, http.MethodPost, "/api/users/register", "", false, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	body := models.UserLogin{Email: email, Password: password}
	if err := c.send(ctx, http.MethodPost, "/api/users/login", "", false, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// send performs one request. A 401 on an authenticated call maps to
// ErrUnauthorized; every other failure is a *SubmissionError.
func (c *Client) send(ctx context.Context, method, path, token string, authenticated bool, in, out any) error {
	if authenticated && token == "" {
		return ErrUnauthorized
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &SubmissionError{Message: GenericFailureMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &SubmissionError{Status: resp.StatusCode, Message: GenericFailureMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if authenticated && resp.StatusCode == http.StatusUnauthorized {
			return ErrUnauthorized
		}
		return failure(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &SubmissionError{Status: resp.StatusCode, Message: GenericFailureMessage, Err: err}
		}
	}
	return nil
}

type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  validation.Errors `json:"errors"`
}

// failure prefers the server's "message", then "error". Server faults
// always surface GenericFailureMessage.
func failure(status int, raw []byte) *SubmissionError {
	e := &SubmissionError{Status: status, Message: GenericFailureMessage}
	if status >= http.StatusInternalServerError {
		return e
	}

	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return e
	}
	switch {
	case strings.TrimSpace(eb.Message) != "":
		e.Message = eb.Message
	case strings.TrimSpace(eb.Error) != "":
		e.Message = eb.Error
	}
	if len(eb.Errors) > 0 {
		e.Fields = eb.Errors
	}
	return e
}
