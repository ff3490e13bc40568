package form_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"photostudio/app"
	"photostudio/client"
	"photostudio/form"
	"photostudio/models"
	"photostudio/routes"
	"photostudio/services/validation"
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

func startServer(t *testing.T) (*client.Client, *app.MemoryStores) {
	t.Helper()
	deps, stores := app.MemoryDependencies()
	deps.Routes = routes.Options{MaxRequestsPerMin: 1000}
	srv := httptest.NewServer(app.NewRouter(deps))
	t.Cleanup(srv.Close)
	return client.New(srv.URL), stores
}

func register(t *testing.T, c *client.Client) string {
	t.Helper()
	resp, err := c.Register(context.Background(), models.UserRegistration{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	return resp.Token
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format(models.DateLayout)
}

func fill(t *testing.T, f *form.BookingForm) {
	t.Helper()
	for _, kv := range [][2]string{
		{"service", "wedding"},
		{"date", tomorrow()},
		{"time", "10:00 AM"},
		{"name", "Asha Rao"},
		{"email", "asha@example.com"},
		{"phone", "+919876543210"},
		{"notes", ""},
	} {
		require.NoError(t, f.Set(kv[0], kv[1]))
	}
}

func TestBookingRoundTrip(t *testing.T) {
	c, stores := startServer(t)
	token := register(t, c)

	rules, err := form.BookingRules(context.Background(), c, validation.Rules{})
	require.NoError(t, err)

	f := form.NewBookingForm(rules, c, func() string { return token })
	fill(t, f)
	submitted := f.Draft()

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, form.Succeeded, f.State())
	assert.Equal(t, models.BookingRequest{}, f.Draft())

	bookings := stores.Bookings.All()
	require.Len(t, bookings, 1)
	b := bookings[0]
	assert.Equal(t, submitted, b.Request())
	assert.NotEmpty(t, b.ID)
	assert.NotEmpty(t, b.UserID)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestBookingWithoutCredential(t *testing.T) {
	c, stores := startServer(t)

	f := form.NewBookingForm(validation.Rules{}, c, func() string { return "" })
	fill(t, f)
	draft := f.Draft()

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, form.Editing, f.State())
	assert.Equal(t, draft, f.Draft())
	assert.Empty(t, stores.Bookings.All())

	// A forged credential is rejected by the server.
	f = form.NewBookingForm(validation.Rules{}, c, func() string { return "forged.token.value" })
	fill(t, f)
	assert.ErrorIs(t, f.Submit(context.Background()), client.ErrUnauthorized)
	assert.Empty(t, stores.Bookings.All())
}

func TestInvalidEmailStaysLocal(t *testing.T) {
	c, stores := startServer(t)
	token := register(t, c)

	f := form.NewBookingForm(validation.Rules{}, c, func() string { return token })
	fill(t, f)
	require.NoError(t, f.Set("email", "not-an-email"))

	var errs validation.Errors
	require.ErrorAs(t, f.Submit(context.Background()), &errs)
	assert.Contains(t, errs, "email")
	assert.Empty(t, stores.Bookings.All())
}

func TestContactStoreUnavailable(t *testing.T) {
	c, stores := startServer(t)
	stores.Contacts.Err = errors.New("no reachable servers")

	f := form.NewContactForm(validation.Rules{}, c)
	for _, kv := range [][2]string{
		{"name", "Ravi"}, {"email", "ravi@example.com"}, {"phone", "+919876543210"}, {"message", "Hello"},
	} {
		require.NoError(t, f.Set(kv[0], kv[1]))
	}
	draft := f.Draft()

	err := f.Submit(context.Background())
	require.ErrorIs(t, err, client.ErrSubmissionFailed)
	var subErr *client.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, 500, subErr.Status)
	assert.Equal(t, client.GenericFailureMessage, subErr.Message)

	assert.Equal(t, form.Editing, f.State())
	assert.Equal(t, draft, f.Draft())
	assert.Empty(t, stores.Contacts.All())

	// Manual resubmission once the store is back.
	stores.Contacts.Err = nil
	require.NoError(t, f.Submit(context.Background()))
	require.Len(t, stores.Contacts.All(), 1)
	assert.Equal(t, models.ContactKindMessage, stores.Contacts.All()[0].Kind)
}

func TestFeedbackStoredAsContactMessage(t *testing.T) {
	c, stores := startServer(t)

	f := form.NewFeedbackForm(validation.Rules{}, c)
	for _, kv := range [][2]string{
		{"name", "Ravi"}, {"email", "ravi@example.com"}, {"phone", "+919876543210"}, {"feedback", "Loved the prints"},
	} {
		require.NoError(t, f.Set(kv[0], kv[1]))
	}
	require.NoError(t, f.Submit(context.Background()))

	msgs := stores.Contacts.All()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.ContactKindFeedback, msgs[0].Kind)
	assert.Equal(t, "Loved the prints", msgs[0].Message)
}
