package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"photostudio/models"
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

type stubUserRepo struct {
	users map[string]*models.User
	err   error
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.users[id], r.err
}

func (r *stubUserRepo) GetByEmail(context.Context, string) (*models.User, error) { return nil, nil }

func (r *stubUserRepo) GetByIDWithProjection(ctx context.Context, id string, _ bson.M) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *stubUserRepo) Create(context.Context, *models.User) error { return nil }
func (r *stubUserRepo) EnsureIndexes(context.Context) error         { return nil }

func authRouter(repo *stubUserRepo) *gin.Engine {
	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.GET("/private", JWTAuthUserMiddleware(repo), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(utils.ContextUserID))
	})
	return r
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*models.User{"u-1": {ID: "u-1"}}}
	valid, err := utils.GenerateToken("u-1", "a@b.co", time.Hour)
	require.NoError(t, err)
	orphan, err := utils.GenerateToken("u-gone", "x@b.co", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Insufficient authorization"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "Insufficient authorization"},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, "Insufficient authorization"},
		{"deleted user", "Bearer " + orphan, http.StatusUnauthorized, "Authentication error"},
		{"valid", "Bearer " + valid, http.StatusOK, "u-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			authRouter(repo).ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestJWTAuthUserMiddleware_LookupFailureIsServerFault(t *testing.T) {
	repo := &stubUserRepo{err: assert.AnError}
	token, err := utils.GenerateToken("u-1", "a@b.co", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	authRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("1.1.1.1"))
	assert.Equal(t, http.StatusOK, call("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("1.1.1.1"))
	assert.Equal(t, http.StatusOK, call("2.2.2.2"))
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded", map[string]string{"X-Forwarded-For": " 9.9.9.9 , 10.0.0.1"}, "127.0.0.1:80", "9.9.9.9"},
		{"real ip", map[string]string{"X-Real-IP": "8.8.8.8"}, "127.0.0.1:80", "8.8.8.8"},
		{"remote", nil, "7.7.7.7:5555", "7.7.7.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", MetricsHandler())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/ping", http.MethodGet, "204"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/ping", http.MethodGet, "204")))

	RecordSubmission("contact", "created")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "photostudio_submissions_total"))
}

func TestRequestLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		_, ok := c.Get(utils.ContextLogger)
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRateLimiterStoreEvictsIdleIPs(t *testing.T) {
	clock := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(5)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock

	first := store.getLimiter("203.0.113.1")
	store.getLimiter("203.0.113.2")
	assert.Len(t, store.limiters, 2)

	clock = clock.Add(idleLimiterTTL / 2)
	assert.Same(t, first, store.getLimiter("203.0.113.1"))

	clock = clock.Add(idleLimiterTTL + time.Second)
	store.getLimiter("203.0.113.3")
	assert.Len(t, store.limiters, 1)
	assert.Contains(t, store.limiters, "203.0.113.3")
}
