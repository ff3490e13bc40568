package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"photostudio/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	Logger = zap.NewNop()
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.POST("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("mongo: connection refused at 10.0.0.5"))
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error","details":"An unexpected error occurred. Please try again later."}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"message": "done"}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := GenerateToken("user-1", "asha@example.com", time.Hour)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	expired, err := GenerateToken("user-1", "a@b.co", -time.Minute)
	require.NoError(t, err)
	_, err = ExtractIDFromToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := GenerateToken("user-1", "a@b.co", time.Hour)
	require.NoError(t, err)
	config.AppConfig.JWTSecret = "rotated"
	_, err = ExtractIDFromToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "warn", parseLevel("warn", false).String())
	assert.Equal(t, "debug", parseLevel("", false).String())
	assert.Equal(t, "info", parseLevel("", true).String())
	assert.Equal(t, "info", parseLevel("loud", false).String())
}
