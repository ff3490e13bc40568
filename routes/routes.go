package routes

import (
	"net/http"
	"strings"
	"time"

	"photostudio/handlers"
	"photostudio/middleware"
	"photostudio/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the router settings taken from configuration.
type Options struct {
	FrontendURL       string
	MaxRequestsPerMin int
}

// NewRouter builds the engine with the shared middleware chain and every
// route registered.
func NewRouter(hb *handlers.HandlerBundle, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Metrics wrap the error handler so server faults are counted with
	// their final status.
	r.Use(middleware.MetricsMiddleware())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	RegisterRoutes(r, hb, opts)
	return r
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterBookingRoutes registers the authenticated booking endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("", hb.CreateBookingHandler)
	}
}

// RegisterPublicRoutes registers the unauthenticated studio endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/contact", hb.SubmitContactHandler)
		api.GET("/services", hb.GetServicesHandler)
		api.GET("/portfolio", hb.GetPortfolioHandler)
	}
}

// RegisterHealthRoute registers the liveness, metrics and root endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Photography Studio Backend")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
	r.GET("/metrics", middleware.MetricsHandler())
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	r.Use(cors.New(corsConfig(opts.FrontendURL)))
	r.Use(middleware.RateLimitMiddleware(opts.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
}

// corsConfig allows the configured frontend origins (comma separated), or
// any origin when none is configured.
func corsConfig(frontendURL string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	var origins []string
	for _, o := range strings.Split(frontendURL, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
