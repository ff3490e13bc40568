package handlers

import (
	"errors"
	"net/http"

	"photostudio/middleware"
	"photostudio/models"
	"photostudio/services/booking"
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings. The caller is resolved
// by JWTAuthUserMiddleware before this runs.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString(utils.ContextUserID)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RecordSubmission("booking", "rejected")
		utils.JSONError(c, http.StatusBadRequest, bindingMessage(err), "")
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		var inputErr *booking.InputError
		switch {
		case errors.As(err, &inputErr):
			middleware.RecordSubmission("booking", "rejected")
			utils.JSONError(c, http.StatusBadRequest, inputErr.Error(), "")
		case errors.Is(err, booking.ErrNoOwner):
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		default:
			middleware.RecordSubmission("booking", "failed")
			logger.Error("CreateBookingHandler: failed to create booking",
				zap.String("service", req.Service), zap.Error(err))
			_ = c.Error(err)
			c.Abort()
		}
		return
	}

	middleware.RecordSubmission("booking", "created")
	logger.Info("Booking created", zap.String("bookingID", b.ID), zap.String("service", b.Service))
	c.JSON(http.StatusCreated, gin.H{"message": "Booking created"})
}
