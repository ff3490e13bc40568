package handlers

import (
	"net/http"

	"photostudio/middleware"
	"photostudio/models"
	"photostudio/services/contact"
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	Service contact.ContactService
}

func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SubmitContactHandler handles POST /api/contact. Contact messages and
// feedback share this endpoint and are told apart by "kind".
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RecordSubmission("contact", "rejected")
		utils.JSONError(c, http.StatusBadRequest, bindingMessage(err), "")
		return
	}

	msg, err := h.Service.SubmitContact(c.Request.Context(), req)
	if err != nil {
		middleware.RecordSubmission("contact", "failed")
		logger.Error("SubmitContactHandler: failed to store message",
			zap.String("email", req.Email), zap.Error(err))
		_ = c.Error(err)
		c.Abort()
		return
	}

	middleware.RecordSubmission("contact", "created")
	logger.Info("Contact message stored", zap.String("messageID", msg.ID), zap.String("kind", msg.Kind))
	c.JSON(http.StatusCreated, gin.H{"message": "Contact form submitted"})
}
