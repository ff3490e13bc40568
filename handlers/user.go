package handlers

import (
	"errors"
	"net/http"

	"photostudio/models"
	"photostudio/services/user"
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingMessage(err), "")
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		var regErr *user.RegistrationError
		switch {
		case errors.As(err, &regErr):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Please correct the highlighted fields",
				"errors":  regErr.Fields,
			})
		case errors.Is(err, user.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
		default:
			logger.Error("RegisterUserHandler: registration failed", zap.String("email", req.Email), zap.Error(err))
			_ = c.Error(err)
			c.Abort()
		}
		return
	}

	logger.Info("User registered", zap.String("userID", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.UserLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, bindingMessage(err), "")
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		logger.Error("AuthenticateUserHandler: login failed", zap.Error(err))
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, resp)
}
