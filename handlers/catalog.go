package handlers

import (
	"net/http"

	"photostudio/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// GetServicesHandler handles GET /api/services.
func (h *CatalogHandler) GetServicesHandler(c *gin.Context) {
	services, err := h.Service.GetServices(c.Request.Context())
	if err != nil {
		getLogger(c).Error("GetServicesHandler: failed to list services", zap.Error(err))
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetPortfolioHandler handles GET /api/portfolio.
func (h *CatalogHandler) GetPortfolioHandler(c *gin.Context) {
	items, err := h.Service.GetPortfolio(c.Request.Context())
	if err != nil {
		getLogger(c).Error("GetPortfolioHandler: failed to list portfolio", zap.Error(err))
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, items)
}
