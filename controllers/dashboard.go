package controllers

import (
	"net/http"

	"invoicing-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	store  *services.Store
	logger *zap.Logger
}

func NewDashboardController(store *services.Store, logger *zap.Logger) *DashboardController {
	return &DashboardController{store: store, logger: logger}
}

// GetDashboardOverview returns revenue totals and recent invoices
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	overview, err := dc.store.Dashboard(c.Request.Context())
	if err != nil {
		respondStoreError(c, dc.logger, "Dashboard", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
