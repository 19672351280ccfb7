package controllers

import (
	"net/http"

	"invoicing-backend/models"
	"invoicing-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsController struct {
	store  *services.Store
	logger *zap.Logger
}

func NewSettingsController(store *services.Store, logger *zap.Logger) *SettingsController {
	return &SettingsController{store: store, logger: logger}
}

// GetSettings returns the company settings, falling back to defaults
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings, err := sc.store.GetSettings(c.Request.Context())
	if err != nil {
		respondStoreError(c, sc.logger, "Settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings overwrites the company settings
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	var input models.SettingsInput
	if !bindJSON(c, &input) {
		return
	}
	settings, err := sc.store.UpdateSettings(c.Request.Context(), input)
	if err != nil {
		respondStoreError(c, sc.logger, "Settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
