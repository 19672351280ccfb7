package controllers

import (
	"net/http"

	"invoicing-backend/services"
	"invoicing-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportController handles all reporting functions
type ReportController struct {
	store  *services.Store
	logger *zap.Logger
}

func NewReportController(store *services.Store, logger *zap.Logger) *ReportController {
	return &ReportController{store: store, logger: logger}
}

// GetReport summarises invoices between the startDate and endDate query
// parameters
func (rc *ReportController) GetReport(c *gin.Context) {
	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	for _, p := range [][2]string{{"startDate", startDate}, {"endDate", endDate}} {
		if p[1] == "" {
			continue
		}
		if _, err := utils.ParseDate(p[1]); err != nil {
			utils.RespondWithValidationError(c, utils.NewValidationError(p[0], "Must be a date in YYYY-MM-DD format"))
			return
		}
	}

	report, err := rc.store.Report(c.Request.Context(), startDate, endDate)
	if err != nil {
		respondStoreError(c, rc.logger, "Report", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
