package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"invoicing-backend/config"
	"invoicing-backend/services"
	"invoicing-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// parseID reads the :id path parameter. A non-numeric id cannot match any
// record, so it is answered with 404.
func parseID(c *gin.Context, entity string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		utils.RespondWithError(c, http.StatusNotFound, entity+" not found")
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the request body, answering 400 on failure.
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		utils.RespondWithValidationError(c, utils.BindError(err))
		return false
	}
	return true
}

// respondStoreError maps a store error to a response: validation errors to
// 400, missing records to 404 and everything else to 500.
func respondStoreError(c *gin.Context, logger *zap.Logger, entity string, err error) {
	var verr *utils.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithValidationError(c, verr)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, entity+" not found")
	default:
		logger.Error("request failed",
			zap.String("request_id", c.GetString(config.RequestIDHeader)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		_ = c.Error(err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
