package controllers

import (
	"net/http"
	"strconv"

	"invoicing-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReminderController struct {
	reminders *services.ReminderService
	logger    *zap.Logger
}

func NewReminderController(reminders *services.ReminderService, logger *zap.Logger) *ReminderController {
	return &ReminderController{reminders: reminders, logger: logger}
}

// GetReminderLogs lists reminder attempts, optionally for one invoiceId
func (rc *ReminderController) GetReminderLogs(c *gin.Context) {
	var invoiceID *int
	if raw := c.Query("invoiceId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusOK, []any{})
			return
		}
		invoiceID = &id
	}

	logs, err := rc.reminders.Logs(c.Request.Context(), invoiceID)
	if err != nil {
		respondStoreError(c, rc.logger, "Reminder", err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// SendReminders sends overdue payment reminders right away
func (rc *ReminderController) SendReminders(c *gin.Context) {
	sent, err := rc.reminders.SendOverdueReminders(c.Request.Context())
	if err != nil {
		respondStoreError(c, rc.logger, "Reminder", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
