package models

import (
	"time"
)

// ReminderLog records one payment reminder attempt for an overdue invoice.
type ReminderLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	InvoiceID    int       `json:"invoiceId" gorm:"index;not null"`
	CustomerID   int       `json:"customerId" gorm:"index;not null"`
	Message      string    `json:"message" gorm:"type:text"`
	Status       string    `json:"status" gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string    `json:"errorMessage,omitempty" gorm:"type:text"`
	Channel      string    `json:"channel" gorm:"type:varchar(20)"`       // sms, log
	SentOn       string    `json:"sentOn" gorm:"type:varchar(10);index"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"createdAt"`
}
