package services

import (
	"context"
	"fmt"
	"time"

	"invoicing-backend/models"
	"invoicing-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ReminderSent   = "sent"
	ReminderFailed = "failed"
)

// Notifier delivers a reminder message to a phone number.
type Notifier interface {
	Channel() string
	Send(ctx context.Context, to, message string) error
}

// TwilioNotifier sends reminders as SMS.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	logger *zap.Logger
}

func NewTwilioNotifier(accountSID, authToken, from string, logger *zap.Logger) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from:   from,
		logger: logger,
	}
}

func (n *TwilioNotifier) Channel() string { return "sms" }

func (n *TwilioNotifier) Send(ctx context.Context, to, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(message)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send sms to %s: %w", to, err)
	}
	if resp.Sid != nil {
		n.logger.Info("reminder sms sent", zap.String("to", to), zap.String("sid", *resp.Sid))
	}
	return nil
}

// LogNotifier only logs reminders. It is used when no SMS credentials
// are configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Channel() string { return "log" }

func (n *LogNotifier) Send(ctx context.Context, to, message string) error {
	n.logger.Info("payment reminder", zap.String("to", to), zap.String("message", message))
	return nil
}

// ReminderService reminds customers about overdue invoices on a schedule.
type ReminderService struct {
	store    *Store
	db       *gorm.DB
	notifier Notifier
	renderer *InvoiceRenderer
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewReminderService(store *Store, notifier Notifier, renderer *InvoiceRenderer, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		store:    store,
		db:       store.db,
		notifier: notifier,
		renderer: renderer,
		logger:   logger.Named("reminders"),
	}
}

// Start schedules SendOverdueReminders. Stop must be called on shutdown.
func (s *ReminderService) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := s.SendOverdueReminders(ctx); err != nil {
			s.logger.Error("reminder run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}

	s.cron = c
	c.Start()
	s.logger.Info("reminder scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// SendOverdueReminders sends one reminder per overdue invoice whose
// customer still exists, skipping invoices already reminded today. It
// returns the number of reminders delivered.
func (s *ReminderService) SendOverdueReminders(ctx context.Context) (int, error) {
	invoices, err := s.store.ListInvoices(ctx, models.InvoiceFilter{Status: models.StatusOverdue})
	if err != nil {
		return 0, err
	}
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	today := s.store.Today()

	sent := 0
	for _, invoice := range invoices {
		var already int64
		err := s.db.WithContext(ctx).Model(&models.ReminderLog{}).
			Where("invoice_id = ? AND sent_on = ? AND status = ?", invoice.ID, today, ReminderSent).
			Count(&already).Error
		if err != nil {
			return sent, fmt.Errorf("check reminder log: %w", err)
		}
		if already > 0 {
			continue
		}

		customer, err := s.store.GetCustomer(ctx, invoice.CustomerID)
		if err != nil {
			s.logger.Warn("skipping reminder", zap.Int("invoice_id", invoice.ID), zap.Error(err))
			continue
		}

		message := s.reminderMessage(settings, customer, &invoice, today)
		entry := models.ReminderLog{
			InvoiceID:  invoice.ID,
			CustomerID: customer.ID,
			Message:    message,
			Status:     ReminderSent,
			Channel:    s.notifier.Channel(),
			SentOn:     today,
		}
		if err := s.notifier.Send(ctx, customer.Phone, message); err != nil {
			s.logger.Error("reminder failed", zap.Int("invoice_id", invoice.ID), zap.Error(err))
			entry.Status = ReminderFailed
			entry.ErrorMessage = err.Error()
		} else {
			sent++
		}

		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			s.logger.Error("failed to log reminder", zap.Int("invoice_id", invoice.ID), zap.Error(err))
		}
	}

	s.logger.Info("reminder run completed", zap.Int("overdue", len(invoices)), zap.Int("sent", sent))
	return sent, nil
}

func (s *ReminderService) reminderMessage(settings *models.Settings, customer *models.Customer, invoice *models.Invoice, today string) string {
	days := 0
	if due, err := utils.ParseDate(invoice.DueDate); err == nil {
		if now, err := utils.ParseDate(today); err == nil {
			days = utils.DaysBetween(due, now)
		}
	}
	return fmt.Sprintf("Hi %s, invoice %s from %s for %s was due on %s (%d days ago). Please arrange payment. Contact %s with any questions.",
		customer.Name, invoice.InvoiceNumber, settings.CompanyName, s.renderer.money(invoice.Total),
		utils.LongDate(invoice.DueDate), days, settings.CompanyPhone)
}

// Logs returns reminder attempts, newest first, optionally for one invoice.
func (s *ReminderService) Logs(ctx context.Context, invoiceID *int) ([]models.ReminderLog, error) {
	q := s.db.WithContext(ctx).Order("id DESC")
	if invoiceID != nil {
		q = q.Where("invoice_id = ?", *invoiceID)
	}
	logs := []models.ReminderLog{}
	if err := q.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list reminder logs: %w", err)
	}
	return logs, nil
}
