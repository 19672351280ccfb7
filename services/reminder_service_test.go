package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"invoicing-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Channel() string {
	return m.Called().String(0)
}

func (m *MockNotifier) Send(ctx context.Context, to, message string) error {
	args := m.Called(ctx, to, message)
	return args.Error(0)
}

func newReminderFixture(t *testing.T) (*Store, *models.Invoice) {
	t.Helper()
	ctx := context.Background()
	store := newTestStore(t)

	customer, err := store.CreateCustomer(ctx, models.CustomerInput{
		Name: "Acme", Email: "ap@acme.com", Phone: "+15550100", Address: "1 Main St",
	})
	require.NoError(t, err)

	overdue := invoiceInput(customer.ID, "INV-7", "2024-02-01", models.StatusPending, line("Audit", 1, 250, 0))
	overdue.DueDate = "2024-03-01"
	invoice, err := store.CreateInvoice(ctx, overdue)
	require.NoError(t, err)

	paid := invoiceInput(customer.ID, "INV-8", "2024-02-01", models.StatusPaid)
	paid.DueDate = "2024-02-05"
	_, err = store.CreateInvoice(ctx, paid)
	require.NoError(t, err)

	orphan := invoiceInput(77, "INV-9", "2024-02-01", models.StatusPending)
	orphan.DueDate = "2024-02-05"
	_, err = store.CreateInvoice(ctx, orphan)
	require.NoError(t, err)

	return store, invoice
}

func newTestReminderService(t *testing.T, store *Store, notifier Notifier) *ReminderService {
	t.Helper()
	renderer, err := NewInvoiceRenderer("$")
	require.NoError(t, err)
	return NewReminderService(store, notifier, renderer, zap.NewNop())
}

func TestReminderService_SendsOncePerDay(t *testing.T) {
	ctx := context.Background()
	store, invoice := newReminderFixture(t)

	notifier := new(MockNotifier)
	notifier.On("Channel").Return("sms")
	notifier.On("Send", mock.Anything, "+15550100", mock.MatchedBy(func(msg string) bool {
		return strings.Contains(msg, "INV-7") && strings.Contains(msg, "$250.00") && strings.Contains(msg, "March 1, 2024")
	})).Return(nil).Once()

	svc := newTestReminderService(t, store, notifier)

	sent, err := svc.SendOverdueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = svc.SendOverdueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	notifier.AssertExpectations(t)

	logs, err := svc.Logs(ctx, &invoice.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, ReminderSent, logs[0].Status)
	assert.Equal(t, "sms", logs[0].Channel)
	assert.Equal(t, "2024-03-10", logs[0].SentOn)
}

func TestReminderService_FailedSendIsRetried(t *testing.T) {
	ctx := context.Background()
	store, invoice := newReminderFixture(t)

	notifier := new(MockNotifier)
	notifier.On("Channel").Return("sms")
	notifier.On("Send", mock.Anything, "+15550100", mock.Anything).Return(errors.New("carrier down")).Once()
	notifier.On("Send", mock.Anything, "+15550100", mock.Anything).Return(nil).Once()

	svc := newTestReminderService(t, store, notifier)

	sent, err := svc.SendOverdueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)

	sent, err = svc.SendOverdueReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	logs, err := svc.Logs(ctx, &invoice.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, ReminderSent, logs[0].Status)
	assert.Equal(t, ReminderFailed, logs[1].Status)
	assert.Equal(t, "carrier down", logs[1].ErrorMessage)
	notifier.AssertExpectations(t)
}

func TestReminderService_StartRejectsBadSchedule(t *testing.T) {
	store := newTestStore(t)
	svc := newTestReminderService(t, store, NewLogNotifier(zap.NewNop()))

	assert.Error(t, svc.Start("not a schedule"))

	require.NoError(t, svc.Start("0 9 * * *"))
	svc.Stop()
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(zap.NewNop())
	assert.Equal(t, "log", n.Channel())
	assert.NoError(t, n.Send(context.Background(), "+1555", "hello"))
}
