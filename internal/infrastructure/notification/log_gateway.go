package notification

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/billing"
	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
	"github.com/Abdelrahman10101/Cost-Management/internal/usecase/interfaces"
)

var ErrMissingRecipient = errors.New("notification has no recipient")

// ReminderRecorder counts dispatched reminders.
type ReminderRecorder interface {
	RecordReminder(method, urgency string)
}

// LogGateway is the only reminder channel: it writes the message it would
// have sent to the log instead of contacting an email or SMS provider.
type LogGateway struct {
	logger   *zap.Logger
	recorder ReminderRecorder
}

var _ interfaces.INotificationGateway = (*LogGateway)(nil)

func NewLogGateway(logger *zap.Logger, recorder ReminderRecorder) *LogGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogGateway{logger: logger.Named("notification"), recorder: recorder}
}

func (g *LogGateway) Send(ctx context.Context, n entities.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.Recipient == "" {
		return ErrMissingRecipient
	}

	urgency := urgencyOf(n.DaysUntilDue)
	g.logger.Info("notification dispatched",
		zap.String("notification_id", n.ID),
		zap.Int64("invoice_id", n.InvoiceID),
		zap.String("method", string(n.Method)),
		zap.String("recipient", n.Recipient),
		zap.String("urgency", string(urgency)),
		zap.String("message", n.Message))

	if g.recorder != nil {
		g.recorder.RecordReminder(string(n.Method), string(urgency))
	}
	return nil
}

func urgencyOf(daysUntilDue int) billing.Urgency {
	switch {
	case daysUntilDue < 0:
		return billing.UrgencyOverdue
	case daysUntilDue == 0:
		return billing.UrgencyDueToday
	default:
		return billing.UrgencyUpcoming
	}
}
