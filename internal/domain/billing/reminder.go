package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

// ErrInvalidDueDate is returned when a due date string cannot be parsed.
var ErrInvalidDueDate = errors.New("invalid due date")

// DateLayout is the calendar date format used for due dates and cost entries.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Urgency classifies a reminder relative to its due date.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyDueToday Urgency = "due_today"
	UrgencyUpcoming Urgency = "upcoming"
)

// Reminder is the outcome of ClassifyReminderUrgency.
type Reminder struct {
	Urgency      Urgency
	DaysUntilDue int
	Message      string
}

// ParseDueDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
	}
	return t, nil
}

// DaysUntil returns the whole days from now to due, truncated toward zero.
func DaysUntil(due, now time.Time) int {
	return int(due.Sub(now) / day)
}

// ClassifyReminderUrgency builds the reminder message for invoiceID.
func ClassifyReminderUrgency(invoiceID int64, due, now time.Time) Reminder {
	days := DaysUntil(due, now)
	switch {
	case days < 0:
		return Reminder{
			Urgency:      UrgencyOverdue,
			DaysUntilDue: days,
			Message:      fmt.Sprintf("Urgent: Your invoice #%d is overdue by %d days.", invoiceID, -days),
		}
	case days == 0:
		return Reminder{
			Urgency:      UrgencyDueToday,
			DaysUntilDue: 0,
			Message:      fmt.Sprintf("Reminder: Your invoice #%d is due today.", invoiceID),
		}
	default:
		return Reminder{
			Urgency:      UrgencyUpcoming,
			DaysUntilDue: days,
			Message:      fmt.Sprintf("Friendly reminder: Your invoice #%d is due in %d days.", invoiceID, days),
		}
	}
}

// SelectContactChannel prefers email over phone. ok is false when the
// contact has neither.
func SelectContactChannel(contact entities.ClientContact) (recipient string, method entities.NotificationMethod, ok bool) {
	if email := strings.TrimSpace(contact.Email); email != "" {
		return email, entities.NotificationMethodEmail, true
	}
	if phone := strings.TrimSpace(contact.Phone); phone != "" {
		return phone, entities.NotificationMethodSMS, true
	}
	return "", "", false
}
