package entities

import "time"

// NotificationMethod is the channel a reminder goes out on.
type NotificationMethod string

const (
	NotificationMethodEmail NotificationMethod = "email"
	NotificationMethodSMS   NotificationMethod = "sms"
)

// NotificationStatus is fixed to "sent": delivery confirmation is not modeled.
type NotificationStatus string

const (
	NotificationStatusSent NotificationStatus = "sent"
)

// Notification is the record produced by a payment reminder.
type Notification struct {
	ID           string             `json:"id"`
	InvoiceID    int64              `json:"invoice_id"`
	Recipient    string             `json:"recipient"`
	Method       NotificationMethod `json:"method"`
	Message      string             `json:"message"`
	DaysUntilDue int                `json:"days_until_due"`
	SentAt       time.Time          `json:"sent_at"`
	Status       NotificationStatus `json:"status"`
}
