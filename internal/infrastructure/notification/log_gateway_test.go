package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

type recorded struct{ method, urgency string }

type fakeRecorder struct{ calls []recorded }

func (f *fakeRecorder) RecordReminder(method, urgency string) {
	f.calls = append(f.calls, recorded{method, urgency})
}

func TestLogGateway_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	rec := &fakeRecorder{}
	gw := NewLogGateway(zap.New(core), rec)

	err := gw.Send(context.Background(), entities.Notification{
		ID:           "n-1",
		InvoiceID:    1001,
		Recipient:    "client1@example.com",
		Method:       entities.NotificationMethodEmail,
		Message:      "Urgent: Your invoice #1001 is overdue by 3 days.",
		DaysUntilDue: -3,
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("notification dispatched").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "client1@example.com", fields["recipient"])
	assert.Equal(t, "email", fields["method"])
	assert.Equal(t, "overdue", fields["urgency"])
	assert.Equal(t, []recorded{{"email", "overdue"}}, rec.calls)
}

func TestLogGateway_Rejects(t *testing.T) {
	gw := NewLogGateway(nil, nil)

	err := gw.Send(context.Background(), entities.Notification{Method: entities.NotificationMethodSMS})
	assert.ErrorIs(t, err, ErrMissingRecipient)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = gw.Send(ctx, entities.Notification{Recipient: "+1"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUrgencyOf(t *testing.T) {
	assert.Equal(t, "overdue", string(urgencyOf(-1)))
	assert.Equal(t, "due_today", string(urgencyOf(0)))
	assert.Equal(t, "upcoming", string(urgencyOf(5)))
}
