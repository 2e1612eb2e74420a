package interfaces

import (
	"context"

	"github.com/Abdelrahman10101/Cost-Management/internal/domain/entities"
)

// INotificationGateway abstracts reminder delivery providers.
//
// No real channel is wired: the only implementation logs the message it
// would have sent.
type INotificationGateway interface {
	Send(ctx context.Context, n entities.Notification) error
}
