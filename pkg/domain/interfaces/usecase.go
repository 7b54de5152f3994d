package interfaces

import (
	"context"
)

// WebhookUseCase defines the interface for inbound webhook event processing
type WebhookUseCase interface {
	// HandleBacklogEvent transforms a Backlog event payload and schedules delivery
	HandleBacklogEvent(ctx context.Context, payload []byte) error

	// HandleKibelaEvent transforms a Kibela event payload and schedules delivery
	HandleKibelaEvent(ctx context.Context, payload []byte) error
}
