package interfaces

import (
	"context"

	"github.com/yumechi/make-something-webhook/pkg/domain/model"
)

// Notifier defines the outbound delivery collaborator
type Notifier interface {
	// Post sends a single canonical message to the given webhook URL.
	// Delivery is best-effort: a rejected response is logged by the
	// implementation and not reported as an error.
	Post(ctx context.Context, webhookURL string, msg *model.Message) error
}
