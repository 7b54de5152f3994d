package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/yumechi/make-something-webhook/pkg/domain/interfaces"
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
	"github.com/yumechi/make-something-webhook/pkg/transform/backlog"
	"github.com/yumechi/make-something-webhook/pkg/transform/kibela"
	"github.com/yumechi/make-something-webhook/pkg/utils/async"
)

type notifyUseCase struct {
	notifier interfaces.Notifier

	backlogCfg     backlog.Config
	backlogHookURL string
	kibelaHookURL  string
}

// NewNotify creates the use case that transforms inbound webhook events and
// hands the canonical message to the notifier
func NewNotify(notifier interfaces.Notifier, backlogCfg backlog.Config, backlogHookURL, kibelaHookURL string) interfaces.WebhookUseCase {
	return &notifyUseCase{
		notifier:       notifier,
		backlogCfg:     backlogCfg,
		backlogHookURL: backlogHookURL,
		kibelaHookURL:  kibelaHookURL,
	}
}

// HandleBacklogEvent transforms a Backlog event payload and schedules delivery
func (uc *notifyUseCase) HandleBacklogEvent(ctx context.Context, payload []byte) error {
	msg, err := backlog.Transform(ctx, uc.backlogCfg, payload)
	if err != nil {
		return err
	}

	uc.deliver(ctx, uc.backlogHookURL, msg)
	return nil
}

// HandleKibelaEvent transforms a Kibela event payload and schedules delivery
func (uc *notifyUseCase) HandleKibelaEvent(ctx context.Context, payload []byte) error {
	msg, err := kibela.Transform(ctx, payload)
	if err != nil {
		return err
	}
	if msg == nil {
		// connectivity test ping: acknowledge without notifying
		ctxlog.From(ctx).Info("skipping delivery for no-op event")
		return nil
	}

	uc.deliver(ctx, uc.kibelaHookURL, msg)
	return nil
}

// deliver posts the message without blocking the inbound request. Delivery
// is fire-and-forget: failures are logged by the async dispatcher and never
// surfaced to the webhook caller.
func (uc *notifyUseCase) deliver(ctx context.Context, webhookURL string, msg *model.Message) {
	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.notifier.Post(ctx, webhookURL, msg)
	})
}
