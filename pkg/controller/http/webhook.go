package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/yumechi/make-something-webhook/pkg/domain/interfaces"
	"github.com/yumechi/make-something-webhook/pkg/domain/types"
)

// WebhookHandler handles inbound Kibela/Backlog webhooks
type WebhookHandler struct {
	webhookUC interfaces.WebhookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: webhookUC,
	}
}

// HandleBacklog processes Backlog webhook requests
func (h *WebhookHandler) HandleBacklog(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "backlog", h.webhookUC.HandleBacklogEvent)
}

// HandleKibela processes Kibela webhook requests
func (h *WebhookHandler) HandleKibela(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "kibela", h.webhookUC.HandleKibelaEvent)
}

func (h *WebhookHandler) handle(w http.ResponseWriter, r *http.Request, mode string, process func(ctx context.Context, payload []byte) error) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := process(ctx, body); err != nil {
		logger.Error("Failed to process webhook event", "mode", mode, "error", err)
		writeError(w, err, statusOf(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"mode":   mode,
	}); err != nil {
		logger.Error("Failed to encode success response", "error", err)
	}
}

// statusOf maps the transformation error taxonomy to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, types.ErrUnknownEventType),
		errors.Is(err, types.ErrMalformedPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
