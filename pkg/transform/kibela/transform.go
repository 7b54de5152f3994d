package kibela

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
	"github.com/yumechi/make-something-webhook/pkg/domain/types"
)

const (
	username = "kibela webhook"

	// shown when a variant does not declare its own content line
	fallbackContent = "新しい通知です"

	descriptionLimit = 500
	truncatedSuffix  = "（省略されました）"
)

// builder extracts the embed source and the per-variant content line from
// one decoded event
type builder func(ev *event) (model.EmbedSource, string, error)

// builders is keyed by resource_type, then by action. Kibela documents its
// event catalog as the cross product of the two.
// https://support.kibe.la/hc/ja/articles/360035043592
var builders = map[string]map[string]builder{
	"blog": {
		"create": buildArticleCreated,
		"update": buildArticleUpdated,
		"delete": buildArticleDeleted,
	},
	"wiki": {
		"create": buildArticleCreated,
		"update": buildArticleUpdated,
		"delete": buildArticleDeleted,
	},
	"comment": {
		"create": buildCommentCreated,
		"update": buildCommentUpdated,
		"delete": buildCommentDeleted,
	},
	"comment_reply": {
		"create": buildCommentCreated,
		"update": buildCommentUpdated,
		"delete": buildCommentDeleted,
	},
}

// Transform converts a raw Kibela webhook payload into the canonical
// message. The (resource_type, action) pair selects the variant.
//
// A ("test", "send") connectivity ping returns (nil, nil): the request must
// be acknowledged but produces no notification.
func Transform(ctx context.Context, raw []byte) (*model.Message, error) {
	var ev event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "failed to decode kibela payload",
			goerr.V("cause", err.Error()))
	}

	if ev.Action == "send" && ev.ResourceType == "test" {
		ctxlog.From(ctx).Info("kibela connectivity test received")
		return nil, nil
	}

	build, ok := builders[ev.ResourceType][ev.Action]
	if !ok {
		ctxlog.From(ctx).Warn("unknown kibela event type",
			"resource_type", ev.ResourceType,
			"action", ev.Action,
		)
		return nil, goerr.Wrap(types.ErrUnknownEventType, "no transformer for kibela event",
			goerr.V("resource_type", ev.ResourceType),
			goerr.V("action", ev.Action),
		)
	}

	src, content, err := build(&ev)
	if err != nil {
		return nil, err
	}
	if content == "" {
		content = fallbackContent
	}
	return model.NewMessage(username, content, src), nil
}
