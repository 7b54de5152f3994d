package backlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
	"github.com/yumechi/make-something-webhook/pkg/domain/types"
)

const (
	username = "backlog webhook"

	// shown when a variant does not declare its own content line
	fallbackContent = "新しい更新通知なのです。"
)

// Config holds the Backlog space settings needed to build deep links
type Config struct {
	BaseURL       string
	ProjectPrefix string
}

func (c Config) issueURL(issueID json.Number) string {
	return fmt.Sprintf("%s/view/%s-%s", c.BaseURL, c.ProjectPrefix, issueID)
}

func (c Config) projectURL() string {
	return fmt.Sprintf("%s/projects/%s", c.BaseURL, c.ProjectPrefix)
}

func (c Config) milestoneSearchURL(projectID, milestoneID int64) string {
	return fmt.Sprintf("%s/find/%s?projectId=%d&condition.milestoneId=%d",
		c.BaseURL, c.ProjectPrefix, projectID, milestoneID)
}

// builder extracts the embed source and the per-variant content line from
// one decoded event
type builder func(cfg Config, ev *event) (model.EmbedSource, string)

var builders = map[int]builder{
	typeIssueCreated:     buildIssueCreated,
	typeIssueUpdated:     buildIssueUpdated,
	typeIssueCommented:   buildIssueCommented,
	typeIssueDeleted:     buildIssueDeleted,
	typeIssueMultiUpdate: buildMultiUpdate,
	typeMilestoneCreated: buildMilestoneCreated,
	typeMilestoneUpdated: buildMilestoneUpdated,
	typeMilestoneDeleted: buildMilestoneDeleted,
}

// Transform converts a raw Backlog webhook payload into the canonical
// message. The integer type code selects the variant; unmapped codes are
// logged and rejected.
func Transform(ctx context.Context, cfg Config, raw []byte) (*model.Message, error) {
	var ev event
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "failed to decode backlog payload",
			goerr.V("cause", err.Error()))
	}

	build, ok := builders[ev.Type]
	if !ok {
		ctxlog.From(ctx).Warn("unknown backlog event type", "type", ev.Type)
		return nil, goerr.Wrap(types.ErrUnknownEventType, "no transformer for backlog type code",
			goerr.V("type", ev.Type))
	}

	src, content := build(cfg, &ev)
	if content == "" {
		content = fallbackContent
	}
	return model.NewMessage(username, content, src), nil
}

func fallback(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}
