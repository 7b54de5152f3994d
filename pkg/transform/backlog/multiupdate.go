package backlog

import (
	"fmt"
	"strings"

	"github.com/yumechi/make-something-webhook/pkg/domain/model"
	"github.com/yumechi/make-something-webhook/pkg/utils/text"
)

const multiUpdateCommentLimit = 300

// buildMultiUpdate renders a bulk issue update. There is no single issue to
// link, so the title stays empty and the linked issues move into the
// description as a markdown list.
func buildMultiUpdate(cfg Config, ev *event) (model.EmbedSource, string) {
	var lines []string
	var capturedComment string
	for _, l := range ev.Content.Link {
		lines = append(lines, fmt.Sprintf("[%s-%s %s](%s)",
			cfg.ProjectPrefix, l.KeyID, l.Title, cfg.issueURL(l.KeyID)))

		// When several linked issues carry a comment, the last one wins.
		// Observed behavior of the upstream webhook consumer; kept as is.
		if l.Comment != nil && l.Comment.Content != "" {
			capturedComment = l.Comment.Content
		}
	}

	description := strings.Join(lines, "\n")
	if description == "" {
		description = "内容無し"
	}

	var fields []model.Field
	if capturedComment != "" {
		fields = append(fields, model.Field{
			Name:   "コメント",
			Value:  text.Truncate(capturedComment, multiUpdateCommentLimit, truncatedSuffix),
			Inline: true,
		})
	}
	for _, ch := range ev.Content.Changes {
		fields = append(fields, model.Field{
			Name:   ch.Field,
			Value:  fallback(ch.NewValue, "changed"),
			Inline: true,
		})
	}

	src := model.EmbedSource{
		AuthorName:  fallback(ev.CreatedUser.Name, "名前なし"),
		Title:       "",
		TitleURL:    cfg.projectURL(),
		Description: description,
		Fields:      fields,
	}
	return src, "課題をまとめて更新しました"
}
