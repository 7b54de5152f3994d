package backlog

import (
	"fmt"

	"github.com/yumechi/make-something-webhook/pkg/domain/model"
	"github.com/yumechi/make-something-webhook/pkg/utils/text"
)

const (
	descriptionLimit = 500
	truncatedSuffix  = "（省略されました）"
)

func buildIssueCreated(cfg Config, ev *event) (model.EmbedSource, string) {
	return buildIssue(cfg, ev), "課題を作成しました"
}

func buildIssueUpdated(cfg Config, ev *event) (model.EmbedSource, string) {
	return buildIssue(cfg, ev), "課題を更新しました"
}

func buildIssueCommented(cfg Config, ev *event) (model.EmbedSource, string) {
	src := buildIssue(cfg, ev)

	// the comment body replaces the issue description; the rest of the
	// issue structure is embedded in the comment payload unchanged
	var body string
	if ev.Content.Comment != nil {
		body = ev.Content.Comment.Content
	}
	src.Description = text.Truncate(body, descriptionLimit, truncatedSuffix)

	return src, "課題にコメントが追加されました"
}

func buildIssueDeleted(cfg Config, ev *event) (model.EmbedSource, string) {
	src := buildIssue(cfg, ev)

	// a deleted issue has no summary to link; show the issue key itself
	// and drop the body and field delta
	src.Title = fmt.Sprintf("%s-%s", cfg.ProjectPrefix, ev.Content.ID)
	src.Description = ""
	src.Fields = nil

	return src, "課題を削除しました"
}

func buildIssue(cfg Config, ev *event) model.EmbedSource {
	return model.EmbedSource{
		AuthorName:  fallback(ev.CreatedUser.Name, "名前なし"),
		Title:       fallback(ev.Content.Summary, "タイトルなし"),
		TitleURL:    cfg.issueURL(ev.Content.ID),
		Description: text.Truncate(ev.Content.Description, descriptionLimit, truncatedSuffix),
		Fields:      issueFields(&ev.Content),
	}
}

// issueFields lists the issue attributes in display order. Empty values are
// filtered by the assembler; only the assignee carries a non-empty fallback.
func issueFields(c *content) []model.Field {
	return []model.Field{
		{Name: "種別", Value: itemName(c.IssueType), Inline: true},
		{Name: "担当者", Value: fallback(userName(c.Assignee), "未指定"), Inline: true},
		{Name: "優先度", Value: itemName(c.Priority), Inline: true},
		{Name: "状態", Value: itemName(c.Status), Inline: true},
		{Name: "マイルストーン", Value: firstName(c.Milestone), Inline: true},
		{Name: "発生バージョン", Value: firstName(c.Versions), Inline: true},
		{Name: "期限日", Value: c.DueDate, Inline: true},
	}
}

func itemName(i *namedItem) string {
	if i == nil {
		return ""
	}
	return i.Name
}

func userName(u *user) string {
	if u == nil {
		return ""
	}
	return u.Name
}

// firstName picks the first entry of a milestone/version list
func firstName(items []namedItem) string {
	if len(items) == 0 {
		return ""
	}
	return items[0].Name
}
