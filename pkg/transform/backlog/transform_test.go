package backlog_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
	"github.com/yumechi/make-something-webhook/pkg/domain/types"
	"github.com/yumechi/make-something-webhook/pkg/transform/backlog"
)

var testCfg = backlog.Config{
	BaseURL:       "https://example.backlog.jp",
	ProjectPrefix: "PROJ",
}

func fieldValue(t *testing.T, embed model.Embed, name string) string {
	t.Helper()
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func TestTransform_IssueCreated(t *testing.T) {
	payload := `{
		"type": 1,
		"project": {"id": 100, "projectKey": "PROJ"},
		"content": {
			"id": 42,
			"key_id": 42,
			"summary": "Bug",
			"description": "it breaks",
			"issueType": {"name": "Bug"},
			"priority": {"name": "High"},
			"assignee": null,
			"milestone": [],
			"versions": [],
			"dueDate": null
		},
		"createdUser": {"name": "alice"}
	}`

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)
	gt.NotNil(t, msg)

	gt.Value(t, msg.Username).Equal("backlog webhook")
	gt.Value(t, msg.Content).Equal("課題を作成しました")
	gt.Number(t, len(msg.Embeds)).Equal(1)

	embed := msg.Embeds[0]
	gt.Value(t, embed.Author.Name).Equal("alice")
	gt.Value(t, embed.Title).Equal("Bug")
	gt.Value(t, embed.URL).Equal("https://example.backlog.jp/view/PROJ-42")
	gt.Value(t, embed.Description).Equal("it breaks")

	// empty attributes are dropped; the assignee keeps its non-empty fallback
	gt.Number(t, len(embed.Fields)).Equal(3)
	gt.Value(t, fieldValue(t, embed, "種別")).Equal("Bug")
	gt.Value(t, fieldValue(t, embed, "担当者")).Equal("未指定")
	gt.Value(t, fieldValue(t, embed, "優先度")).Equal("High")
}

func TestTransform_IssueCreated_Fallbacks(t *testing.T) {
	payload := `{"type": 1, "content": {"id": 7}, "createdUser": {}}`

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)

	embed := msg.Embeds[0]
	gt.Value(t, embed.Title).Equal("タイトルなし")
	gt.Value(t, embed.Author.Name).Equal("名前なし")
	gt.Value(t, fieldValue(t, embed, "担当者")).Equal("未指定")
}

func TestTransform_IssueUpdated_FullFields(t *testing.T) {
	payload := `{
		"type": 2,
		"content": {
			"id": 8,
			"summary": "Tweak",
			"description": "adjust layout",
			"issueType": {"name": "Task"},
			"assignee": {"name": "bob"},
			"priority": {"name": "Low"},
			"status": {"name": "処理中"},
			"milestone": [{"name": "v1.0"}, {"name": "v1.1"}],
			"versions": [{"name": "v0.9"}],
			"dueDate": "2026-09-30T00:00:00Z"
		},
		"createdUser": {"name": "bob"}
	}`

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)

	embed := msg.Embeds[0]
	gt.Value(t, msg.Content).Equal("課題を更新しました")
	gt.Number(t, len(embed.Fields)).Equal(7)
	gt.Value(t, fieldValue(t, embed, "状態")).Equal("処理中")

	// milestone and version lists surface their first element only
	gt.Value(t, fieldValue(t, embed, "マイルストーン")).Equal("v1.0")
	gt.Value(t, fieldValue(t, embed, "発生バージョン")).Equal("v0.9")

	// declared display order
	names := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	gt.Value(t, names).Equal([]string{"種別", "担当者", "優先度", "状態", "マイルストーン", "発生バージョン", "期限日"})
}

func TestTransform_IssueCommented(t *testing.T) {
	payload := `{
		"type": 3,
		"content": {
			"id": 42,
			"summary": "Bug",
			"description": "it breaks",
			"issueType": {"name": "Bug"},
			"comment": {"content": "still reproducible"}
		},
		"createdUser": {"name": "carol"}
	}`

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)

	embed := msg.Embeds[0]
	gt.Value(t, msg.Content).Equal("課題にコメントが追加されました")
	gt.Value(t, embed.Title).Equal("Bug")
	// the comment body replaces the issue description
	gt.Value(t, embed.Description).Equal("still reproducible")
	gt.Value(t, fieldValue(t, embed, "種別")).Equal("Bug")
}

func TestTransform_IssueDeleted(t *testing.T) {
	payload := `{
		"type": 4,
		"content": {"id": 42, "summary": "Bug", "description": "it breaks", "issueType": {"name": "Bug"}},
		"createdUser": {"name": "alice"}
	}`

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)

	embed := msg.Embeds[0]
	gt.Value(t, msg.Content).Equal("課題を削除しました")
	gt.Value(t, embed.Title).Equal("PROJ-42")
	gt.Value(t, embed.Description).Equal("")
	gt.Number(t, len(embed.Fields)).Equal(0)
}

func TestTransform_DescriptionTruncation(t *testing.T) {
	long := strings.Repeat("あ", 600)
	payload := fmt.Sprintf(`{"type": 1, "content": {"id": 1, "summary": "s", "description": %q}, "createdUser": {"name": "a"}}`, long)

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)

	desc := msg.Embeds[0].Description
	gt.True(t, strings.HasSuffix(desc, "（省略されました）"))
	gt.Value(t, len([]rune(desc))).Equal(500 + len([]rune("（省略されました）")))

	// a description exactly at the limit passes through unchanged
	exact := strings.Repeat("あ", 500)
	payload = fmt.Sprintf(`{"type": 1, "content": {"id": 1, "summary": "s", "description": %q}, "createdUser": {"name": "a"}}`, exact)
	msg, err = backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)
	gt.Value(t, msg.Embeds[0].Description).Equal(exact)
}

func TestTransform_Milestone(t *testing.T) {
	t.Run("with numeric ids builds search link", func(t *testing.T) {
		payload := `{
			"type": 22,
			"project": {"id": 100},
			"content": {
				"id": 5,
				"name": "Sprint 3",
				"description": "third sprint",
				"start_date": "2026-09-01",
				"reference_date": "2026-09-14"
			},
			"createdUser": {"name": "alice"}
		}`

		msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
		gt.NoError(t, err)

		embed := msg.Embeds[0]
		gt.Value(t, msg.Content).Equal("マイルストーンを作成しました")
		gt.Value(t, embed.Title).Equal("Sprint 3")
		gt.Value(t, embed.URL).Equal("https://example.backlog.jp/find/PROJ?projectId=100&condition.milestoneId=5")
		gt.Value(t, embed.Description).Equal("third sprint")
		gt.Value(t, fieldValue(t, embed, "開始日")).Equal("2026-09-01")
		gt.Value(t, fieldValue(t, embed, "期限日")).Equal("2026-09-14")
	})

	t.Run("missing project id falls back to project link", func(t *testing.T) {
		payload := `{"type": 23, "content": {"id": 5, "name": "Sprint 3"}, "createdUser": {"name": "alice"}}`

		msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
		gt.NoError(t, err)
		gt.Value(t, msg.Content).Equal("マイルストーンを更新しました")
		gt.Value(t, msg.Embeds[0].URL).Equal("https://example.backlog.jp/projects/PROJ")
	})

	t.Run("missing name falls back", func(t *testing.T) {
		payload := `{"type": 24, "project": {"id": 100}, "content": {"id": 5}, "createdUser": {"name": "alice"}}`

		msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
		gt.NoError(t, err)
		gt.Value(t, msg.Content).Equal("マイルストーンを削除しました")
		gt.Value(t, msg.Embeds[0].Title).Equal("名称無し")
		// dates absent: no fields at all
		gt.Number(t, len(msg.Embeds[0].Fields)).Equal(0)
	})
}

func TestTransform_MultiUpdate(t *testing.T) {
	payload := `{
		"type": 14,
		"content": {
			"link": [
				{"id": 1, "key_id": 10, "title": "First", "comment": {"content": "early comment"}},
				{"id": 2, "key_id": 11, "title": "Second", "comment": {"content": "later comment"}},
				{"id": 3, "key_id": 12, "title": "Third"}
			],
			"changes": [
				{"field": "status", "new_value": "Closed"},
				{"field": "assignee", "new_value": ""}
			]
		},
		"createdUser": {"name": "alice"}
	}`

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)

	embed := msg.Embeds[0]
	gt.Value(t, msg.Content).Equal("課題をまとめて更新しました")
	gt.Value(t, embed.Title).Equal("")
	gt.Value(t, embed.URL).Equal("https://example.backlog.jp/projects/PROJ")

	lines := strings.Split(embed.Description, "\n")
	gt.Number(t, len(lines)).Equal(3)
	gt.Value(t, lines[0]).Equal("[PROJ-10 First](https://example.backlog.jp/view/PROJ-10)")
	gt.Value(t, lines[2]).Equal("[PROJ-12 Third](https://example.backlog.jp/view/PROJ-12)")

	// the last linked comment wins; a change with empty new_value keeps
	// its "changed" placeholder
	gt.Value(t, fieldValue(t, embed, "コメント")).Equal("later comment")
	gt.Value(t, fieldValue(t, embed, "status")).Equal("Closed")
	gt.Value(t, fieldValue(t, embed, "assignee")).Equal("changed")
}

func TestTransform_MultiUpdate_EmptyLink(t *testing.T) {
	payload := `{"type": 14, "content": {"link": []}, "createdUser": {"name": "alice"}}`

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)
	gt.Value(t, msg.Embeds[0].Description).Equal("内容無し")
	gt.Number(t, len(msg.Embeds[0].Fields)).Equal(0)
}

func TestTransform_MultiUpdate_CommentTruncation(t *testing.T) {
	long := strings.Repeat("コ", 400)
	payload := fmt.Sprintf(`{"type": 14, "content": {"link": [{"key_id": 1, "title": "t", "comment": {"content": %q}}]}, "createdUser": {"name": "a"}}`, long)

	msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
	gt.NoError(t, err)

	comment := fieldValue(t, msg.Embeds[0], "コメント")
	gt.True(t, strings.HasSuffix(comment, "（省略されました）"))
	gt.Value(t, len([]rune(comment))).Equal(300 + len([]rune("（省略されました）")))
}

func TestTransform_UnknownType(t *testing.T) {
	for _, code := range []int{0, 5, 12, 99} {
		t.Run(fmt.Sprintf("type %d", code), func(t *testing.T) {
			payload := fmt.Sprintf(`{"type": %d}`, code)
			msg, err := backlog.Transform(context.Background(), testCfg, []byte(payload))
			gt.Error(t, err)
			gt.Value(t, msg).Nil()
			gt.True(t, errors.Is(err, types.ErrUnknownEventType))
		})
	}
}

func TestTransform_InvalidJSON(t *testing.T) {
	msg, err := backlog.Transform(context.Background(), testCfg, []byte("not json"))
	gt.Error(t, err)
	gt.Value(t, msg).Nil()
	gt.True(t, errors.Is(err, types.ErrMalformedPayload))
}
