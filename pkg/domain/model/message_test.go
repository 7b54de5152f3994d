package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
)

func TestNewMessage(t *testing.T) {
	src := model.EmbedSource{
		AuthorName:  "alice",
		Title:       "Bug report",
		TitleURL:    "https://example.backlog.jp/view/PROJ-42",
		Description: "something broke",
		Fields: []model.Field{
			{Name: "種別", Value: "Bug", Inline: true},
			{Name: "状態", Value: "", Inline: true},
			{Name: "優先度", Value: "High", Inline: true},
		},
	}

	msg := model.NewMessage("backlog webhook", "課題を作成しました", src)

	gt.Value(t, msg.Username).Equal("backlog webhook")
	gt.Value(t, msg.Content).Equal("課題を作成しました")
	gt.Number(t, len(msg.Embeds)).Equal(1)

	embed := msg.Embeds[0]
	gt.Value(t, embed.Author.Name).Equal("alice")
	gt.Value(t, embed.Title).Equal("Bug report")
	gt.Value(t, embed.URL).Equal("https://example.backlog.jp/view/PROJ-42")
	gt.Value(t, embed.Description).Equal("something broke")

	// empty-valued field is filtered, order of the rest is preserved
	gt.Number(t, len(embed.Fields)).Equal(2)
	gt.Value(t, embed.Fields[0].Name).Equal("種別")
	gt.Value(t, embed.Fields[1].Name).Equal("優先度")
}

func TestNewMessage_AllFieldsEmpty(t *testing.T) {
	src := model.EmbedSource{
		AuthorName: "alice",
		Fields: []model.Field{
			{Name: "a", Value: "", Inline: true},
			{Name: "b", Value: "", Inline: true},
		},
	}

	msg := model.NewMessage("kibela webhook", "新しい通知です", src)

	// fields key must be absent from the JSON form, not an empty list
	raw, err := json.Marshal(msg)
	gt.NoError(t, err)
	gt.False(t, strings.Contains(string(raw), `"fields"`))
}

func TestNewMessage_JSONShape(t *testing.T) {
	src := model.EmbedSource{
		AuthorName:  "bob",
		Title:       "t",
		TitleURL:    "",
		Description: "d",
		Fields: []model.Field{
			{Name: "n", Value: "v", Inline: true},
		},
	}

	raw, err := json.Marshal(model.NewMessage("u", "c", src))
	gt.NoError(t, err)

	var decoded map[string]any
	gt.NoError(t, json.Unmarshal(raw, &decoded))

	embeds := decoded["embeds"].([]any)
	gt.Number(t, len(embeds)).Equal(1)

	embed := embeds[0].(map[string]any)
	gt.Value(t, embed["author"].(map[string]any)["name"]).Equal("bob")
	// empty url is a valid value and must still be serialized
	gt.Value(t, embed["url"]).Equal("")

	field := embed["fields"].([]any)[0].(map[string]any)
	gt.Value(t, field["inline"]).Equal(true)
}
