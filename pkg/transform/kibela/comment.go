package kibela

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
	"github.com/yumechi/make-something-webhook/pkg/domain/types"
	"github.com/yumechi/make-something-webhook/pkg/utils/text"
)

// commentSource keeps the comment and the article it was written on apart:
// the surfaced title/url are the comment's own, while authorship context
// comes from the article.
type commentSource struct {
	comment *comment
	article *article
}

func buildCommentCreated(ev *event) (model.EmbedSource, string, error) {
	cs, err := ev.resourceComment()
	if err != nil {
		return model.EmbedSource{}, "", err
	}
	src := cs.build(ev)
	src.Description = text.Truncate(cs.comment.ContentMD, descriptionLimit, truncatedSuffix)
	return src, "コメントが付きました", nil
}

func buildCommentUpdated(ev *event) (model.EmbedSource, string, error) {
	cs, err := ev.resourceComment()
	if err != nil {
		return model.EmbedSource{}, "", err
	}
	src := cs.build(ev)
	// comments carry no diff, so the updated body is shown as is
	src.Description = text.Truncate(cs.comment.ContentMD, descriptionLimit, truncatedSuffix)
	return src, "コメントが更新されました", nil
}

func buildCommentDeleted(ev *event) (model.EmbedSource, string, error) {
	cs, err := ev.resourceComment()
	if err != nil {
		return model.EmbedSource{}, "", err
	}
	src := cs.build(ev)
	src.Description = ""
	return src, "コメントが削除されました", nil
}

func (cs commentSource) build(ev *event) model.EmbedSource {
	return model.EmbedSource{
		AuthorName: ev.ActionUser.Account,
		Title:      cs.comment.Title,
		TitleURL:   cs.comment.URL,
		Fields: []model.Field{
			{Name: "記事の作成者", Value: authorName(cs.article), Inline: true},
		},
	}
}

// resourceComment resolves the comment sub-object named by resource_type
// and the article nested inside it. A comment without its article is
// unusable and rejected.
func (ev *event) resourceComment() (commentSource, error) {
	var c *comment
	switch ev.ResourceType {
	case "comment":
		c = ev.Comment
	case "comment_reply":
		c = ev.CommentReply
	}
	if c == nil {
		return commentSource{}, goerr.Wrap(types.ErrMalformedPayload, "comment resource is missing",
			goerr.V("resource_type", ev.ResourceType))
	}

	a := c.Blog
	if a == nil {
		a = c.Wiki
	}
	if a == nil {
		return commentSource{}, goerr.Wrap(types.ErrMalformedPayload, "comment has neither blog nor wiki article",
			goerr.V("resource_type", ev.ResourceType))
	}

	return commentSource{comment: c, article: a}, nil
}
