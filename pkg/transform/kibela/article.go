package kibela

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
	"github.com/yumechi/make-something-webhook/pkg/domain/types"
	"github.com/yumechi/make-something-webhook/pkg/utils/text"
)

func buildArticleCreated(ev *event) (model.EmbedSource, string, error) {
	a, err := ev.resourceArticle()
	if err != nil {
		return model.EmbedSource{}, "", err
	}
	src := buildArticle(ev, a)
	src.Description = text.Truncate(a.ContentMD, descriptionLimit, truncatedSuffix)
	return src, "記事が作成されました", nil
}

func buildArticleUpdated(ev *event) (model.EmbedSource, string, error) {
	a, err := ev.resourceArticle()
	if err != nil {
		return model.EmbedSource{}, "", err
	}
	src := buildArticle(ev, a)
	src.Description = text.DiffBlock(text.Truncate(a.ContentDiff, descriptionLimit, truncatedSuffix))
	return src, "記事が更新されました", nil
}

func buildArticleDeleted(ev *event) (model.EmbedSource, string, error) {
	a, err := ev.resourceArticle()
	if err != nil {
		return model.EmbedSource{}, "", err
	}
	src := buildArticle(ev, a)
	src.Description = ""
	return src, "記事が削除されました", nil
}

// buildArticle extracts the parts shared by every blog/wiki action. Title
// and URL fall back to empty strings, not sentinel literals.
func buildArticle(ev *event, a *article) model.EmbedSource {
	return model.EmbedSource{
		AuthorName: ev.ActionUser.Account,
		Title:      a.Title,
		TitleURL:   a.URL,
		Fields: []model.Field{
			{Name: "記事の作成者", Value: authorName(a), Inline: true},
		},
	}
}

// resourceArticle resolves the article sub-object named by resource_type
func (ev *event) resourceArticle() (*article, error) {
	var a *article
	switch ev.ResourceType {
	case "blog":
		a = ev.Blog
	case "wiki":
		a = ev.Wiki
	}
	if a == nil {
		return nil, goerr.Wrap(types.ErrMalformedPayload, "article resource is missing",
			goerr.V("resource_type", ev.ResourceType))
	}
	return a, nil
}
