package backlog

import (
	"github.com/yumechi/make-something-webhook/pkg/domain/model"
)

func buildMilestoneCreated(cfg Config, ev *event) (model.EmbedSource, string) {
	return buildMilestone(cfg, ev), "マイルストーンを作成しました"
}

func buildMilestoneUpdated(cfg Config, ev *event) (model.EmbedSource, string) {
	return buildMilestone(cfg, ev), "マイルストーンを更新しました"
}

func buildMilestoneDeleted(cfg Config, ev *event) (model.EmbedSource, string) {
	return buildMilestone(cfg, ev), "マイルストーンを削除しました"
}

func buildMilestone(cfg Config, ev *event) model.EmbedSource {
	return model.EmbedSource{
		AuthorName:  fallback(ev.CreatedUser.Name, "名前なし"),
		Title:       fallback(ev.Content.Name, "名称無し"),
		TitleURL:    milestoneURL(cfg, ev),
		Description: ev.Content.Description,
		Fields: []model.Field{
			{Name: "開始日", Value: ev.Content.StartDate, Inline: true},
			{Name: "期限日", Value: ev.Content.ReferenceDate, Inline: true},
		},
	}
}

// milestoneURL builds the issue-search deep link filtered by milestone.
// When either id is missing or non-numeric there is nothing to filter on,
// so the link falls back to the project top page.
func milestoneURL(cfg Config, ev *event) string {
	projectID, err := ev.Project.ID.Int64()
	if err != nil {
		return cfg.projectURL()
	}
	milestoneID, err := ev.Content.ID.Int64()
	if err != nil {
		return cfg.projectURL()
	}
	return cfg.milestoneSearchURL(projectID, milestoneID)
}
