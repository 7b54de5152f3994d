package kibela

import "strings"

// event is the inbound Kibela outgoing-webhook payload. The resource
// sub-object that matters is keyed by resource_type.
type event struct {
	Action       string   `json:"action"`
	ResourceType string   `json:"resource_type"`
	ActionUser   user     `json:"action_user"`
	Blog         *article `json:"blog"`
	Wiki         *article `json:"wiki"`
	Comment      *comment `json:"comment"`
	CommentReply *comment `json:"comment_reply"`
}

type user struct {
	Account string `json:"account"`
}

type article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	ContentMD   string `json:"content_md"`
	ContentDiff string `json:"content_diff"`
	Author      *user  `json:"author"`
	Authors     []user `json:"authors"`
}

// comment nests the article it was written on under either "blog" or "wiki"
type comment struct {
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	ContentMD string   `json:"content_md"`
	Blog      *article `json:"blog"`
	Wiki      *article `json:"wiki"`
}

// authorName normalizes the two documented shapes of article authorship:
// a single "author" object or an "authors" list. Multiple authors are
// joined with ", "; no authorship at all resolves to an empty string.
func authorName(a *article) string {
	if a == nil {
		return ""
	}
	if a.Author != nil {
		return a.Author.Account
	}
	if len(a.Authors) > 0 {
		accounts := make([]string, 0, len(a.Authors))
		for _, u := range a.Authors {
			accounts = append(accounts, u.Account)
		}
		return strings.Join(accounts, ", ")
	}
	return ""
}
