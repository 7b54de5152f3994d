package backlog

import "encoding/json"

// Backlog webhook type codes. Only the codes present in the dispatch table
// are handled; everything else is rejected.
const (
	typeIssueCreated     = 1
	typeIssueUpdated     = 2
	typeIssueCommented   = 3
	typeIssueDeleted     = 4
	typeIssueMultiUpdate = 14
	typeMilestoneCreated = 22
	typeMilestoneUpdated = 23
	typeMilestoneDeleted = 24
)

// event is the inbound Backlog webhook payload. Most fields are optional on
// the wire; absent values decode to zero values and are resolved through
// the per-variant fallback literals.
type event struct {
	Type        int     `json:"type"`
	Project     project `json:"project"`
	Content     content `json:"content"`
	CreatedUser user    `json:"createdUser"`
}

type project struct {
	ID         json.Number `json:"id"`
	ProjectKey string      `json:"projectKey"`
}

type user struct {
	Name string `json:"name"`
}

type namedItem struct {
	Name string `json:"name"`
}

// content carries the union of the fields used across issue, comment,
// milestone and bulk-update events
type content struct {
	ID            json.Number `json:"id"`
	KeyID         json.Number `json:"key_id"`
	Summary       string      `json:"summary"`
	Description   string      `json:"description"`
	Name          string      `json:"name"`
	StartDate     string      `json:"start_date"`
	ReferenceDate string      `json:"reference_date"`
	DueDate       string      `json:"dueDate"`
	IssueType     *namedItem  `json:"issueType"`
	Assignee      *user       `json:"assignee"`
	Priority      *namedItem  `json:"priority"`
	Status        *namedItem  `json:"status"`
	Milestone     []namedItem `json:"milestone"`
	Versions      []namedItem `json:"versions"`
	Comment       *comment    `json:"comment"`
	Link          []link      `json:"link"`
	Changes       []change    `json:"changes"`
}

type comment struct {
	Content string `json:"content"`
}

// link is one entry of a bulk-update event's issue list
type link struct {
	ID      json.Number `json:"id"`
	KeyID   json.Number `json:"key_id"`
	Title   string      `json:"title"`
	Comment *comment    `json:"comment"`
}

type change struct {
	Field    string `json:"field"`
	NewValue string `json:"new_value"`
}
