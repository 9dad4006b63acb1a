package redmine

import (
	"time"

	"github.com/shopspring/decimal"
)

type namedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type memberRef struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

type membershipsResponse struct {
	Memberships *[]struct {
		User *memberRef `json:"user"`
	} `json:"memberships"`
}

type timeEntryPayload struct {
	User    *namedRef        `json:"user"`
	Project *namedRef        `json:"project"`
	Hours   *decimal.Decimal `json:"hours"`
}

type timeEntriesResponse struct {
	TimeEntries *[]timeEntryPayload `json:"time_entries"`
}

type issuesResponse struct {
	Issues []struct {
		ID        int       `json:"id"`
		Subject   string    `json:"subject"`
		CreatedOn time.Time `json:"created_on"`
	} `json:"issues"`
}

type createIssuePayload struct {
	ProjectID      string `json:"project_id"`
	TrackerID      int    `json:"tracker_id"`
	ParentIssueID  int    `json:"parent_issue_id,omitempty"`
	Subject        string `json:"subject"`
	Description    string `json:"description"`
	PriorityID     int    `json:"priority_id"`
	WatcherUserIDs []int  `json:"watcher_user_ids"`
}

type createIssueRequest struct {
	Issue createIssuePayload `json:"issue"`
}

type createIssueResponse struct {
	Issue *struct {
		ID int `json:"id"`
	} `json:"issue"`
}
