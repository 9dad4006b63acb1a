package entity

import "time"

// IssueQuery describes the search for the most recent check ticket.
type IssueQuery struct {
	ProjectID      string
	TrackerID      int
	SubjectKeyword string
}

// IssueSummary is the subset of a Redmine issue used to locate the last checked date.
type IssueSummary struct {
	ID        int       `json:"id"`
	Subject   string    `json:"subject"`
	CreatedOn time.Time `json:"created_on"`
}

// Ticket is the composed check ticket, before it is sent to Redmine.
type Ticket struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	PriorityID  int    `json:"priority_id"`
	WatcherIDs  []int  `json:"watcher_user_ids"`
}

// NewIssue is the payload for creating an issue.
type NewIssue struct {
	ProjectID     string
	TrackerID     int
	ParentIssueID int // 0 means no parent
	Ticket
}
