package entity

import "time"

// CheckReport holds everything produced by one time-entry check run.
type CheckReport struct {
	TargetDate     time.Time      `json:"-"`
	Date           string         `json:"date"`
	TargetUsers    int            `json:"target_users"`
	LoggedUsers    int            `json:"logged_users"`
	Reconciliation Reconciliation `json:"reconciliation"`
	Projects       []ProjectTotal `json:"projects"`
	Ticket         Ticket         `json:"ticket"`
	IssueID        int            `json:"issue_id,omitempty"`
	DryRun         bool           `json:"dry_run"`
}
