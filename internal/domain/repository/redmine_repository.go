package repository

import (
	"context"
	"time"

	"github.com/diillson/redmine-timecheck-go/internal/domain/entity"
)

// TimeTrackingRepository fetches the data reconciled by a check run.
//
//go:generate mockgen -destination=mocks/mock_redmine_repository.go -package=mocks -source=redmine_repository.go
type TimeTrackingRepository interface {
	GetProjectMembers(ctx context.Context, projectID string) ([]entity.Member, error)
	GetTimeEntries(ctx context.Context, date time.Time) ([]entity.TimeEntry, error)
}

// IssueRepository looks up and creates check tickets.
type IssueRepository interface {
	// FindLatestIssue returns the most recently created issue matching the
	// query, or nil when there is none.
	FindLatestIssue(ctx context.Context, query entity.IssueQuery) (*entity.IssueSummary, error)
	CreateIssue(ctx context.Context, issue entity.NewIssue) (int, error)
}
