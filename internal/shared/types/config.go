package types

import (
	"fmt"
	"strings"
)

const (
	DefaultPriorityID     = 1
	DefaultPageLimit      = 100
	DefaultSubjectKeyword = "Time entry check"
)

// Config represents the application configuration that can be loaded from a file
// and overridden by environment variables.
type Config struct {
	RedmineURL         string `json:"redmine_url" yaml:"redmine_url" toml:"redmine_url" envconfig:"REDMINE_URL"`
	APIKey             string `json:"api_key" yaml:"api_key" toml:"api_key" envconfig:"REDMINE_API_KEY"`
	ProjectID          string `json:"project_id" yaml:"project_id" toml:"project_id" envconfig:"PROJECT_ID"`
	TargetUserIDs      []int  `json:"target_user_ids" yaml:"target_user_ids" toml:"target_user_ids" envconfig:"TARGET_USER_IDS"`
	TrackerID          int    `json:"tracker_id" yaml:"tracker_id" toml:"tracker_id" envconfig:"TRACKER_ID"`
	ParentIssueID      int    `json:"parent_issue_id" yaml:"parent_issue_id" toml:"parent_issue_id" envconfig:"PARENT_ISSUE_ID"`
	PriorityID         int    `json:"priority_id" yaml:"priority_id" toml:"priority_id" envconfig:"PRIORITY_ID"`
	SubjectKeyword     string `json:"subject_keyword" yaml:"subject_keyword" toml:"subject_keyword" envconfig:"SUBJECT_KEYWORD"`
	PageLimit          int    `json:"page_limit" yaml:"page_limit" toml:"page_limit" envconfig:"PAGE_LIMIT"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify" toml:"insecure_skip_verify" envconfig:"INSECURE_SKIP_VERIFY"`
	// PDFFontPath aponta para uma fonte TrueType usada no PDF; sem ela, só nomes em cp1252 saem corretos.
	PDFFontPath        string `json:"pdf_font_path" yaml:"pdf_font_path" toml:"pdf_font_path" envconfig:"PDF_FONT_PATH"`
}

// DefaultConfig returns the configuration used before any file or environment is applied.
func DefaultConfig() *Config {
	return &Config{
		PriorityID:     DefaultPriorityID,
		PageLimit:      DefaultPageLimit,
		SubjectKeyword: DefaultSubjectKeyword,
	}
}

// Merge copies every non-zero field of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.RedmineURL != "" {
		c.RedmineURL = other.RedmineURL
	}
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.ProjectID != "" {
		c.ProjectID = other.ProjectID
	}
	if len(other.TargetUserIDs) > 0 {
		c.TargetUserIDs = other.TargetUserIDs
	}
	if other.TrackerID != 0 {
		c.TrackerID = other.TrackerID
	}
	if other.ParentIssueID != 0 {
		c.ParentIssueID = other.ParentIssueID
	}
	if other.PriorityID != 0 {
		c.PriorityID = other.PriorityID
	}
	if other.SubjectKeyword != "" {
		c.SubjectKeyword = other.SubjectKeyword
	}
	if other.PageLimit != 0 {
		c.PageLimit = other.PageLimit
	}
	if other.InsecureSkipVerify {
		c.InsecureSkipVerify = true
	}
	if other.PDFFontPath != "" {
		c.PDFFontPath = other.PDFFontPath
	}
}

// Validate checks that the configuration is complete enough to talk to Redmine.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.RedmineURL) == "" {
		missing = append(missing, "redmine_url")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		missing = append(missing, "api_key")
	}
	if strings.TrimSpace(c.ProjectID) == "" {
		missing = append(missing, "project_id")
	}
	if c.TrackerID <= 0 {
		missing = append(missing, "tracker_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompleteConfig, strings.Join(missing, ", "))
	}
	if c.PageLimit <= 0 {
		return fmt.Errorf("%w: page_limit must be positive (got %d)", ErrInvalidConfig, c.PageLimit)
	}
	if c.PriorityID <= 0 {
		return fmt.Errorf("%w: priority_id must be positive (got %d)", ErrInvalidConfig, c.PriorityID)
	}
	return nil
}
