package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	EnvFile    string
	APIKey     string
	Date       *time.Time
	DryRun     bool
	Insecure   bool
	ReportName string
	ReportType []string
	Dir        string
}
