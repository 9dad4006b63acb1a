package repository

import (
	"github.com/diillson/redmine-timecheck-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	ApplyEnvironment(config *types.Config) error
	LoadEnvFile(filePath string) error
}
