package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/redmine-timecheck-go/internal/domain/repository"
	"github.com/diillson/redmine-timecheck-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix é o prefixo das variáveis de ambiente (ex.: TIMECHECK_REDMINE_API_KEY).
// Sem o prefixo, o nome da tag também é aceito (ex.: REDMINE_API_KEY).
const EnvPrefix = "TIMECHECK"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// ApplyEnvironment sobrescreve os campos de config com as variáveis de ambiente definidas.
// Variáveis ausentes mantêm o valor atual.
func (r *ConfigRepositoryImpl) ApplyEnvironment(config *types.Config) error {
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}

// LoadEnvFile exporta as variáveis de um arquivo .env para o processo.
// Variáveis já definidas no ambiente têm precedência sobre o arquivo.
func (r *ConfigRepositoryImpl) LoadEnvFile(filePath string) error {
	envMap, err := godotenv.Read(filePath)
	if err != nil {
		return fmt.Errorf("error reading env file: %w", err)
	}
	for key, value := range envMap {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("error setting %s: %w", key, err)
		}
	}
	return nil
}
