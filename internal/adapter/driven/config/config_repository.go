package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
	"github.com/diillson/invoice-dashboard-go/internal/domain/repository"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	var config types.Config
	if err := decodeFile(filePath, &config); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	return &config, nil
}

// LoadDataset carrega os dados servidos pela API de demonstração.
func (r *ConfigRepositoryImpl) LoadDataset(filePath string) (*entity.Dataset, error) {
	if filePath == "" {
		return nil, types.ErrEmptyDatasetSource
	}

	var dataset entity.Dataset
	if err := decodeFile(filePath, &dataset); err != nil {
		return nil, fmt.Errorf("dataset file: %w", err)
	}
	return &dataset, nil
}

// decodeFile escolhe o decoder pela extensão do arquivo.
func decodeFile(filePath string, v interface{}) error {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error accessing file: %w", err)
	}

	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, v); err != nil {
			return fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, v); err != nil {
			return fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, v); err != nil {
			return fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported file format: %q", fileExtension)
	}

	return nil
}
