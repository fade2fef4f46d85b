package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags and environment variables.
type FileConfig struct {
	Source string `yaml:"source" json:"source"`
	Dir    string `yaml:"dir" json:"dir"`

	Language string `yaml:"language" json:"language"`

	Top struct {
		Document int `yaml:"document" json:"document"`
		Global   int `yaml:"global" json:"global"`
	} `yaml:"top" json:"top"`

	StopWords string `yaml:"stopwords" json:"stopwords"`

	Output struct {
		Text string `yaml:"text" json:"text"`
		PDF  string `yaml:"pdf" json:"pdf"`
		XLSX string `yaml:"xlsx" json:"xlsx"`
	} `yaml:"output" json:"output"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
		Prompt  string `yaml:"prompt" json:"prompt"`
	} `yaml:"llm" json:"llm"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; this lets file config supply defaults while preserving explicit
// flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Source == "" && fc.Source != "" {
		cfg.Source = fc.Source
	}
	if cfg.Dir == "" && fc.Dir != "" {
		cfg.Dir = fc.Dir
	}
	if cfg.Language == "" && fc.Language != "" {
		cfg.Language = fc.Language
	}
	if (cfg.TopN == 0 || cfg.TopN == DefaultTopN) && fc.Top.Document > 0 {
		cfg.TopN = fc.Top.Document
	}
	if (cfg.TopGlobal == 0 || cfg.TopGlobal == DefaultTopGlobal) && fc.Top.Global > 0 {
		cfg.TopGlobal = fc.Top.Global
	}
	if (cfg.StopWordsPath == "" || cfg.StopWordsPath == DefaultStopWordsPath) && fc.StopWords != "" {
		cfg.StopWordsPath = fc.StopWords
	}
	if cfg.OutputText == "" && fc.Output.Text != "" {
		cfg.OutputText = fc.Output.Text
	}
	if cfg.OutputPDF == "" && fc.Output.PDF != "" {
		cfg.OutputPDF = fc.Output.PDF
	}
	if cfg.OutputXLSX == "" && fc.Output.XLSX != "" {
		cfg.OutputXLSX = fc.Output.XLSX
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.Prompt == "" && fc.LLM.Prompt != "" {
		cfg.Prompt = fc.LLM.Prompt
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	src := strings.TrimSpace(cfg.Source)
	dir := strings.TrimSpace(cfg.Dir)
	if src == "" && dir == "" {
		return errors.New("config: a source locator or a directory is required")
	}
	if src != "" && dir != "" {
		return errors.New("config: source and directory modes are mutually exclusive")
	}
	if cfg.TopN < 0 || cfg.TopGlobal < 0 {
		return errors.New("config: negative ranking sizes are not allowed")
	}
	if strings.TrimSpace(cfg.Prompt) != "" && strings.TrimSpace(cfg.LLMAPIKey) == "" {
		return errors.New("config: llm.key is required for prompt analysis (or set OPENAI_API_KEY)")
	}
	return nil
}
