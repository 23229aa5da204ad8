package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/caseweaver/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Input     InputConfig    `yaml:"input"`
	Parsing   ParsingConfig  `yaml:"parsing"`
	Output    OutputConfig   `yaml:"output"`
	Templates TemplateConfig `yaml:"templates"`
	Logging   LoggingConfig  `yaml:"logging"`
	DryRun    bool           `yaml:"dry_run"`
}

type InputConfig struct {
	Directories []string `yaml:"directories"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Recursive   *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

type ParsingConfig struct {
	DefaultSection string `yaml:"default_section"`
	MinBlockLength int    `yaml:"min_block_length"`
}

type OutputConfig struct {
	Directory           string   `yaml:"directory"`
	Formats             []string `yaml:"formats"` // csv, json, markdown
	FilePrefix          string   `yaml:"file_prefix"`
	SourceLabel         string   `yaml:"source_label"`
	CleanBeforeGenerate bool     `yaml:"clean_before_generate"`
}

type TemplateConfig struct {
	Directory string `yaml:"directory"` // empty means embedded templates only
	Default   string `yaml:"default"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, 0, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, 0, "failed to parse config file", err)
	}

	return cfg, nil
}
