package config

import (
	"fmt"
	"strings"

	"github.com/frherrer/caseweaver/internal/domain"
)

var validFormats = map[string]bool{"csv": true, "json": true, "markdown": true}

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Input validation
	if len(cfg.Input.Directories) == 0 {
		errs = append(errs, "input.directories must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	// Parsing validation
	if cfg.Parsing.DefaultSection == "" {
		errs = append(errs, "parsing.default_section must not be empty")
	}
	if cfg.Parsing.MinBlockLength < 0 {
		errs = append(errs, "parsing.min_block_length must not be negative")
	}

	// Output validation
	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	if len(cfg.Output.Formats) == 0 {
		errs = append(errs, "output.formats must not be empty")
	}
	for _, f := range cfg.Output.Formats {
		if !validFormats[f] {
			errs = append(errs, fmt.Sprintf("output.formats contains unknown format %q (valid: csv, json, markdown)", f))
		}
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
