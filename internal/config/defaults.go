package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Input: InputConfig{
			Directories: []string{"input"},
			Include:     []string{"*.txt", "*.md"},
			Exclude:     []string{"vendor/**", "node_modules/**"},
			Recursive:   &recursive,
		},
		Parsing: ParsingConfig{
			DefaultSection: "General",
			MinBlockLength: 10,
		},
		Output: OutputConfig{
			Directory:           "out",
			Formats:             []string{"csv", "json"},
			FilePrefix:          "testcases_",
			SourceLabel:         "Text",
			CleanBeforeGenerate: false,
		},
		Templates: TemplateConfig{
			Directory: "",
			Default:   "markdown_report",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
