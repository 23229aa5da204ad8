package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frherrer/caseweaver/internal/config"
	"github.com/frherrer/caseweaver/internal/generator"
	"github.com/frherrer/caseweaver/internal/ingest"
	"github.com/frherrer/caseweaver/internal/parser"
	"github.com/frherrer/caseweaver/internal/report"
	"github.com/frherrer/caseweaver/internal/scanner"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Parse raw test case files and write exports",
	Long:  `Scans input files, extracts structured test case records, and writes the configured output formats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}

		if dryRun {
			cfg.DryRun = true
		}
		setLogLevel(cfg.Logging.Level)

		log.Info("Configuration loaded successfully")
		log.Infof("Scanning directories: %v", cfg.Input.Directories)
		log.Infof("Output directory: %s", cfg.Output.Directory)

		return runGenerate(cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// runGenerate wires all components and runs the generator.
func runGenerate(cfg *config.Config) error {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	s := scanner.NewScanner(recursive)

	registry := ingest.NewRegistry()
	registry.Register(ingest.NewMarkdownFlattener())
	plain := ingest.NewPlaintextFlattener()
	registry.Register(plain)
	registry.SetFallback(plain)

	p := parser.NewWithStrategies(
		&parser.BlockStrategy{MinBlockLength: cfg.Parsing.MinBlockLength},
		&parser.LineStrategy{},
	)

	engine, err := report.NewEngine(cfg.Templates.Directory)
	if err != nil {
		return fmt.Errorf("failed to create template engine: %w", err)
	}

	gen := generator.NewGenerator(s, registry, p, engine, log)
	return gen.Generate(cfg)
}
