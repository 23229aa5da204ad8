package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frherrer/caseweaver/internal/generator"
	"github.com/frherrer/caseweaver/internal/ingest"
	"github.com/frherrer/caseweaver/internal/parser"
	"github.com/frherrer/caseweaver/internal/scanner"
)

var previewSection string

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Parse a single file and print the records as JSON",
	Long: `Parses one raw test case file without writing any output files. The
extracted records are printed to stdout as JSON, which makes it easy to
check how a given LLM response will be normalized.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := ingest.NewRegistry()
		registry.Register(ingest.NewMarkdownFlattener())
		plain := ingest.NewPlaintextFlattener()
		registry.Register(plain)
		registry.SetFallback(plain)

		gen := generator.NewGenerator(
			scanner.NewScanner(true),
			registry,
			parser.New(),
			nil, // no report rendering in preview
			log,
		)

		defaultSection := previewSection
		if defaultSection == "" {
			defaultSection = parser.DefaultSection
		}

		cases, err := gen.ParseFile(args[0], defaultSection)
		if err != nil {
			return err
		}
		if len(cases) == 0 {
			log.Warnf("No test cases could be parsed from %s", args[0])
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cases); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewSection, "section", "", "default section label for records without one")
	rootCmd.AddCommand(previewCmd)
}
