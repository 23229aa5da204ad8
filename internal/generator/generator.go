package generator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/frherrer/caseweaver/internal/config"
	"github.com/frherrer/caseweaver/internal/domain"
	"github.com/frherrer/caseweaver/internal/export"
	"github.com/frherrer/caseweaver/internal/ingest"
	"github.com/frherrer/caseweaver/internal/report"
	"github.com/frherrer/caseweaver/internal/scanner"
	"github.com/frherrer/caseweaver/internal/splitter"
)

// Generator is the top-level orchestrator.
type Generator interface {
	Generate(cfg *config.Config) error
}

// TestCaseParser extracts structured test cases from one chunk of text.
type TestCaseParser interface {
	Parse(text, defaultSection string) []domain.TestCase
}

// DefaultGenerator implements Generator by wiring all components together.
type DefaultGenerator struct {
	scanner  scanner.Scanner
	registry ingest.Registry
	parser   TestCaseParser
	engine   report.Engine
	log      *logrus.Logger
}

// NewGenerator creates a new DefaultGenerator with all dependencies.
func NewGenerator(
	s scanner.Scanner,
	r ingest.Registry,
	p TestCaseParser,
	e report.Engine,
	log *logrus.Logger,
) *DefaultGenerator {
	return &DefaultGenerator{
		scanner:  s,
		registry: r,
		parser:   p,
		engine:   e,
		log:      log,
	}
}

// Generate runs the full pipeline: scan → flatten → split → parse → export.
func (g *DefaultGenerator) Generate(cfg *config.Config) error {
	if cfg.Output.CleanBeforeGenerate && !cfg.DryRun {
		g.log.Debugf("Cleaning output directory: %s", cfg.Output.Directory)
		if err := cleanOutputDir(cfg.Output.Directory, cfg.Output.FilePrefix); err != nil {
			return domain.NewError("write", cfg.Output.Directory, 0, "failed to clean output directory", err)
		}
	}

	// Scan for raw test case files
	var allFiles []string
	for _, dir := range cfg.Input.Directories {
		g.log.Debugf("Scanning directory: %s", dir)
		files, err := g.scanner.Scan(dir, cfg.Input.Include, cfg.Input.Exclude)
		if err != nil {
			g.log.Warnf("Failed to scan directory %s: %v", dir, err)
			continue
		}
		allFiles = append(allFiles, files...)
	}

	if len(allFiles) == 0 {
		g.log.Warn("No input files found")
		return nil
	}

	g.log.Infof("Found %d input file(s)", len(allFiles))

	// Parse each file into test case records
	var allCases []domain.TestCase
	for _, filePath := range allFiles {
		cases, err := g.ParseFile(filePath, cfg.Parsing.DefaultSection)
		if err != nil {
			return err
		}
		if len(cases) == 0 {
			g.log.Warnf("No test cases could be parsed from %s", filePath)
			continue
		}
		g.log.Infof("Parsed %d test case(s) from %s", len(cases), filePath)
		allCases = append(allCases, cases...)
	}

	if len(allCases) == 0 {
		g.log.Warn("No test cases could be parsed")
	}

	rep := export.BuildReport(allCases, cfg.Output.SourceLabel, allFiles)
	return g.writeOutputs(cfg, rep)
}

// ParseFile reads, flattens and parses a single input file. Section
// parsing is isolated so one malformed section cannot abort its
// siblings.
func (g *DefaultGenerator) ParseFile(filePath, defaultSection string) ([]domain.TestCase, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, domain.NewError("ingest", filePath, 0, "failed to read file", err)
	}

	f, err := g.registry.FlattenerFor(filepath.Ext(filePath))
	if err != nil {
		g.log.Warnf("No flattener for %s, skipping %s", filepath.Ext(filePath), filePath)
		return nil, nil
	}

	text, err := f.Flatten(content)
	if err != nil {
		return nil, domain.NewError("ingest", filePath, 0, "failed to flatten file", err)
	}

	sections := splitter.Split(text)
	if sections.Empty() {
		g.log.Debugf("No TEST TYPE sections in %s, parsing as single blob", filePath)
		return g.parseChunk(filePath, "", text, defaultSection), nil
	}

	g.log.Debugf("Found %d TEST TYPE section(s) in %s", len(sections.Order), filePath)
	var cases []domain.TestCase
	for _, name := range sections.Order {
		cases = append(cases, g.parseChunk(filePath, name, sections.Content[name], name)...)
	}
	return cases, nil
}

// parseChunk parses one section (or a whole blob), converting a panic
// from unexpected input into a warning plus zero records.
func (g *DefaultGenerator) parseChunk(file, section, text, defaultSection string) (cases []domain.TestCase) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Warnf("Parse failure in %s section %q: %v", file, section, r)
			cases = nil
		}
	}()
	return g.parser.Parse(text, defaultSection)
}

// writeOutputs renders and writes every configured output format.
func (g *DefaultGenerator) writeOutputs(cfg *config.Config, rep domain.Report) error {
	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
			return domain.NewError("write", cfg.Output.Directory, 0, "failed to create output directory", err)
		}
	}

	for _, format := range cfg.Output.Formats {
		outputPath := filepath.Join(cfg.Output.Directory, cfg.Output.FilePrefix+outputName(format))

		if cfg.DryRun {
			g.log.Infof("[DRY-RUN] Would write: %s", outputPath)
			continue
		}

		g.log.Infof("Writing: %s", outputPath)
		switch format {
		case "csv":
			if err := export.WriteCSVFile(outputPath, rep.TestData); err != nil {
				return err
			}
		case "json":
			if err := export.WriteJSONFile(outputPath, rep); err != nil {
				return err
			}
		case "markdown":
			rendered, err := g.engine.Render(rep, cfg.Templates.Default)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputPath, []byte(rendered), 0644); err != nil {
				return domain.NewError("write", outputPath, 0, "failed to write report file", err)
			}
		}
	}

	g.log.Info("Generation complete")
	return nil
}

func outputName(format string) string {
	switch format {
	case "csv":
		return "cases.csv"
	case "json":
		return "report.json"
	case "markdown":
		return "report.md"
	default:
		return "report." + format
	}
}

// cleanOutputDir removes previously generated files, identified by the
// configured file prefix.
func cleanOutputDir(dir, prefix string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() && prefix != "" && strings.HasPrefix(entry.Name(), prefix) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}
