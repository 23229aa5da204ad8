// Package report renders parsed test cases through text templates,
// producing human-readable summaries (markdown by default). Templates
// can be overridden from a directory; embedded defaults ship with the
// binary.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/frherrer/caseweaver/internal/domain"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Engine renders a Report into a document string.
type Engine interface {
	Render(report domain.Report, templateName string) (string, error)
	ListTemplates() []string
}

// DefaultEngine implements Engine. Templates from the override
// directory shadow embedded ones with the same name.
type DefaultEngine struct {
	templates map[string]*template.Template
}

// NewEngine creates a template engine. templateDir may be empty, in
// which case only the embedded templates are available.
func NewEngine(templateDir string) (*DefaultEngine, error) {
	engine := &DefaultEngine{
		templates: make(map[string]*template.Template),
	}

	if err := engine.loadEmbedded(); err != nil {
		return nil, err
	}
	if templateDir != "" {
		if err := engine.loadDirectory(templateDir); err != nil {
			return nil, err
		}
	}

	return engine, nil
}

func (e *DefaultEngine) loadEmbedded() error {
	entries, err := embeddedTemplates.ReadDir("templates")
	if err != nil {
		return domain.NewError("template", "templates", 0, "failed to read embedded templates", err)
	}
	for _, entry := range entries {
		content, err := embeddedTemplates.ReadFile("templates/" + entry.Name())
		if err != nil {
			return domain.NewError("template", entry.Name(), 0, "failed to read embedded template", err)
		}
		if err := e.add(entry.Name(), string(content)); err != nil {
			return err
		}
	}
	return nil
}

func (e *DefaultEngine) loadDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.NewError("template", dir, 0, "failed to read template directory", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return domain.NewError("template", path, 0, "failed to read template file", err)
		}
		if err := e.add(entry.Name(), string(content)); err != nil {
			return err
		}
	}
	return nil
}

func (e *DefaultEngine) add(filename, content string) error {
	name := strings.TrimSuffix(filename, ".tmpl")
	tmpl, err := template.New(name).Funcs(CustomFuncMap()).Parse(content)
	if err != nil {
		return domain.NewError("template", filename, 0, "failed to parse template", err)
	}
	e.templates[name] = tmpl
	return nil
}

// Render renders the report with the named template.
func (e *DefaultEngine) Render(report domain.Report, templateName string) (string, error) {
	tmpl, ok := e.templates[templateName]
	if !ok {
		return "", domain.NewError("template", "", 0,
			fmt.Sprintf("template %q not found (available: %s)", templateName, strings.Join(e.ListTemplates(), ", ")), nil)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, report); err != nil {
		return "", domain.NewError("template", templateName, 0, "failed to execute template", err)
	}
	return buf.String(), nil
}

// ListTemplates returns the names of all loaded templates.
func (e *DefaultEngine) ListTemplates() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	return names
}
