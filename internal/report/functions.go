package report

import (
	"strings"
	"text/template"

	"github.com/frherrer/caseweaver/internal/export"
)

// CustomFuncMap returns the custom template functions available in
// report templates.
func CustomFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"toLower":   strings.ToLower,
		"toUpper":   strings.ToUpper,
		"replace":   strings.ReplaceAll,
		"trimSpace": strings.TrimSpace,
		"contains":  strings.Contains,
		"join":      strings.Join,
		"numberSteps": func(steps []string) string {
			return export.NumberSteps(steps)
		},
		"indent": func(spaces int, s string) string {
			pad := strings.Repeat(" ", spaces)
			lines := strings.Split(s, "\n")
			for i, line := range lines {
				if line != "" {
					lines[i] = pad + line
				}
			}
			return strings.Join(lines, "\n")
		},
	}
}
