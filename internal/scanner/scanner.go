package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/frherrer/caseweaver/internal/domain"
)

// Scanner discovers raw test case files under the input directories.
type Scanner interface {
	Scan(rootDir string, includes []string, excludes []string) ([]string, error)
}

// FileScanner implements Scanner using filepath.WalkDir.
type FileScanner struct {
	Recursive bool
}

// NewScanner creates a new FileScanner.
func NewScanner(recursive bool) *FileScanner {
	return &FileScanner{Recursive: recursive}
}

// Scan walks rootDir and returns sorted file paths matching any include
// pattern while skipping paths that match any exclude pattern.
func (s *FileScanner) Scan(rootDir string, includes []string, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			relPath = path
		}

		if d.IsDir() {
			if !s.Recursive && relPath != "." {
				return filepath.SkipDir
			}
			for _, exc := range excludes {
				if matchGlob(relPath, exc) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		for _, exc := range excludes {
			if matchGlob(relPath, exc) {
				return nil
			}
		}

		for _, inc := range includes {
			if matchGlob(relPath, inc) {
				files = append(files, path)
				return nil
			}
		}

		return nil
	})

	if err != nil {
		return nil, domain.NewError("scan", rootDir, 0, "failed to scan directory", err)
	}

	sort.Strings(files)
	return files, nil
}

// matchGlob matches a path against a glob pattern, supporting ** for
// recursive matching.
func matchGlob(path, pattern string) bool {
	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], string(filepath.Separator))
		suffix := strings.TrimPrefix(parts[1], string(filepath.Separator))

		if prefix != "" {
			if !strings.HasPrefix(path, prefix) {
				return false
			}
			path = strings.TrimPrefix(path, prefix)
			path = strings.TrimPrefix(path, string(filepath.Separator))
		}

		if suffix == "" {
			return true
		}

		pathParts := strings.Split(path, string(filepath.Separator))
		for i := range pathParts {
			subPath := strings.Join(pathParts[i:], string(filepath.Separator))
			if matched, _ := filepath.Match(suffix, subPath); matched {
				return true
			}
		}
		return false
	}

	if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
		return true
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}
