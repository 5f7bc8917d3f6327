package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/careercopilot/ccimport/internal/core/domain"
)

// wildcardChars are the metacharacters filepath.Glob understands. An
// argument containing any of them is treated as a pattern, anything else
// as a literal path.
const wildcardChars = "*?["

// containsWildcard reports whether a file argument is a glob pattern.
func containsWildcard(arg string) bool {
	return strings.ContainsAny(arg, wildcardChars)
}

// ResolveFiles expands file arguments into the ordered list of concrete
// files to upload. Input order is preserved; within one wildcard group
// matches keep filepath.Glob's lexical order. A file reachable from two
// arguments is kept once, at its first position.
//
// The two argument kinds fail differently, and deliberately so: a literal
// path that does not name an existing regular file aborts resolution (and
// with it the whole run), while a wildcard with zero matches simply
// contributes nothing.
func ResolveFiles(args []string) ([]domain.ImportFile, error) {
	var files []domain.ImportFile
	seen := make(map[string]bool)

	keep := func(path string, size int64) {
		if seen[path] {
			return
		}
		seen[path] = true
		files = append(files, domain.ImportFile{
			Path: path,
			Name: filepath.Base(path),
			Size: size,
		})
	}

	for _, arg := range args {
		if !containsWildcard(arg) {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, arg)
			}
			if !info.Mode().IsRegular() {
				return nil, fmt.Errorf("%w: %s is not a regular file", domain.ErrFileNotFound, arg)
			}
			keep(arg, info.Size())
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrBadPattern, arg)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			keep(match, info.Size())
		}
	}

	return files, nil
}
