package domain

import (
	"path"
	"strings"
)

// Select returns the subset of changed paths that must be style-checked:
// paths whose extension is in extensions and that match none of the ignore
// patterns. Input order is preserved. Empty inputs yield an empty result.
func Select(changed, extensions, ignorePatterns []string) []string {
	var selected []string
	for _, p := range changed {
		if !hasExtension(p, extensions) {
			continue
		}
		if ignored(p, ignorePatterns) {
			continue
		}
		selected = append(selected, p)
	}
	return selected
}

// hasExtension matches by suffix, case-sensitive.
func hasExtension(filePath string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(filePath, ext) {
			return true
		}
	}
	return false
}

// ignored reports whether filePath matches any ignore pattern. Patterns are
// globs matched against the full path and the base name; a pattern without
// glob metacharacters also excludes by substring, so "Vendor/" skips a whole
// subtree.
func ignored(filePath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, filePath); err == nil && ok {
			return true
		}
		if ok, err := path.Match(pattern, path.Base(filePath)); err == nil && ok {
			return true
		}
		if !strings.ContainsAny(pattern, "*?[") && strings.Contains(filePath, pattern) {
			return true
		}
	}
	return false
}
