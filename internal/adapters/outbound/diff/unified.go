package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const contextLines = 3

// UnifiedDiffer implements domain.Differ with go-difflib. Diffs are computed
// entirely in memory; the formatted content never touches the filesystem.
type UnifiedDiffer struct{}

func New() *UnifiedDiffer { return &UnifiedDiffer{} }

// Unified returns a unified diff between original and formatted, labeled with
// filePath on both sides, or the empty string when the two are identical.
func (d *UnifiedDiffer) Unified(filePath, original, formatted string) (string, error) {
	if original == formatted {
		return "", nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(original),
		B:        splitLines(formatted),
		FromFile: filePath,
		ToFile:   filePath,
		Context:  contextLines,
	})
	if err != nil {
		return "", fmt.Errorf("diffing %s: %w", filePath, err)
	}
	return text, nil
}

// splitLines splits s into lines that keep their trailing newline. Unlike
// difflib.SplitLines it does not invent an empty line after the final newline,
// which would corrupt hunk lengths and break patch application. A last line
// without a newline is kept as-is.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
