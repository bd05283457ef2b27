package domain

import "fmt"

// Violation pairs an offending file with the unified-diff patch that would
// bring it in line with the validator's output. Keeping path and patch in one
// struct makes the "parallel arrays stay in sync" property hold by construction.
type Violation struct {
	Path  string `json:"path"`
	Patch string `json:"patch"`
}

// Failure records a file the validator could not process: binary missing,
// non-zero exit, timeout, or an unreadable original. A failed file is never
// reported clean.
type Failure struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Report is the outcome of resolving one set of changed files.
// Violations and Failures preserve the input order of the changed files.
type Report struct {
	Validator  string      `json:"validator"`
	Violations []Violation `json:"violations"`
	Failures   []Failure   `json:"failures,omitempty"`
}

// Clean reports whether the check found nothing to complain about.
// A clean run produces no message and no failure signal.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0 && len(r.Failures) == 0
}

// OffendingFiles returns the paths of all files with style violations,
// in resolution order.
func (r *Report) OffendingFiles() []string {
	files := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		files = append(files, v.Path)
	}
	return files
}

// ValidatorError describes a failed validator invocation for one file.
type ValidatorError struct {
	Path   string
	Stderr string
	Err    error
}

func (e *ValidatorError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("validator failed for %s: %v: %s", e.Path, e.Err, e.Stderr)
	}
	return fmt.Sprintf("validator failed for %s: %v", e.Path, e.Err)
}

func (e *ValidatorError) Unwrap() error { return e.Err }
