package domain

import "context"

// Formatter runs the external validator over one file and returns its stdout
// as the fully reformatted file content.
type Formatter interface {
	Format(ctx context.Context, validator, filePath string) (string, error)
}

// Differ computes a unified diff between two versions of the same file.
// Both labels carry the file's own path so the patch reads as a homogeneous
// before/after against one file identity.
type Differ interface {
	Unified(filePath, original, formatted string) (string, error)
}

// ConfigLoader loads the project-level check configuration.
type ConfigLoader interface {
	Load(projectPath string) (CheckConfig, error)
}

// ChangeLister reports the added and modified files of a project, the change
// set a review run should inspect.
type ChangeLister interface {
	ChangedFiles(projectPath string) ([]string, error)
}

// ProjectScanner lists every file under a project tree, for runs that check
// the whole project instead of the change set. Paths are relative to the
// project root and slash-separated.
type ProjectScanner interface {
	Scan(projectPath string) ([]string, error)
}
