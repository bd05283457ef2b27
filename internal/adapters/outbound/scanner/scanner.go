package scanner

import (
	"os"
	"path/filepath"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	"Pods":         true,
	".git":         true,
	"dist":         true,
	"bin":          true,
}

// FileScanner implements domain.ProjectScanner by walking the filesystem.
// Extension and ignore-pattern filtering happens later in selection, so the
// scan only prunes directories that never hold first-party sources.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(projectPath string) ([]string, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		files = append(files, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
