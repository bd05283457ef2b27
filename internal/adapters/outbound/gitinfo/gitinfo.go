package gitinfo

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.ChangeLister using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// ChangedFiles returns the added and modified files of the worktree, staged
// or not, as paths relative to the repository root. Deleted files are skipped
// since there is nothing left on disk to format. The result is sorted so the
// change set is deterministic.
func (g *GitInfoAdapter) ChangedFiles(projectPath string) ([]string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}

	var files []string
	for path, st := range status {
		if isAddedOrModified(st.Staging) || isAddedOrModified(st.Worktree) {
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}

// isAddedOrModified covers the "added union modified" change set. Untracked
// counts as added: a brand-new file is exactly what a review wants checked.
func isAddedOrModified(code git.StatusCode) bool {
	switch code {
	case git.Added, git.Modified, git.Untracked:
		return true
	default:
		return false
	}
}
