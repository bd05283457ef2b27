package application

import (
	"context"
	"fmt"

	"github.com/stylegate/stylegate/internal/domain"
)

// CheckService orchestrates the check pipeline:
// load config -> merge overrides -> list changed files -> select -> resolve.
type CheckService struct {
	configs  domain.ConfigLoader
	changes  domain.ChangeLister
	scanner  domain.ProjectScanner
	resolver *Resolver
}

func NewCheckService(
	configs domain.ConfigLoader,
	changes domain.ChangeLister,
	scanner domain.ProjectScanner,
	formatter domain.Formatter,
	differ domain.Differ,
) *CheckService {
	return &CheckService{
		configs:  configs,
		changes:  changes,
		scanner:  scanner,
		resolver: NewResolver(formatter, differ),
	}
}

// Check runs the style check for projectPath. changedFiles, when non-empty,
// replaces the git-derived change set; paths are relative to projectPath.
// Configuration errors surface before any file is touched.
func (s *CheckService) Check(
	ctx context.Context,
	projectPath string,
	overrides domain.CheckConfig,
	changedFiles []string,
) (*domain.Report, error) {
	cfg, err := s.loadConfig(projectPath, overrides)
	if err != nil {
		return nil, err
	}

	if len(changedFiles) == 0 {
		changedFiles, err = s.changes.ChangedFiles(projectPath)
		if err != nil {
			return nil, fmt.Errorf("listing changed files: %w", err)
		}
	}

	return s.run(ctx, cfg, projectPath, changedFiles), nil
}

// CheckAll runs the style check over every matching file in the project tree
// instead of the git change set.
func (s *CheckService) CheckAll(
	ctx context.Context,
	projectPath string,
	overrides domain.CheckConfig,
) (*domain.Report, error) {
	cfg, err := s.loadConfig(projectPath, overrides)
	if err != nil {
		return nil, err
	}

	files, err := s.scanner.Scan(projectPath)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	return s.run(ctx, cfg, projectPath, files), nil
}

func (s *CheckService) loadConfig(projectPath string, overrides domain.CheckConfig) (domain.CheckConfig, error) {
	cfg, err := s.configs.Load(projectPath)
	if err != nil {
		return domain.CheckConfig{}, fmt.Errorf("loading configuration: %w", err)
	}

	cfg = cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return domain.CheckConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (s *CheckService) run(ctx context.Context, cfg domain.CheckConfig, projectPath string, files []string) *domain.Report {
	selected := domain.Select(files, cfg.FileExtensions, cfg.IgnorePatterns)
	return s.resolver.Resolve(ctx, cfg, projectPath, selected)
}
