package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/stylegate/stylegate/internal/domain"
)

// Resolver runs the external validator over selected files and turns every
// non-empty diff between on-disk content and validator output into a violation.
type Resolver struct {
	formatter domain.Formatter
	differ    domain.Differ
}

func NewResolver(formatter domain.Formatter, differ domain.Differ) *Resolver {
	return &Resolver{
		formatter: formatter,
		differ:    differ,
	}
}

// fileOutcome is the result for a single file. A clean file sets neither field.
type fileOutcome struct {
	violation *domain.Violation
	failure   *domain.Failure
}

// Resolve checks every path, relative to projectPath, with the configured
// validator. Files fan out across at most EffectiveJobs workers; outcomes are
// reassembled in input order before the report is built, since ordering is
// part of the report contract. A failure on one file never aborts the rest.
func (r *Resolver) Resolve(ctx context.Context, cfg domain.CheckConfig, projectPath string, paths []string) *domain.Report {
	outcomes := make([]fileOutcome, len(paths))

	var g errgroup.Group
	g.SetLimit(cfg.EffectiveJobs())
	for i, p := range paths {
		g.Go(func() error {
			outcomes[i] = r.resolveFile(ctx, cfg, projectPath, p)
			return nil
		})
	}
	_ = g.Wait() // workers record failures in their outcome instead of returning them

	report := &domain.Report{Validator: cfg.Validator}
	for _, o := range outcomes {
		switch {
		case o.violation != nil:
			report.Violations = append(report.Violations, *o.violation)
		case o.failure != nil:
			report.Failures = append(report.Failures, *o.failure)
		}
	}
	return report
}

func (r *Resolver) resolveFile(ctx context.Context, cfg domain.CheckConfig, projectPath, relPath string) fileOutcome {
	absPath := filepath.Join(projectPath, relPath)

	original, err := os.ReadFile(absPath)
	if err != nil {
		return fileOutcome{failure: &domain.Failure{
			Path:    relPath,
			Message: fmt.Sprintf("reading file: %v", err),
		}}
	}

	fileCtx, cancel := context.WithTimeout(ctx, cfg.EffectiveTimeout())
	defer cancel()

	formatted, err := r.formatter.Format(fileCtx, cfg.Validator, absPath)
	if err != nil {
		return fileOutcome{failure: &domain.Failure{Path: relPath, Message: failureMessage(err, relPath)}}
	}

	// The file's own path labels both sides so the patch reads as a
	// before/after of one file and stays git apply-able.
	patch, err := r.differ.Unified(relPath, string(original), formatted)
	if err != nil {
		return fileOutcome{failure: &domain.Failure{
			Path:    relPath,
			Message: fmt.Sprintf("computing diff: %v", err),
		}}
	}

	if patch == "" {
		return fileOutcome{}
	}
	return fileOutcome{violation: &domain.Violation{Path: relPath, Patch: patch}}
}

// failureMessage rewrites a validator error to carry the file's relative path.
// The absolute path is an exec detail; the report identifies files the same
// way violations do.
func failureMessage(err error, relPath string) string {
	var verr *domain.ValidatorError
	if errors.As(err, &verr) {
		rel := *verr
		rel.Path = relPath
		return rel.Error()
	}
	return err.Error()
}
