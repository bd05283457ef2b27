package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	configloader "github.com/stylegate/stylegate/internal/adapters/outbound/config"
	"github.com/stylegate/stylegate/internal/adapters/outbound/diff"
	"github.com/stylegate/stylegate/internal/adapters/outbound/formatter"
	"github.com/stylegate/stylegate/internal/adapters/outbound/gitinfo"
	"github.com/stylegate/stylegate/internal/adapters/outbound/report"
	"github.com/stylegate/stylegate/internal/adapters/outbound/scanner"
	"github.com/stylegate/stylegate/internal/adapters/outbound/tui"
	"github.com/stylegate/stylegate/internal/application"
	"github.com/stylegate/stylegate/internal/domain"
)

func newCheckCmd() *cobra.Command {
	var (
		path       string
		validator  string
		extensions []string
		ignores    []string
		timeout    int
		jobs       int
		jsonOutput bool
		markdown   bool
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check changed files against the style validator",
		Long: "Run the configured style validator over the added and modified files of the " +
			"project (or over the files given as arguments) and report every file whose " +
			"on-disk content differs from the validator's output. A clean run prints " +
			"nothing and exits zero.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewCheckService(
				configloader.New(),
				gitinfo.New(),
				scanner.New(),
				formatter.New(),
				diff.New(),
			)

			overrides := domain.CheckConfig{
				Validator:      validator,
				FileExtensions: extensions,
				IgnorePatterns: ignores,
				TimeoutSeconds: timeout,
				Jobs:           jobs,
			}

			var (
				rep *domain.Report
				err error
			)
			if all {
				rep, err = svc.CheckAll(cmd.Context(), path, overrides)
			} else {
				rep, err = svc.Check(cmd.Context(), path, overrides, args)
			}
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			switch {
			case jsonOutput:
				if err := renderReportJSON(cmd, rep); err != nil {
					return err
				}
			case rep.Clean():
				// Silence on clean input: no message, no failure.
			case markdown:
				fmt.Fprint(cmd.OutOrStdout(), report.Markdown(rep))
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(rep))
			}

			if !rep.Clean() {
				return fmt.Errorf("%d file(s) violate code style, %d file(s) could not be validated",
					len(rep.Violations), len(rep.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path to check")
	cmd.Flags().StringVar(&validator, "validator", "", "Style validator binary (default from config, clang-format)")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "File extensions to check (default from config, .h,.m,.mm)")
	cmd.Flags().StringSliceVar(&ignores, "ignore", nil, "Ignore patterns; matching paths are skipped")
	cmd.Flags().IntVar(&timeout, "timeout", 0, "Per-file validator timeout in seconds (default 30)")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Validate up to N files in parallel (default 1)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Output the report as Markdown")
	cmd.Flags().BoolVar(&all, "all", false, "Check every matching file in the project, not just changed files")

	return cmd
}

func renderReportJSON(cmd *cobra.Command, rep *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
