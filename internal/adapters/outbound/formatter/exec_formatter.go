package formatter

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/stylegate/stylegate/internal/domain"
)

// ExecFormatter implements domain.Formatter by running the validator as a
// subprocess with the file path as its sole argument. The argument vector
// goes straight to the OS, never through a shell, so paths containing shell
// metacharacters cannot inject commands.
type ExecFormatter struct{}

func New() *ExecFormatter { return &ExecFormatter{} }

// Format captures the validator's entire stdout as the reformatted file
// content. A missing binary, a non-zero exit, or a context timeout all come
// back as a *domain.ValidatorError; partial output from a failed run is
// never treated as the formatted version.
func (f *ExecFormatter) Format(ctx context.Context, validator, filePath string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, validator, filePath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cause := err
		if ctxErr := ctx.Err(); ctxErr != nil {
			cause = ctxErr
		}
		return "", &domain.ValidatorError{
			Path:   filePath,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    cause,
		}
	}

	return stdout.String(), nil
}
