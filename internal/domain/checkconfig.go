package domain

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied when the corresponding CheckConfig field is absent.
const (
	DefaultValidator      = "clang-format"
	DefaultTimeoutSeconds = 30
)

// DefaultExtensions lists the file extensions checked when none are configured.
var DefaultExtensions = []string{".h", ".m", ".mm"}

// CheckConfig holds the settings for a single check invocation.
// Immutable once constructed; build it with DefaultCheckConfig().Merge(overrides).
type CheckConfig struct {
	Validator      string   `yaml:"validator"            json:"validator"`
	FileExtensions []string `yaml:"file_extensions"      json:"file_extensions"`
	IgnorePatterns []string `yaml:"ignore_file_patterns" json:"ignore_file_patterns,omitempty"`
	TimeoutSeconds int      `yaml:"timeout_seconds"      json:"timeout_seconds,omitempty"`
	Jobs           int      `yaml:"jobs"                 json:"jobs,omitempty"`
}

// DefaultCheckConfig returns the built-in defaults (clang-format over
// Objective-C sources, no ignores, sequential processing).
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		Validator:      DefaultValidator,
		FileExtensions: append([]string(nil), DefaultExtensions...),
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Merge overlays explicit (non-zero) override values on top of c.
func (c CheckConfig) Merge(override CheckConfig) CheckConfig {
	result := c

	if override.Validator != "" {
		result.Validator = override.Validator
	}
	if len(override.FileExtensions) > 0 {
		result.FileExtensions = override.FileExtensions
	}
	if len(override.IgnorePatterns) > 0 {
		result.IgnorePatterns = override.IgnorePatterns
	}
	if override.TimeoutSeconds > 0 {
		result.TimeoutSeconds = override.TimeoutSeconds
	}
	if override.Jobs > 0 {
		result.Jobs = override.Jobs
	}

	return result
}

// Validate checks the config for invalid values and returns a descriptive error.
// A blank validator is rejected up front, before any file is processed.
func (c CheckConfig) Validate() error {
	if strings.TrimSpace(c.Validator) == "" {
		return fmt.Errorf("validator must not be empty")
	}
	for _, ext := range c.FileExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("file extension %q must start with a dot", ext)
		}
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative (got %d)", c.TimeoutSeconds)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative (got %d)", c.Jobs)
	}
	return nil
}

// EffectiveTimeout returns the per-file subprocess timeout.
func (c CheckConfig) EffectiveTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// EffectiveJobs returns the worker count for per-file fan-out, at least 1.
func (c CheckConfig) EffectiveJobs() int {
	if c.Jobs <= 0 {
		return 1
	}
	return c.Jobs
}
