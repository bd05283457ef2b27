package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stylegate/stylegate/internal/adapters/outbound/report"
	"github.com/stylegate/stylegate/internal/domain"
)

func TestMarkdown_CleanReportRendersNothing(t *testing.T) {
	out := report.Markdown(&domain.Report{Validator: "clang-format"})
	assert.Empty(t, out, "silence is the success path")
}

func TestMarkdown_ViolationMessage(t *testing.T) {
	r := &domain.Report{
		Validator: "clang-format",
		Violations: []domain.Violation{
			{Path: "Foo.m", Patch: "--- Foo.m\n+++ Foo.m\n@@ -1,1 +1,1 @@\n-a\n+b\n"},
		},
	}

	out := report.Markdown(r)

	assert.Contains(t, out, "### Code Style Check")
	assert.Contains(t, out, "* `Foo.m`")
	assert.Contains(t, out, "Run `clang-format`")
	assert.Contains(t, out, "#### Foo.m")
	assert.Contains(t, out, "```diff\n--- Foo.m")
	assert.Equal(t, strings.Count(out, "```"), 2, "one fenced block per violation")
}

func TestMarkdown_RemediationNamesTheValidator(t *testing.T) {
	r := &domain.Report{
		Validator:  "yapf",
		Violations: []domain.Violation{{Path: "script.py", Patch: "-x=1\n+x = 1\n"}},
	}

	out := report.Markdown(r)
	assert.Contains(t, out, "Run `yapf`")
}

func TestMarkdown_PatchBlocksFollowResolverOrder(t *testing.T) {
	r := &domain.Report{
		Validator: "clang-format",
		Violations: []domain.Violation{
			{Path: "B.m", Patch: "-b\n+B\n"},
			{Path: "A.m", Patch: "-a\n+A\n"},
		},
	}

	out := report.Markdown(r)
	assert.Less(t, strings.Index(out, "#### B.m"), strings.Index(out, "#### A.m"))
}

func TestMarkdown_FailuresSection(t *testing.T) {
	r := &domain.Report{
		Validator: "clang-format",
		Failures:  []domain.Failure{{Path: "Broken.m", Message: "exit status 1"}},
	}

	out := report.Markdown(r)

	assert.Contains(t, out, "### Code Style Check")
	assert.Contains(t, out, "#### Validator failures")
	assert.Contains(t, out, "* `Broken.m`: exit status 1")
}
