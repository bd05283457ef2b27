package report

import (
	"fmt"
	"strings"

	"github.com/stylegate/stylegate/internal/domain"
)

// Header and separator of the aggregated review message.
const (
	Header    = "### Code Style Check"
	separator = "---"
)

// Markdown renders the aggregated review message for a report: the fixed
// header, one bullet per offending file, a remediation line naming the
// validator, and every patch as a fenced diff block in resolver order.
// A clean report renders as the empty string; silence is the success path.
func Markdown(r *domain.Report) string {
	if r.Clean() {
		return ""
	}

	var b strings.Builder
	b.WriteString(Header + "\n\n")
	b.WriteString(separator + "\n\n")

	if len(r.Violations) > 0 {
		b.WriteString("The style validator found formatting issues in the following files:\n\n")
		for _, v := range r.Violations {
			fmt.Fprintf(&b, "* `%s`\n", v.Path)
		}
		fmt.Fprintf(&b, "\nRun `%s` on the offending files to fix the issues.\n", r.Validator)

		for _, v := range r.Violations {
			fmt.Fprintf(&b, "\n#### %s\n\n```diff\n%s```\n", v.Path, withTrailingNewline(v.Patch))
		}
	}

	if len(r.Failures) > 0 {
		fmt.Fprintf(&b, "\n#### Validator failures\n\nThese files could not be validated with `%s`:\n\n", r.Validator)
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "* `%s`: %s\n", f.Path, f.Message)
		}
	}

	return b.String()
}

func withTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
