package diff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegate/stylegate/internal/adapters/outbound/diff"
)

func TestUnified_IdenticalContentIsEmpty(t *testing.T) {
	out, err := diff.New().Unified("Foo.m", "same\n", "same\n")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUnified_LabelsBothSidesWithTheFilePath(t *testing.T) {
	out, err := diff.New().Unified("Sources/Foo.m", "a\nb\nc\n", "a\nB\nc\n")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "--- Sources/Foo.m"), "got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "+++ Sources/Foo.m"), "got %q", lines[1])
}

func TestUnified_ProducesValidHunks(t *testing.T) {
	original := "one\ntwo\nthree\nfour\n"
	formatted := "one\n2\nthree\nfour\n"

	out, err := diff.New().Unified("Foo.m", original, formatted)
	require.NoError(t, err)

	assert.Contains(t, out, "@@")
	assert.Contains(t, out, "-two\n")
	assert.Contains(t, out, "+2\n")
	assert.Contains(t, out, " one\n", "context lines carry a leading space")
}

// Hunk lengths must count real file lines only; a phantom context line after
// the final newline makes the patch unappliable.
func TestUnified_HunkLengthsMatchTheFile(t *testing.T) {
	original := "line one\n  line two\nline three\n"
	formatted := "line one\nline two\nline three\n"

	out, err := diff.New().Unified("Foo.m", original, formatted)
	require.NoError(t, err)

	assert.Contains(t, out, "@@ -1,3 +1,3 @@")
	assert.NotContains(t, out, "\n \n", "no empty context line past the end of the file")
	assert.True(t, strings.HasSuffix(out, " line three\n"), "got %q", out)
}

func TestUnified_MissingFinalNewline(t *testing.T) {
	out, err := diff.New().Unified("Foo.m", "a\nb", "a\nB")
	require.NoError(t, err)

	assert.Contains(t, out, "-b")
	assert.Contains(t, out, "+B")
}

func TestUnified_WhitespaceOnlyChangeIsDetected(t *testing.T) {
	out, err := diff.New().Unified("Foo.m", "    indented\n", "  indented\n")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
