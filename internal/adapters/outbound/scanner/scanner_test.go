package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylegate/stylegate/internal/adapters/outbound/scanner"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
}

func TestFileScanner_ListsAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Foo.m")
	writeFile(t, dir, "Sources/Bar.mm")
	writeFile(t, dir, "README.md")

	files, err := scanner.New().Scan(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Foo.m", "Sources/Bar.mm", "README.md"}, files)
}

func TestFileScanner_SkipsVendorDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Foo.m")
	writeFile(t, dir, "vendor/dep/dep.m")
	writeFile(t, dir, "Pods/SDK/SDK.m")
	writeFile(t, dir, "node_modules/pkg/index.js")
	writeFile(t, dir, ".git/objects/ab")

	files, err := scanner.New().Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Foo.m"}, files)
}

func TestFileScanner_MissingDirErrors(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
