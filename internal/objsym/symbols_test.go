package objsym

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadBuiltBinary builds a fixture program and reads its symbols. The
// running test binary is not usable here: plain `go test` links throwaway
// test binaries with -s -w, which strips the symbol table.
func TestReadBuiltBinary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"),
		[]byte("package main\n\nfunc main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"),
		[]byte("module fixture\n\ngo 1.21\n"), 0o644))

	bin := filepath.Join(dir, "fixture")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}
	cmd := exec.Command("go", "build", "-o", bin, ".")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	syms, err := Read(bin)
	require.NoError(t, err)
	assert.NotEmpty(t, syms)
}

func TestReadUnrecognizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk")
	require.NoError(t, os.WriteFile(path, []byte("not an object file"), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
