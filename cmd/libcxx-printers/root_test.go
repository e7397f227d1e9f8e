package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k3DW/debug/internal/autoload"
	"github.com/k3DW/debug/internal/config"
	"github.com/k3DW/debug/internal/fetch"
)

func withTestConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	orig := loadConfig
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	t.Cleanup(func() { loadConfig = orig })
}

func withFetchExecute(t *testing.T, fn func(context.Context, fetch.Plan) error) {
	t.Helper()
	orig := fetchExecute
	fetchExecute = fn
	t.Cleanup(func() { fetchExecute = orig })
}

func withIsTerminal(t *testing.T, value bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return value }
	t.Cleanup(func() { isTerminal = orig })
}

// newTestLibrary lays out a fake libc++ install directory carrying one
// version marker and returns the shared object path.
func newTestLibrary(t *testing.T, version string) string {
	t.Helper()
	dir := t.TempDir()
	so := filepath.Join(dir, "libc++.so.1")
	require.NoError(t, os.WriteFile(so, []byte("\x7fELF"), 0o644))
	marker := "set(LLVM_PACKAGE_VERSION " + version + ")\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LLVMConfig.cmake"), []byte(marker), 0o644))
	return so
}

func runRootCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootDryRunWithTag(t *testing.T) {
	withTestConfig(t, &config.Config{})
	so := newTestLibrary(t, "18.1.3")

	out, err := runRootCmd(t,
		"--dry-run",
		"--tag", "llvmorg-18.1.0",
		"--download-to", "/tmp/x",
		"--libcxx-so", so,
		"--auto-load-dir", t.TempDir(),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "https://raw.githubusercontent.com/llvm/llvm-project/refs/tags/llvmorg-18.1.0/libcxx/utils/gdb/libcxx/printers.py")
	assert.Contains(t, out, filepath.Join("/tmp/x", "libcxx_printers_tag_llvmorg_18_1_0.py"))
}

func TestRootOverridesAreMutuallyExclusive(t *testing.T) {
	withTestConfig(t, &config.Config{})

	_, err := runRootCmd(t, "--tag", "llvmorg-18.1.0", "--branch", "main")
	require.Error(t, err)
}

func TestRootInstallFlow(t *testing.T) {
	withTestConfig(t, &config.Config{})
	withIsTerminal(t, false)
	so := newTestLibrary(t, "18.1.3")
	downloadDir := t.TempDir()
	autoLoadDir := t.TempDir()

	var executed fetch.Plan
	withFetchExecute(t, func(_ context.Context, plan fetch.Plan) error {
		executed = plan
		return nil
	})

	out, err := runRootCmd(t,
		"--tag", "llvmorg-18.1.0",
		"--download-to", downloadDir,
		"--libcxx-so", so,
		"--auto-load-dir", autoLoadDir,
	)
	require.NoError(t, err)

	assert.Equal(t, "libcxx_printers_tag_llvmorg_18_1_0.py", executed.FileName)
	assert.Contains(t, out, "Successfully downloaded: '"+executed.URL+"'")
	assert.Contains(t, out, "...and saved file to: '"+executed.Destination()+"'")

	resolvedSo, err := filepath.EvalSymlinks(so)
	require.NoError(t, err)
	scriptPath := autoload.FilePath(autoLoadDir, resolvedSo)
	assert.Contains(t, out, "Wrote GDB auto-load script to: '"+scriptPath+"'")

	data, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Equal(t, autoload.Contents(downloadDir, "libcxx_printers_tag_llvmorg_18_1_0"), string(data))
}

func TestRootMissingLibraryIsFatal(t *testing.T) {
	withTestConfig(t, &config.Config{})

	_, err := runRootCmd(t,
		"--tag", "llvmorg-18.1.0",
		"--libcxx-so", filepath.Join(t.TempDir(), "missing.so"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRootConfigProvidesDefaults(t *testing.T) {
	so := newTestLibrary(t, "18.1.3")
	downloadDir := t.TempDir()
	withTestConfig(t, &config.Config{
		DownloadTo:  downloadDir,
		LibcxxSo:    so,
		AutoLoadDir: t.TempDir(),
	})

	out, err := runRootCmd(t, "--dry-run", "--tag", "llvmorg-18.1.0")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(downloadDir, "libcxx_printers_tag_llvmorg_18_1_0.py"))
}

func TestRootFlagBeatsConfig(t *testing.T) {
	so := newTestLibrary(t, "18.1.3")
	withTestConfig(t, &config.Config{DownloadTo: "/from/config"})

	out, err := runRootCmd(t,
		"--dry-run",
		"--tag", "llvmorg-18.1.0",
		"--download-to", "/from/flag",
		"--libcxx-so", so,
		"--auto-load-dir", t.TempDir(),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "/from/flag/")
	assert.NotContains(t, out, "/from/config/")
}
