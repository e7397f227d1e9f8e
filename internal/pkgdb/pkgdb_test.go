package pkgdb

import (
	"testing"
)

func withRunCommand(t *testing.T, fn func(name string, args ...string) (string, error)) {
	t.Helper()
	orig := runCommand
	runCommand = fn
	t.Cleanup(func() { runCommand = orig })
}

const sampleListing = `Desired=Unknown/Install/Remove/Purge/Hold
ii  libc++1-18:amd64     1:18.1.3~++20240408073159-1~exp1 amd64  LLVM C++ Standard library
ii  libc++abi1-18:amd64  1:18.1.3~++20240408073159-1~exp1 amd64  LLVM low level support
ii  libc++1-19:amd64     1:19.0.0~++20240901-1 amd64  LLVM C++ Standard library
ii  mylibc++-extras      1:9.9.9~fake-1 amd64  unrelated package with a substring name
ii  gcc-12               12.3.0-1 amd64  GNU C compiler
`

func TestInstalledVersions(t *testing.T) {
	withRunCommand(t, func(name string, args ...string) (string, error) {
		if name != "dpkg" || len(args) != 1 || args[0] != "-l" {
			t.Fatalf("unexpected command: %s %v", name, args)
		}
		return sampleListing, nil
	})

	got, err := InstalledVersions()
	if err != nil {
		t.Fatalf("InstalledVersions error: %v", err)
	}
	values := got.Values()
	if len(values) != 2 || values[0] != "18.1.3" || values[1] != "19.0.0" {
		t.Fatalf("expected [18.1.3 19.0.0], got %v", values)
	}
}

func TestInstalledVersionsSubstringNameExcluded(t *testing.T) {
	withRunCommand(t, func(string, ...string) (string, error) {
		return "ii mylibc++-extras 1:9.9.9~fake-1 amd64 unrelated\n", nil
	})

	got, err := InstalledVersions()
	if err != nil {
		t.Fatalf("InstalledVersions error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected padded-name filter to exclude substring matches, got %v", got.Values())
	}
}

func TestInstalledVersionsToolMissing(t *testing.T) {
	withRunCommand(t, func(name string, _ ...string) (string, error) {
		return "", &ToolNotFoundError{Command: name}
	})

	_, err := InstalledVersions()
	if !IsToolNotFound(err) {
		t.Fatalf("expected ToolNotFoundError, got %v", err)
	}
}

func TestRunCommandMapsMissingBinary(t *testing.T) {
	_, err := runCommand("definitely-not-a-real-command-460bd1")
	if !IsToolNotFound(err) {
		t.Fatalf("expected ToolNotFoundError for a missing binary, got %v", err)
	}
}
