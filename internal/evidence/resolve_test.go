package evidence

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePathMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "libc++.so.1")
	_, err := ResolvePath(RealSystem{}, missing)
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestResolvePathDirectory(t *testing.T) {
	_, err := ResolvePath(RealSystem{}, t.TempDir())
	if !IsNotARegularFile(err) {
		t.Fatalf("expected NotARegularFileError, got %v", err)
	}
}

func TestResolvePathRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "libc++.so.1")
	if err := os.WriteFile(path, []byte("so"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ResolvePath(RealSystem{}, path)
	if err != nil {
		t.Fatalf("ResolvePath error: %v", err)
	}
	want, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %s", got)
	}
}

func TestResolvePathSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "libc++.so.1.0")
	if err := os.WriteFile(target, []byte("so"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	link := filepath.Join(dir, "libc++.so.1")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	got, err := ResolvePath(RealSystem{}, link)
	if err != nil {
		t.Fatalf("ResolvePath error: %v", err)
	}
	want, err := filepath.EvalSymlinks(target)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if got != want {
		t.Fatalf("expected symlink to resolve to %s, got %s", want, got)
	}
}
