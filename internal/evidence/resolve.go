// Package evidence locates a libc++ shared object on disk and mines the
// upstream release version out of its adjacent build metadata.
package evidence

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/k3DW/debug/internal/messages"
)

// ResolvePath canonicalizes path into an absolute, symlink-free location.
// The path must exist and be a regular file or a resolvable symlink to one.
func ResolvePath(sys System, path string) (string, error) {
	if _, err := sys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Path: path}
		}
		return "", fmt.Errorf(messages.EvidenceStatFmt, path, err)
	}
	info, err := sys.Lstat(path)
	if err != nil {
		return "", fmt.Errorf(messages.EvidenceStatFmt, path, err)
	}
	if !info.Mode().IsRegular() && info.Mode()&fs.ModeSymlink == 0 {
		return "", &NotARegularFileError{Path: path}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf(messages.EvidenceResolveFmt, path, err)
	}
	resolved, err := sys.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf(messages.EvidenceResolveFmt, path, err)
	}
	return resolved, nil
}
