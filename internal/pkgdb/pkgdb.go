// Package pkgdb cross-checks library versions against the host package
// database. Its results are advisory; callers must never block resolution
// on them.
package pkgdb

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/k3DW/debug/internal/messages"
	"github.com/k3DW/debug/internal/version"
)

// listCommand is the host package database query tool.
const listCommand = "dpkg"

// familyFilter is the padded package-family token. The two-space column
// padding in dpkg -l output keeps unrelated packages whose names merely
// contain "libc++" from matching.
const familyFilter = "  libc++"

// epochPrefix and preReleaseSuffix bracket the version triple inside a
// Debian package version string.
const (
	epochPrefix      = "1:"
	preReleaseSuffix = "~"
)

// ToolNotFoundError reports that the package database query tool is missing
// from the host.
type ToolNotFoundError struct {
	Command string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("command %q not found", e.Command)
}

// IsToolNotFound reports whether err represents a missing host command.
func IsToolNotFound(err error) bool {
	var target *ToolNotFoundError
	return errors.As(err, &target)
}

// runCommand is a seam for tests.
var runCommand = func(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &ToolNotFoundError{Command: name}
		}
		return "", fmt.Errorf(messages.PkgdbCommandFailedFmt, name, err)
	}
	return string(out), nil
}

// InstalledVersions returns the distinct libc++ versions known to the host
// package database.
func InstalledVersions() (version.Set, error) {
	out, err := runCommand(listCommand, "-l")
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, familyFilter) {
			lines = append(lines, line)
		}
	}
	return version.Extract(lines, epochPrefix, preReleaseSuffix), nil
}
