package evidence

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/k3DW/debug/internal/messages"
	"github.com/k3DW/debug/internal/version"
)

// Marker is the build-metadata token whose definition carries the upstream
// release version of the library.
const Marker = "LLVM_PACKAGE_VERSION"

// markerPrefix and markerSuffix bracket the captured version inside a CMake
// set() line.
const (
	markerPrefix = `set\(` + Marker + ` `
	markerSuffix = `\)`
)

// LibraryVersion scans every file beside resolvedPath for the release version
// embedded in the library's build metadata. Exactly one distinct version must
// be found; zero and two-or-more are both hard failures.
func LibraryVersion(sys System, resolvedPath string) (string, error) {
	dir := filepath.Dir(resolvedPath)
	lines, err := markerLines(sys, dir)
	if err != nil {
		return "", err
	}
	versions := version.Extract(lines, markerPrefix, markerSuffix)
	switch len(versions) {
	case 0:
		return "", &NoVersionEvidenceError{Marker: Marker, Dir: dir}
	case 1:
		return versions.Values()[0], nil
	default:
		return "", &AmbiguousVersionError{Marker: Marker, Versions: versions.Values()}
	}
}

// markerLines walks dir recursively and returns every text line mentioning
// the marker token. A single pass, no accumulator beyond the local slice.
func markerLines(sys System, dir string) ([]string, error) {
	var lines []string
	walkErr := sys.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := sys.ReadFile(path)
		if err != nil {
			return err
		}
		if !bytes.Contains(data, []byte(Marker)) {
			return nil
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.Contains(line, Marker) {
				lines = append(lines, line)
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf(messages.EvidenceScanFmt, dir, walkErr)
	}
	return lines, nil
}
