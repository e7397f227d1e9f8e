// Package fetch turns a resolved selector into a download plan and carries
// it out.
package fetch

import (
	"path/filepath"
	"strings"

	"github.com/k3DW/debug/internal/selector"
)

// BaseURL prefixes every raw download from the upstream repository.
const BaseURL = "https://raw.githubusercontent.com/llvm/llvm-project/"

// printersPath is the repository-relative path to the printer script.
const printersPath = "/libcxx/utils/gdb/libcxx/printers.py"

// FilePrefix and FileExt bracket the sanitized suffix in the local filename.
const (
	FilePrefix = "libcxx_printers_"
	FileExt    = ".py"
)

// Plan is the immutable description of a single fetch: where to download
// from, what to name the artifact, and which library it serves.
type Plan struct {
	URL         string
	FileName    string
	DownloadDir string
	LibraryPath string
}

// Destination is the full local path the artifact is saved to.
func (p Plan) Destination() string {
	return filepath.Join(p.DownloadDir, p.FileName)
}

// ModuleName is the python module identity of the artifact.
func (p Plan) ModuleName() string {
	return strings.TrimSuffix(p.FileName, FileExt)
}

// BuildPlan derives the remote locator and the collision-safe local filename
// for a selector.
func BuildPlan(sel selector.Selector, downloadDir string, libraryPath string) Plan {
	return Plan{
		URL:         BaseURL + sel.RemoteFragment + printersPath,
		FileName:    FilePrefix + sel.Suffix + FileExt,
		DownloadDir: downloadDir,
		LibraryPath: libraryPath,
	}
}
