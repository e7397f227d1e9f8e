package autoload

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/k3DW/debug/internal/messages"
)

// DefaultDiffMaxLines caps the preview shown when an existing auto-load
// script is about to be replaced.
const DefaultDiffMaxLines = 40

// DiffPreview is a user-facing diff between an existing auto-load script and
// the content about to replace it.
type DiffPreview struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// PreviewOverwrite diffs the script at path against rendered. ok is false
// when there is nothing to show: no existing script, or identical content.
func PreviewOverwrite(path string, rendered string) (preview DiffPreview, ok bool, err error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DiffPreview{}, false, nil
	}
	if err != nil {
		return DiffPreview{}, false, fmt.Errorf(messages.AutoLoadReadFmt, path, err)
	}
	if string(existing) == rendered {
		return DiffPreview{}, false, nil
	}
	diff, truncated := renderTruncatedUnifiedDiff(path+" (current)", path+" (new)", string(existing), rendered, DefaultDiffMaxLines)
	return DiffPreview{Path: path, UnifiedDiff: diff, Truncated: truncated}, true, nil
}

func renderTruncatedUnifiedDiff(fromName string, toName string, from string, to string, maxLines int) (string, bool) {
	diff := udiff.Unified(fromName, toName, from, to)
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	if len(lines) <= maxLines {
		return diff, false
	}
	truncated := append(lines[:maxLines], fmt.Sprintf("... (truncated to %d lines)", maxLines))
	return strings.Join(truncated, "\n") + "\n", true
}
