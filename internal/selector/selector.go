// Package selector resolves the upstream reference to fetch, combining
// explicit user overrides with version evidence mined from the library.
package selector

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/k3DW/debug/internal/evidence"
	"github.com/k3DW/debug/internal/messages"
	"github.com/k3DW/debug/internal/pkgdb"
	"github.com/k3DW/debug/internal/version"
)

// Kind identifies which channel produced a Selector.
type Kind int

const (
	KindTag Kind = iota
	KindBranch
	KindCommit
	KindDerived
)

// commitSuffixLen is how much of a commit hash goes into the local filename.
// 11 characters stay practically unique while keeping filenames short.
const commitSuffixLen = 11

// Overrides carries the mutually exclusive user override channels. The CLI
// guarantees at most one field is set before resolution runs.
type Overrides struct {
	Tag    string
	Branch string
	Commit string
}

// Selector is the resolved upstream reference. RemoteFragment builds the
// download URL; Suffix is the sanitized token used in the local filename.
type Selector struct {
	Kind           Kind
	RemoteFragment string
	Suffix         string
}

// SanitizeSuffix replaces every character outside [A-Za-z0-9_] with an
// underscore, yielding a safe path component. Applying it twice gives the
// same result as applying it once.
func SanitizeSuffix(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

// Resolver combines override channels with library version evidence.
// LibraryVersion and InstalledVersions are injectable for tests.
type Resolver struct {
	LibraryVersion    func(path string) (string, error)
	InstalledVersions func() (version.Set, error)
	Warn              io.Writer
}

// NewResolver returns a Resolver wired to the real evidence extractor and
// package cross-checker. Warnings are written to warn.
func NewResolver(sys evidence.System, warn io.Writer) *Resolver {
	return &Resolver{
		LibraryVersion: func(path string) (string, error) {
			return evidence.LibraryVersion(sys, path)
		},
		InstalledVersions: pkgdb.InstalledVersions,
		Warn:              warn,
	}
}

// Resolve picks exactly one selector variant. Precedence is total and
// first-match-wins: tag, then branch, then commit, then derivation from the
// library's build metadata.
func (r *Resolver) Resolve(o Overrides, libraryPath string) (Selector, error) {
	switch {
	case o.Tag != "":
		return Selector{
			Kind:           KindTag,
			RemoteFragment: "refs/tags/" + o.Tag,
			Suffix:         SanitizeSuffix("tag_" + o.Tag),
		}, nil
	case o.Branch != "":
		return Selector{
			Kind:           KindBranch,
			RemoteFragment: "refs/heads/" + o.Branch,
			Suffix:         SanitizeSuffix("branch_" + o.Branch),
		}, nil
	case o.Commit != "":
		short := o.Commit
		if len(short) > commitSuffixLen {
			short = short[:commitSuffixLen]
		}
		return Selector{
			Kind:           KindCommit,
			RemoteFragment: o.Commit,
			Suffix:         SanitizeSuffix("commit_" + short),
		}, nil
	default:
		return r.derive(libraryPath)
	}
}

// derive extracts the library version and cross-checks it against the host
// package database. The cross-check is advisory: a mismatch or a missing
// query tool only warns.
func (r *Resolver) derive(libraryPath string) (Selector, error) {
	v, err := r.LibraryVersion(libraryPath)
	if err != nil {
		return Selector{}, err
	}
	r.crossCheck(libraryPath, v)
	return Selector{
		Kind:           KindDerived,
		RemoteFragment: "refs/tags/" + version.TagPrefix + v,
		Suffix:         SanitizeSuffix("tag_llvmorg_" + v),
	}, nil
}

func (r *Resolver) crossCheck(libraryPath string, v string) {
	warn := r.Warn
	if warn == nil {
		warn = io.Discard
	}
	warnColor := color.New(color.FgYellow)
	installed, err := r.InstalledVersions()
	if err != nil {
		_, _ = warnColor.Fprintf(warn, messages.WarnCrossCheckSkippedFmt, err)
		return
	}
	if !installed.Contains(v) {
		_, _ = warnColor.Fprintf(warn, messages.WarnVersionMismatchFmt, libraryPath, v, strings.Join(installed.Values(), ", "))
	}
}
