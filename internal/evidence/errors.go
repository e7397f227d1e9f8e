package evidence

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError reports an input path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file does not exist: %s", e.Path)
}

// IsNotFound reports whether err represents a missing input path.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// NotARegularFileError reports a path that exists but is neither a regular
// file nor a symlink.
type NotARegularFileError struct {
	Path string
}

func (e *NotARegularFileError) Error() string {
	return fmt.Sprintf("path is not a regular file or a link: %s", e.Path)
}

// IsNotARegularFile reports whether err represents an unusable input path.
func IsNotARegularFile(err error) bool {
	var target *NotARegularFileError
	return errors.As(err, &target)
}

// NoVersionEvidenceError reports that no version was found under the
// build-metadata marker in the scanned directory.
type NoVersionEvidenceError struct {
	Marker string
	Dir    string
}

func (e *NoVersionEvidenceError) Error() string {
	return fmt.Sprintf("unable to find %q in %s", e.Marker, e.Dir)
}

// IsNoVersionEvidence reports whether err represents absent version evidence.
func IsNoVersionEvidence(err error) bool {
	var target *NoVersionEvidenceError
	return errors.As(err, &target)
}

// AmbiguousVersionError reports conflicting version evidence. The full
// candidate list is carried; ambiguity is never resolved by picking one.
type AmbiguousVersionError struct {
	Marker   string
	Versions []string
}

func (e *AmbiguousVersionError) Error() string {
	return fmt.Sprintf("found more than one definition of %q: %s", e.Marker, strings.Join(e.Versions, ", "))
}

// IsAmbiguousVersion reports whether err represents conflicting version evidence.
func IsAmbiguousVersion(err error) bool {
	var target *AmbiguousVersionError
	return errors.As(err, &target)
}
