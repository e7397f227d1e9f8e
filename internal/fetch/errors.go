package fetch

import (
	"errors"
	"fmt"
)

// PermissionDeniedError reports an unwritable destination, detected before
// any network activity.
type PermissionDeniedError struct {
	Path string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: '%s'", e.Path)
}

// IsPermissionDenied reports whether err represents an unwritable destination.
func IsPermissionDenied(err error) bool {
	var target *PermissionDeniedError
	return errors.As(err, &target)
}

// FetchError reports a failed transfer along with the offending URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("download '%s': %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err represents a failed transfer.
func IsFetchError(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}
