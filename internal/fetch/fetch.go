package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/k3DW/debug/internal/messages"
)

// fetchTimeout bounds the only network operation in a run.
const fetchTimeout = 10 * time.Second

var httpClient = &http.Client{Timeout: fetchTimeout}

// accessWritable is a seam for tests.
var accessWritable = func(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// Execute downloads the plan's URL to its destination. Destination
// writability is probed before any network use; transport failures are
// terminal and never retried.
func Execute(ctx context.Context, plan Plan) error {
	dest := plan.Destination()
	if !hasWriteAccess(dest) {
		return &PermissionDeniedError{Path: dest}
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf(messages.FetchCreateDirFmt, filepath.Dir(dest), err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, plan.URL, nil)
	if err != nil {
		return fmt.Errorf(messages.FetchCreateRequestFmt, err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return &FetchError{URL: plan.URL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return &FetchError{URL: plan.URL, Err: fmt.Errorf(messages.FetchUnexpectedStatusFmt, resp.Status)}
	}
	if err := writeFileAtomic(dest, resp.Body); err != nil {
		return &FetchError{URL: plan.URL, Err: err}
	}
	return nil
}

// hasWriteAccess walks upward from path to the first existing ancestor and
// probes writability there. The walk stops at the filesystem root, so a path
// with no existing ancestor reports not writable instead of looping.
func hasWriteAccess(path string) bool {
	for {
		if _, err := os.Stat(path); err == nil {
			return accessWritable(path)
		}
		parent := filepath.Dir(path)
		if parent == path {
			return false
		}
		path = parent
	}
}

// writeFileAtomic streams body into a temp file in the destination directory
// and renames it into place, so a failed transfer never leaves a partial
// artifact at the destination.
func writeFileAtomic(dest string, body io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FetchCreateTempFileFmt, dest, err)
	}
	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf(messages.FetchWriteTempFileFmt, dest, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf(messages.FetchChmodTempFileFmt, dest, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf(messages.FetchCloseTempFileFmt, dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf(messages.FetchRenameTempFileFmt, dest, err)
	}
	return nil
}
