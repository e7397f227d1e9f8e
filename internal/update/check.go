// Package update checks the upstream llvm-project repository for its latest
// release, so users can tell when their installed libc++ lags behind.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/k3DW/debug/internal/messages"
	"github.com/k3DW/debug/internal/version"
)

// Repo identifies the upstream GitHub repository.
const Repo = "llvm/llvm-project"

var latestReleaseURL = "https://api.github.com/repos/" + Repo + "/releases/latest"
var httpClient = &http.Client{Timeout: 10 * time.Second}

// RateLimitError indicates GitHub's API rate limit was hit during the check.
//
// Callers should treat this as a best-effort failure and keep output minimal.
type RateLimitError struct {
	StatusCode int
	Status     string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github api rate limit exceeded (%s)", e.Status)
}

// IsRateLimitError reports whether err represents a GitHub API rate-limit
// condition.
func IsRateLimitError(err error) bool {
	var target *RateLimitError
	return errors.As(err, &target)
}

// CheckResult captures how the local library version compares to the latest
// upstream release.
type CheckResult struct {
	Library  string
	Latest   string
	Outdated bool
}

// Check fetches the latest llvm-project release tag and compares it to the
// locally derived library version. The result is advisory and never feeds
// back into version resolution.
func Check(ctx context.Context, libraryVersion string) (CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	latest, err := fetchLatestReleaseVersion(ctx)
	if err != nil {
		return CheckResult{}, err
	}
	cmp, err := version.Compare(libraryVersion, latest)
	if err != nil {
		return CheckResult{}, err
	}
	return CheckResult{
		Library:  libraryVersion,
		Latest:   latest,
		Outdated: cmp < 0,
	}, nil
}

type latestReleaseResponse struct {
	TagName string `json:"tag_name"`
}

// fetchLatestReleaseVersion returns the latest release tag with the release
// prefix stripped.
func fetchLatestReleaseVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
	if err != nil {
		return "", fmt.Errorf(messages.UpdateCreateRequestErrFmt, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "libcxx-printers")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf(messages.UpdateFetchLatestReleaseErrFmt, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if rateLimitErr := rateLimitErrorFromResponse(resp); rateLimitErr != nil {
			return "", rateLimitErr
		}
		return "", fmt.Errorf(messages.UpdateFetchLatestReleaseStatusFmt, resp.Status)
	}

	var payload latestReleaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf(messages.UpdateDecodeLatestReleaseErrFmt, err)
	}
	if strings.TrimSpace(payload.TagName) == "" {
		return "", errors.New(messages.UpdateLatestReleaseMissingTag)
	}
	normalized, err := version.NormalizeTag(payload.TagName)
	if err != nil {
		return "", fmt.Errorf(messages.UpdateInvalidLatestReleaseTagFmt, payload.TagName, err)
	}
	return normalized, nil
}

func rateLimitErrorFromResponse(resp *http.Response) *RateLimitError {
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	// GitHub returns 403 Forbidden for unauthenticated exhaustion; confirm
	// with the rate-limit header before classifying.
	if resp.StatusCode == http.StatusForbidden && strings.TrimSpace(resp.Header.Get("X-RateLimit-Remaining")) == "0" {
		return &RateLimitError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return nil
}
