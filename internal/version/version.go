// Package version holds the version-string machinery shared by the evidence
// extractor, the package cross-checker, and the release check.
package version

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/k3DW/debug/internal/messages"
)

// Pattern matches a semantic version triple. Versions stay textual throughout
// the resolution pipeline; only Compare ever parses the numbers.
const Pattern = `\d+\.\d+\.\d+`

// TagPrefix is the upstream llvm-project release tag prefix.
const TagPrefix = "llvmorg-"

var tripleRe = regexp.MustCompile("^" + Pattern + "$")

// Set is a collection of distinct version strings.
type Set map[string]struct{}

// Contains reports whether v is a member of the set.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members in sorted order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Extract collects the distinct version strings found in lines. rePrefix and
// reSuffix are regexp fragments bracketing the captured triple.
func Extract(lines []string, rePrefix string, reSuffix string) Set {
	re := regexp.MustCompile(rePrefix + "(" + Pattern + ")" + reSuffix)
	found := Set{}
	for _, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			found[m[1]] = struct{}{}
		}
	}
	return found
}

// NormalizeTag strips the llvmorg- release prefix and validates the remainder
// as a version triple.
func NormalizeTag(tag string) (string, error) {
	v := strings.TrimPrefix(strings.TrimSpace(tag), TagPrefix)
	if !tripleRe.MatchString(v) {
		return "", fmt.Errorf(messages.VersionInvalidTagFmt, tag)
	}
	return v, nil
}

// Compare compares two version triples numerically.
// It returns -1 if a < b, 0 if a == b, and 1 if a > b.
func Compare(a string, b string) (int, error) {
	aParts, err := parse(a)
	if err != nil {
		return 0, err
	}
	bParts, err := parse(b)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(aParts); i++ {
		if aParts[i] < bParts[i] {
			return -1, nil
		}
		if aParts[i] > bParts[i] {
			return 1, nil
		}
	}
	return 0, nil
}

// parse converts a version triple into numeric components.
func parse(raw string) ([3]int, error) {
	if !tripleRe.MatchString(raw) {
		return [3]int{}, fmt.Errorf(messages.VersionInvalidFmt, raw)
	}
	parts := strings.Split(raw, ".")
	var out [3]int
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return [3]int{}, fmt.Errorf(messages.VersionInvalidSegmentFmt, part, err)
		}
		out[i] = value
	}
	return out, nil
}
