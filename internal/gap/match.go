package gap

import (
	"path/filepath"
	"strings"
)

// ProtectedPaths returns, in input order, the subset of paths matching any
// of the protected patterns.
func ProtectedPaths(patterns, paths []string) []string {
	var matched []string
	for _, path := range paths {
		normalized := filepath.ToSlash(path)
		for _, pattern := range patterns {
			if matchGlob(normalized, filepath.ToSlash(pattern)) {
				matched = append(matched, path)
				break
			}
		}
	}
	return matched
}

// matchGlob matches a slash-separated path against a glob pattern with **
// support. Pattern segments may contain * wildcards; ** matches any number
// of path segments including none.
func matchGlob(path, pattern string) bool {
	return matchSegments(strings.Split(path, "/"), strings.Split(pattern, "/"))
}

// matchSegments recursively matches path segments against pattern segments.
func matchSegments(path, pattern []string) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}

	head := pattern[0]
	rest := pattern[1:]

	if head == "**" {
		if len(rest) == 0 {
			return true
		}
		for i := 0; i <= len(path); i++ {
			if matchSegments(path[i:], rest) {
				return true
			}
		}
		return false
	}

	if len(path) == 0 {
		return false
	}
	if !matchSegment(path[0], head) {
		return false
	}
	return matchSegments(path[1:], rest)
}

// matchSegment matches a single path segment against a pattern segment.
func matchSegment(segment, pattern string) bool {
	if pattern == "*" || pattern == segment {
		return true
	}
	if strings.Contains(pattern, "*") {
		return matchWildcard(segment, pattern)
	}
	return false
}

// matchWildcard matches a segment against a pattern containing * wildcards.
func matchWildcard(s, pattern string) bool {
	parts := strings.Split(pattern, "*")

	if !strings.HasPrefix(s, parts[0]) {
		return false
	}
	s = s[len(parts[0]):]

	for i := 1; i < len(parts)-1; i++ {
		idx := strings.Index(s, parts[i])
		if idx < 0 {
			return false
		}
		s = s[idx+len(parts[i]):]
	}

	return strings.HasSuffix(s, parts[len(parts)-1])
}
