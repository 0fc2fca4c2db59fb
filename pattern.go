package pathway

import (
	"strconv"
	"strings"
)

// segmentKind classifies one pattern segment.
type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentParam
	segmentWildcard
)

// patternSegment is one parsed segment of a route pattern. For literal
// segments value holds the text; for params and named wildcards it holds
// the capture name (empty for an anonymous wildcard).
type patternSegment struct {
	kind  segmentKind
	value string
}

// splitPath splits a path or pattern into its non-empty segments, so that
// "/a/b", "/a/b/" and "//a//b" all yield ["a", "b"]. The root path "/"
// yields an empty slice.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// parsePattern parses a route pattern into segments, validating it in
// full. All malformed-pattern conditions are rejected here, at
// registration time, so the match path never has to handle them.
func parsePattern(pattern string) ([]patternSegment, error) {
	if pattern == "" {
		return nil, newConfigurationError(pattern, "pattern is empty")
	}
	if !strings.HasPrefix(pattern, "/") {
		return nil, newConfigurationError(pattern, "pattern must begin with '/'")
	}

	raw := splitPath(pattern)
	segs := make([]patternSegment, 0, len(raw))
	names := make(map[string]struct{}, len(raw))

	for i, part := range raw {
		switch {
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" {
				return nil, newConfigurationError(pattern, "param segment has no name")
			}
			if _, dup := names[name]; dup {
				return nil, newConfigurationError(pattern, "duplicate param name "+strconv.Quote(name))
			}
			names[name] = struct{}{}
			segs = append(segs, patternSegment{kind: segmentParam, value: name})

		case strings.HasPrefix(part, "*"):
			if i != len(raw)-1 {
				return nil, newConfigurationError(pattern, "wildcard must be the final segment")
			}
			name := part[1:]
			if name != "" {
				if _, dup := names[name]; dup {
					return nil, newConfigurationError(pattern, "duplicate param name "+strconv.Quote(name))
				}
				names[name] = struct{}{}
			}
			segs = append(segs, patternSegment{kind: segmentWildcard, value: name})

		default:
			segs = append(segs, patternSegment{kind: segmentLiteral, value: part})
		}
	}

	return segs, nil
}
