package router

import (
	"fmt"
	"strings"
)

// PatternError reports a malformed or conflicting route pattern at
// registration time.
type PatternError struct {
	// Pattern is the offending pattern string.
	Pattern string
	// Reason describes what is wrong with it.
	Reason string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid route pattern %q: %s", e.Pattern, e.Reason)
}

// Params holds path parameters extracted during matching, keyed by the
// capture name from the pattern.
type Params map[string]string

// Get returns a parameter value or empty string if not present.
func (p Params) Get(key string) string {
	return p[key]
}

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentParam
	segmentWildcard
)

type segment struct {
	kind  segmentKind
	value string // literal text, or capture name
}

// PathPattern is a compiled route pattern.
//
// Patterns are slash-separated. A `{name}` segment captures exactly one
// path segment; a trailing `{*name}` captures the remaining path
// including slashes. Everything else matches literally.
type PathPattern struct {
	raw      string
	segments []segment
}

// ParsePattern compiles a pattern, rejecting malformed syntax.
func ParsePattern(raw string) (*PathPattern, error) {
	if raw == "" || raw[0] != '/' {
		return nil, &PatternError{Pattern: raw, Reason: "must start with '/'"}
	}

	p := &PathPattern{raw: raw}
	if raw == "/" {
		return p, nil
	}

	names := make(map[string]bool)
	parts := strings.Split(raw[1:], "/")
	for i, part := range parts {
		switch {
		case part == "":
			return nil, &PatternError{Pattern: raw, Reason: "empty segment"}

		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			name := part[1 : len(part)-1]
			kind := segmentParam
			if strings.HasPrefix(name, "*") {
				kind = segmentWildcard
				name = name[1:]
				if i != len(parts)-1 {
					return nil, &PatternError{Pattern: raw, Reason: "wildcard segment must be last"}
				}
			}
			if name == "" {
				return nil, &PatternError{Pattern: raw, Reason: "capture segment needs a name"}
			}
			if strings.ContainsAny(name, "{}*/") {
				return nil, &PatternError{Pattern: raw, Reason: fmt.Sprintf("invalid capture name %q", name)}
			}
			if names[name] {
				return nil, &PatternError{Pattern: raw, Reason: fmt.Sprintf("duplicate capture name %q", name)}
			}
			names[name] = true
			p.segments = append(p.segments, segment{kind: kind, value: name})

		case strings.ContainsAny(part, "{}"):
			return nil, &PatternError{Pattern: raw, Reason: fmt.Sprintf("braces must wrap a whole segment in %q", part)}

		default:
			p.segments = append(p.segments, segment{kind: segmentLiteral, value: part})
		}
	}
	return p, nil
}

// String returns the pattern as registered.
func (p *PathPattern) String() string {
	return p.raw
}

// Match tests a path against the pattern, returning extracted
// parameters on success.
func (p *PathPattern) Match(path string) (Params, bool) {
	if path == "" || path[0] != '/' {
		return nil, false
	}
	if p.raw == "/" {
		if path == "/" {
			return Params{}, true
		}
		return nil, false
	}

	parts := strings.Split(path[1:], "/")
	params := Params{}
	for i, seg := range p.segments {
		if seg.kind == segmentWildcard {
			if i >= len(parts) {
				return nil, false
			}
			rest := strings.Join(parts[i:], "/")
			if rest == "" {
				return nil, false
			}
			params[seg.value] = rest
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		switch seg.kind {
		case segmentLiteral:
			if parts[i] != seg.value {
				return nil, false
			}
		case segmentParam:
			if parts[i] == "" {
				return nil, false
			}
			params[seg.value] = parts[i]
		}
	}
	if len(parts) != len(p.segments) {
		return nil, false
	}
	return params, true
}

// conflictsWith reports whether two patterns match the same set of
// paths. Patterns conflict when their segment shapes agree, differing
// at most in capture names; registering both would leave one silently
// shadowed.
func (p *PathPattern) conflictsWith(other *PathPattern) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		a, b := p.segments[i], other.segments[i]
		if a.kind != b.kind {
			return false
		}
		if a.kind == segmentLiteral && a.value != b.value {
			return false
		}
	}
	return true
}

// moreSpecificThan orders two patterns by standard path-router
// precedence: comparing segment by segment, literals beat captures and
// captures beat wildcards. The first differing segment decides.
func (p *PathPattern) moreSpecificThan(other *PathPattern) bool {
	n := min(len(p.segments), len(other.segments))
	for i := range n {
		a, b := p.segments[i].kind, other.segments[i].kind
		if a != b {
			return a < b
		}
	}
	// Longer patterns pin down more of the path.
	return len(p.segments) > len(other.segments)
}
