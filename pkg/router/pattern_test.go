package router

import (
	"errors"
	"testing"
)

func TestParsePattern_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"no_leading_slash", "post/{id}"},
		{"empty_segment", "/a//b"},
		{"trailing_slash", "/a/"},
		{"unclosed_brace", "/a/{id"},
		{"stray_brace", "/a/i}d"},
		{"partial_capture", "/a/x{id}"},
		{"unnamed_capture", "/a/{}"},
		{"unnamed_wildcard", "/a/{*}"},
		{"wildcard_not_last", "/{*rest}/b"},
		{"nested_braces", "/{{id}}"},
		{"duplicate_names", "/{id}/x/{id}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePattern(tt.pattern)
			if err == nil {
				t.Fatalf("ParsePattern(%q) should fail", tt.pattern)
			}
			var perr *PatternError
			if !errors.As(err, &perr) {
				t.Fatalf("error should be a *PatternError, got %T", err)
			}
			if perr.Pattern != tt.pattern {
				t.Errorf("PatternError.Pattern = %q, want %q", perr.Pattern, tt.pattern)
			}
		})
	}
}

func TestPathPattern_Match(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		ok      bool
		params  map[string]string
	}{
		{"/", "/", true, nil},
		{"/", "/post", false, nil},
		{"/post", "/post", true, nil},
		{"/post", "/post/1", false, nil},
		{"/post/{id}", "/post/42", true, map[string]string{"id": "42"}},
		{"/post/{id}", "/post", false, nil},
		{"/post/{id}", "/post/42/edit", false, nil},
		{"/post/{id}/edit", "/post/42/edit", true, map[string]string{"id": "42"}},
		{"/files/{*path}", "/files/a/b/c.txt", true, map[string]string{"path": "a/b/c.txt"}},
		{"/files/{*path}", "/files/one", true, map[string]string{"path": "one"}},
		{"/files/{*path}", "/files", false, nil},
		{"/post/{id}", "post/42", false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			p, err := ParsePattern(tt.pattern)
			if err != nil {
				t.Fatalf("ParsePattern(%q): %v", tt.pattern, err)
			}
			params, ok := p.Match(tt.path)
			if ok != tt.ok {
				t.Fatalf("Match(%q) = %v, want %v", tt.path, ok, tt.ok)
			}
			for key, want := range tt.params {
				if got := params.Get(key); got != want {
					t.Errorf("param %q = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestPathPattern_Specificity(t *testing.T) {
	literal := mustParse(t, "/post/new")
	capture := mustParse(t, "/post/{id}")
	wildcard := mustParse(t, "/post/{*rest}")
	short := mustParse(t, "/post")

	if !literal.moreSpecificThan(capture) {
		t.Error("literal segment should beat a capture")
	}
	if !capture.moreSpecificThan(wildcard) {
		t.Error("capture should beat a wildcard")
	}
	if capture.moreSpecificThan(literal) {
		t.Error("specificity must not be symmetric")
	}
	if !capture.moreSpecificThan(short) {
		t.Error("longer pattern should win when shared segments tie")
	}
}

func mustParse(t *testing.T, pattern string) *PathPattern {
	t.Helper()
	p, err := ParsePattern(pattern)
	if err != nil {
		t.Fatalf("ParsePattern(%q): %v", pattern, err)
	}
	return p
}
