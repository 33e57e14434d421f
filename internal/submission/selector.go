package submission

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultIDField is the identifier field carried by every submission.
const DefaultIDField = "_id"

type rule struct {
	segments  []string
	qualified bool
}

// Selector decides which submission paths are kept.
//
// A qualified rule (written with a separator) matches any path whose leading
// segments equal the rule, so naming a group keeps the whole group. A bare rule
// matches any path containing the name as one of its segments.
type Selector struct {
	all   bool
	rules []rule
	id    rule
}

// NewSelector builds a Selector from the hook's subset fields. The identifier
// field is always kept: a bare name finds the first leaf with that name at any
// depth, a path names the leaf exactly. Fields that cannot be resolved are skipped; they are
// returned joined in the error, each wrapping ErrInvalidFieldSpec, and the
// Selector is usable regardless.
func NewSelector(fields []string, idField string) (Selector, error) {
	var (
		sel  Selector
		errs []error
	)

	for _, f := range fields {
		rules, err := parseField(f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sel.rules = append(sel.rules, rules...)
	}

	// Nothing usable configured: forward the whole submission.
	if len(sel.rules) == 0 {
		sel.all = true
	}

	if idField == "" {
		idField = DefaultIDField
	}
	segs := splitPath(strings.TrimSpace(idField), "/")
	if len(segs) == 0 {
		segs = []string{DefaultIDField}
	}
	sel.id = rule{segments: segs, qualified: len(segs) > 1}

	return sel, errors.Join(errs...)
}

func parseField(f string) ([]rule, error) {
	f = strings.TrimSpace(f)
	if f == "" {
		return nil, fmt.Errorf("%w: empty field", ErrInvalidFieldSpec)
	}

	if strings.Contains(f, "/") {
		segs, ok := strictSegments(strings.Trim(f, "/"), "/")
		if !ok {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidFieldSpec, f)
		}
		if len(segs) == 1 {
			return []rule{{segments: segs}}, nil
		}
		return []rule{{segments: segs, qualified: true}}, nil
	}

	rules := []rule{{segments: []string{f}}}
	// Names may legitimately contain dots, so a dotted field matches either
	// the literal name or the dotted path.
	if strings.Contains(f, ".") {
		if segs, ok := strictSegments(f, "."); ok {
			rules = append(rules, rule{segments: segs, qualified: true})
		}
	}
	return rules, nil
}

// Match reports whether the path is selected.
func (s Selector) Match(path []string) bool {
	if s.all {
		return true
	}
	for _, r := range s.rules {
		if r.match(path) {
			return true
		}
	}
	return false
}

// identifies reports whether the leaf at path is the identifier field.
func (s Selector) identifies(path []string) bool {
	if !s.id.qualified {
		return len(path) > 0 && path[len(path)-1] == s.id.segments[0]
	}
	if len(path) != len(s.id.segments) {
		return false
	}
	return s.id.match(path)
}

func (r rule) match(path []string) bool {
	if !r.qualified {
		for _, seg := range path {
			if seg == r.segments[0] {
				return true
			}
		}
		return false
	}

	if len(path) < len(r.segments) {
		return false
	}
	for i, seg := range r.segments {
		if path[i] != seg {
			return false
		}
	}
	return true
}

func strictSegments(s, sep string) ([]string, bool) {
	parts := strings.Split(s, sep)
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
	}
	return parts, true
}

// splitPath splits a slash path, dropping empty segments.
func splitPath(p, sep string) []string {
	parts := strings.Split(p, sep)
	out := parts[:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
