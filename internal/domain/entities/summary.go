package entities

import "strings"

// Summary wraps the loosely-typed summary payload returned by the transcript
// source. The remote side does not guarantee field shapes, so callers must go
// through the defensive accessors instead of asserting types themselves.
type Summary map[string]interface{}

// Well-known summary field names
const (
	SummaryFieldOverview    = "overview"
	SummaryFieldActionItems = "action_items"
	SummaryFieldKeywords    = "keywords"
	SummaryFieldGist        = "gist"
)

// Text returns the field as a non-empty string, reporting whether it was
// present and string-shaped.
func (s Summary) Text(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	if !ok || str == "" {
		return "", false
	}
	return str, true
}

// StringList returns the field filtered down to its non-empty string
// elements. A missing field or a field of the wrong shape yields nil;
// non-string and blank elements are dropped.
func (s Summary) StringList(key string) []string {
	if s == nil {
		return nil
	}
	v, ok := s[key]
	if !ok {
		return nil
	}
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		str, ok := item.(string)
		if !ok || strings.TrimSpace(str) == "" {
			continue
		}
		out = append(out, str)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
