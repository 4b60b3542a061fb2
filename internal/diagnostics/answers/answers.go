package answers

import (
	"sort"
	"strconv"
	"strings"
)

// BusinessTypeKey carries the sector inside free-form payloads. It is never an answer.
const BusinessTypeKey = "businessType"

// Value is a normalized answer. The concrete types are Single, Multi, Numeric and Text;
// an absent answer has no entry in the Set.
type Value interface {
	isValue()
	String() string
}

// Single is a single-choice option value.
type Single string

// Multi is an ordered, de-duplicated list of option values.
type Multi []string

// Numeric is a finite, non-negative number.
type Numeric float64

// Text is a trimmed, non-empty free-text answer.
type Text string

func (Single) isValue()  {}
func (Multi) isValue()   {}
func (Numeric) isValue() {}
func (Text) isValue()    {}

func (v Single) String() string  { return string(v) }
func (v Multi) String() string   { return strings.Join(v, ",") }
func (v Numeric) String() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v Text) String() string    { return string(v) }

// Set maps question ids to normalized answers.
type Set map[string]Value

// Keys returns the answered question ids in lexical order.
func (s Set) Keys() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Single returns the single-choice answer for id.
func (s Set) Single(id string) (string, bool) {
	v, ok := s[id].(Single)
	if !ok {
		return "", false
	}
	return string(v), true
}

// Multi returns the multi-choice answer for id; a single choice is promoted to one item.
func (s Set) Multi(id string) []string {
	switch v := s[id].(type) {
	case Multi:
		return append([]string{}, v...)
	case Single:
		return []string{string(v)}
	default:
		return nil
	}
}

// Numeric returns the numeric answer for id.
func (s Set) Numeric(id string) (float64, bool) {
	v, ok := s[id].(Numeric)
	if !ok {
		return 0, false
	}
	return float64(v), true
}

// Text returns the free-text answer for id.
func (s Set) Text(id string) string {
	switch v := s[id].(type) {
	case Text:
		return string(v)
	case Single:
		return string(v)
	default:
		return ""
	}
}

// Has reports whether id was answered.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Contains reports whether the multi-choice answer for id includes value.
func (s Set) Contains(id, value string) bool {
	for _, item := range s.Multi(id) {
		if item == value {
			return true
		}
	}
	return false
}
