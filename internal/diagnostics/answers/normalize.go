package answers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"diagnostic-backend/internal/diagnostics/knowledge"
)

// ErrMalformedAnswers is returned when the answer container is not an object.
var ErrMalformedAnswers = errors.New("malformed answers")

// DecodeJSON decodes a JSON object of answers and normalizes it. A null or empty
// body is an empty set.
func DecodeJSON(kb *knowledge.Base, sector knowledge.Sector, data []byte) (Set, error) {
	raw, err := DecodeObject(data)
	if err != nil {
		return nil, err
	}
	return Normalize(kb, sector, raw), nil
}

// DecodeObject decodes the raw answer container, keeping numbers as json.Number.
func DecodeObject(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnswers, err)
	}
	raw, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %s", ErrMalformedAnswers, describe(decoded))
	}
	return raw, nil
}

// BusinessType returns the sector named inside the answers, if any.
func BusinessType(raw map[string]any) string {
	s, _ := raw[BusinessTypeKey].(string)
	return strings.TrimSpace(s)
}

// Normalize converts a free-form payload into a typed Set. Questions known for the
// sector are coerced to their kind; other keys are kept loosely typed so callers can
// report them. Values that cannot be coerced are dropped.
func Normalize(kb *knowledge.Base, sector knowledge.Sector, raw map[string]any) Set {
	set := make(Set, len(raw))
	for key, value := range raw {
		id := strings.TrimSpace(key)
		if id == "" || id == BusinessTypeKey {
			continue
		}
		var (
			v  Value
			ok bool
		)
		q, known := kb.Question(id)
		if known && (q.Transversal() || q.Sector == sector) {
			v, ok = coerce(q.Kind, value)
		} else {
			v, ok = loose(value)
		}
		if ok {
			set[id] = v
		}
	}
	return set
}

func coerce(kind knowledge.Kind, value any) (Value, bool) {
	switch kind {
	case knowledge.KindSingle:
		return toSingle(value)
	case knowledge.KindMulti:
		return toMulti(value)
	case knowledge.KindNumeric:
		return toNumeric(value)
	case knowledge.KindText:
		return toText(value)
	default:
		return nil, false
	}
}

func loose(value any) (Value, bool) {
	switch value.(type) {
	case []any, []string:
		return toMulti(value)
	case float64, float32, int, int64, json.Number:
		return toNumeric(value)
	default:
		return toSingle(value)
	}
}

func toSingle(value any) (Value, bool) {
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if s, ok := scalarString(item); ok && s != "" {
				return Single(strings.ToLower(s)), true
			}
		}
		return nil, false
	case []string:
		return toSingle(stringsToAny(v))
	}
	s, ok := scalarString(value)
	if !ok || s == "" {
		return nil, false
	}
	return Single(strings.ToLower(s)), true
}

func toMulti(value any) (Value, bool) {
	var items []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if s, ok := scalarString(item); ok {
				items = append(items, strings.Split(s, ",")...)
			}
		}
	case []string:
		for _, s := range v {
			items = append(items, strings.Split(s, ",")...)
		}
	default:
		s, ok := scalarString(value)
		if !ok {
			return nil, false
		}
		items = strings.Split(s, ",")
	}
	out := make(Multi, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func toNumeric(value any) (Value, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return nil, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, false
		}
		f = parsed
	default:
		return nil, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil, false
	}
	return Numeric(f), true
}

func toText(value any) (Value, bool) {
	s, ok := scalarString(value)
	if !ok || s == "" {
		return nil, false
	}
	return Text(s), true
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func stringsToAny(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}

func describe(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "null"
	}
}
