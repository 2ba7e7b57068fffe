package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RawRecord is a JSON object returned by the registry API.
// Field names differ between the French and the international schema;
// normalisers resolve them through ordered alias lists.
type RawRecord map[string]any

// RawPage is one decoded page of registry search results.
type RawPage struct {
	// Items are the result records of this page.
	Items []RawRecord

	// Total is the upstream-reported number of matching results.
	// Zero when the endpoint does not report one.
	Total int
}

// Has returns true if key is present with a non-null value.
func (r RawRecord) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the scalar value of key as a trimmed string.
// Absent and null values yield "". Objects and arrays are a RecordError.
func (r RawRecord) String(key string) (string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", NewRecordError(key, v, "expected a scalar value")
	}
}

// Text returns the scalar value of key, or "" when absent or not a scalar.
// Use it for cosmetic values where a bad shape must not fail the record.
func (r RawRecord) Text(key string) string {
	s, err := r.String(key)
	if err != nil {
		return ""
	}
	return s
}

// Int returns the integer value of key, or nil when absent.
// Numeric strings are accepted.
func (r RawRecord) Int(key string) (*int, error) {
	s, err := r.String(key)
	if err != nil || s == "" {
		return nil, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, NewRecordError(key, r[key], "expected a number")
	}
	n := int(f)
	return &n, nil
}

// Bool returns true only if key holds the boolean true.
func (r RawRecord) Bool(key string) bool {
	b, ok := r[key].(bool)
	return ok && b
}

// Object returns the nested object stored under key.
// The boolean is false when the key is absent or null.
func (r RawRecord) Object(key string) (RawRecord, bool, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	obj, ok := asObject(v)
	if !ok {
		return nil, false, NewRecordError(key, v, "expected an object")
	}
	return obj, true, nil
}

// Objects returns the array of objects stored under key.
// Absent or null keys yield an empty slice.
func (r RawRecord) Objects(key string) ([]RawRecord, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]RawRecord); ok {
			return typed, nil
		}
		return nil, NewRecordError(key, v, "expected an array")
	}
	out := make([]RawRecord, 0, len(arr))
	for _, item := range arr {
		obj, ok := asObject(item)
		if !ok {
			return nil, NewRecordError(key, item, "expected an array of objects")
		}
		out = append(out, obj)
	}
	return out, nil
}

// Strings returns the scalar elements of the array stored under key.
// Non-scalar elements are skipped.
func (r RawRecord) Strings(key string) []string {
	arr, ok := r[key].([]any)
	if !ok {
		if typed, ok := r[key].([]string); ok {
			return typed
		}
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, err := RawRecord{"v": item}.String("v")
		if err == nil && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asObject(v any) (RawRecord, bool) {
	switch t := v.(type) {
	case RawRecord:
		return t, true
	case map[string]any:
		return RawRecord(t), true
	default:
		return nil, false
	}
}
