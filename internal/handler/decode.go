package handler

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// decodeObject splits a JSON object into its raw members. Anything that is
// not an object yields no members, so every field reads as absent.
func decodeObject(data []byte) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

// field decodes the named member as exactly T. A missing member, null or a
// value of another JSON type yields nil, never a zero value.
func field[T any](fields map[string]json.RawMessage, name string) *T {
	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func stringField(fields map[string]json.RawMessage, name string) string {
	if v := field[string](fields, name); v != nil {
		return *v
	}
	return ""
}

// formString returns nil when the form has no such field.
func formString(values url.Values, name string) *string {
	if !values.Has(name) {
		return nil
	}
	v := values.Get(name)
	return &v
}

// formFloat parses the named form field. A missing field or a value that
// is not a number yields nil.
func formFloat(values url.Values, name string) *float64 {
	if !values.Has(name) {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(values.Get(name)), 64)
	if err != nil {
		return nil
	}
	return &f
}
