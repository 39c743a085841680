package tmdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// object is a decoded JSON object that records missing mandatory fields
// while entity tiers read from it. Every tier of one materialization shares
// the same object, so the missing list is the combined outcome of all tiers.
type object struct {
	entity  string
	fields  map[string]json.RawMessage
	missing []string
}

// decodeObject decodes data as a JSON object. A document that is not an
// object yields an empty object already marked as failed.
func decodeObject(entity string, data json.RawMessage) *object {
	o := &object{entity: entity}
	if err := json.Unmarshal(data, &o.fields); err != nil || o.fields == nil {
		o.fields = map[string]json.RawMessage{}
		o.missing = append(o.missing, "<object>")
	}
	return o
}

// err returns a *ParseError when any mandatory field was missing
func (o *object) err() error {
	if len(o.missing) == 0 {
		return nil
	}
	return &ParseError{Entity: o.entity, Missing: o.missing}
}

func (o *object) fail(key string) {
	o.missing = append(o.missing, key)
}

// raw returns the value for key, treating JSON null as absent
func (o *object) raw(key string) (json.RawMessage, bool) {
	v, ok := o.fields[key]
	if !ok || isNull(v) {
		return nil, false
	}
	return v, true
}

// has reports whether key is present, even when null
func (o *object) has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// required reads a mandatory field; absence, null or a type mismatch is recorded as missing
func required[T any](o *object, key string) T {
	var v T
	raw, ok := o.raw(key)
	if !ok {
		o.fail(key)
		return v
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		o.fail(key)
	}
	return v
}

// optional reads a field that may be absent; absence or null leaves it unset
func optional[T any](o *object, key string) *T {
	raw, ok := o.raw(key)
	if !ok {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// optionalPath is optional[string] that also treats an empty path as unset
func optionalPath(o *object, key string) *string {
	s := optional[string](o, key)
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// collection parses each element of an array field through parse.
// An absent key yields an empty collection; element failures are
// recorded as missing fields of the parent.
func collection[T any](o *object, key string, parse func(json.RawMessage) (T, error)) []T {
	out := []T{}
	raw, ok := o.raw(key)
	if !ok {
		return out
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		o.fail(key)
		return out
	}
	for i, elem := range elems {
		v, err := parse(elem)
		if err != nil {
			o.fail(fmt.Sprintf("%s[%d]", key, i))
		}
		out = append(out, v)
	}
	return out
}

// nested parses an optional object field through parse
func nested[T any](o *object, key string, parse func(json.RawMessage) (T, error)) *T {
	raw, ok := o.raw(key)
	if !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		o.fail(key)
	}
	return &v
}

// imageField reads an optional path field as an Image of the given kind
func imageField(o *object, key string, kind ImageKind) *Image {
	path := optionalPath(o, key)
	if path == nil {
		return nil
	}
	return &Image{Kind: kind, FilePath: *path}
}

// flexibleID reads an identifier the service sends either as a string or a number
func flexibleID(o *object, key string) string {
	raw, ok := o.raw(key)
	if !ok {
		o.fail(key)
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if _, err := strconv.ParseFloat(n.String(), 64); err == nil {
			return n.String()
		}
	}
	o.fail(key)
	return ""
}

// parseField materializes the array stored under key of an object document,
// as returned by endpoints like /movie/{id}/keywords
func parseField[T any](entity, key string, data json.RawMessage, parse func(json.RawMessage) (T, error)) ([]T, error) {
	o := decodeObject(entity, data)
	if !o.has(key) {
		o.fail(key)
	}
	out := collection(o, key, parse)
	return out, o.err()
}
