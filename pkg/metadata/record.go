// SPDX-License-Identifier: MPL-2.0

// Package metadata provides an ordered, multi-valued property bag.
//
// A Record maps property names to ordered lists of string values. Interpretation
// of values is left to callers: a property is single- or multi-valued only by how
// it is used. Absence and null are equivalent, and key order is preserved in the
// order keys were first added.
package metadata

import (
	"errors"
	"slices"
)

// ErrNilValues is returned when a nil value list is added to a property.
var ErrNilValues = errors.New("values may not be nil")

// Record is an ordered multi-valued property bag. The zero value is ready to use.
type Record struct {
	keys   []string
	values map[string][]string
}

// New returns an empty Record.
func New() *Record {
	return &Record{}
}

// Value returns the first value of key, or "" when the property is absent or empty.
func (r *Record) Value(key string) string {
	if list := r.values[key]; len(list) > 0 {
		return list[0]
	}
	return ""
}

// Lookup returns a copy of the values of key and whether the property exists.
// An existing property may hold an empty list.
func (r *Record) Lookup(key string) ([]string, bool) {
	list, ok := r.values[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Values returns a copy of the values of key, or nil when absent.
func (r *Record) Values(key string) []string {
	list, _ := r.Lookup(key)
	return list
}

// Count returns the number of values held by key.
func (r *Record) Count(key string) int {
	return len(r.values[key])
}

// Has reports whether key is present, even with an empty list.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Len returns the number of properties.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the property names in the order they were first added.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Ensure creates key with an empty value list if it is absent. This is the only
// operation that can produce an empty list; callers that use it must tolerate
// that state.
func (r *Record) Ensure(key string) {
	if r.values == nil {
		r.values = make(map[string][]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
		r.values[key] = []string{}
	}
}

// Set replaces the values of key with a single value. An empty value removes
// the property.
func (r *Record) Set(key, value string) {
	if value == "" {
		r.Remove(key)
		return
	}
	r.Ensure(key)
	r.values[key] = []string{value}
}

// SetValues replaces the values of key. A nil or empty list removes the property.
func (r *Record) SetValues(key string, values []string) {
	if len(values) == 0 {
		r.Remove(key)
		return
	}
	r.Ensure(key)
	r.values[key] = slices.Clone(values)
}

// Add appends value to key, creating the property if needed, and returns the
// resulting number of values. Parsers use it when multiplicity is unknown.
func (r *Record) Add(key, value string) int {
	r.Ensure(key)
	r.values[key] = append(r.values[key], value)
	return len(r.values[key])
}

// AddValues appends values to key and returns the resulting number of values.
func (r *Record) AddValues(key string, values []string) (int, error) {
	if values == nil {
		return r.Count(key), ErrNilValues
	}
	r.Ensure(key)
	r.values[key] = append(r.values[key], values...)
	return len(r.values[key]), nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (r *Record) Remove(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := &Record{keys: slices.Clone(r.keys)}
	if r.values != nil {
		c.values = make(map[string][]string, len(r.values))
		for k, v := range r.values {
			c.values[k] = slices.Clone(v)
		}
	}
	return c
}

// All calls yield for each property in key order, stopping early if yield
// returns false. The slice passed to yield must not be modified.
func (r *Record) All(yield func(key string, values []string) bool) {
	for _, k := range r.keys {
		if !yield(k, r.values[k]) {
			return
		}
	}
}
