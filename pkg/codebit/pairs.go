// SPDX-License-Identifier: MPL-2.0

package codebit

// Pair is one key/value tag extracted from a source file. Repeated keys
// accumulate as multiple values.
type Pair struct {
	Key   string
	Value string
}

// FromPairs builds a record from extracted tags in order. Pairs with an empty
// key or value are ignored.
func FromPairs(pairs []Pair) *Record {
	r := New()
	for _, p := range pairs {
		if p.Key == "" || p.Value == "" {
			continue
		}
		r.Add(p.Key, p.Value)
	}
	return r
}
