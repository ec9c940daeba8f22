// SPDX-License-Identifier: MPL-2.0

package codebit

import (
	"bytes"
	"io"
	"strings"

	"github.com/filemeta/codebit/pkg/jsonstream"
)

// WriteJSON writes the record as an indented JSON object in directory order:
// @type, name, description, url and version, then keywords, the optional
// properties, and finally extension properties in encounter order.
func (r *Record) WriteJSON(w io.Writer) error {
	jw := jsonstream.NewWriter(w)
	jw.BeginObject()
	jw.Property(KeyAtType, r.AtType())
	jw.Property(KeyName, r.Name())
	jw.Property(KeyDescription, r.Description())
	jw.Property(KeyURL, r.URL())
	jw.Property(KeyVersion, r.Version().String())

	writeValues(jw, KeyKeywords, r.Keywords())

	jw.OptionalProperty(KeyDatePublished, r.DatePublishedRaw())
	jw.OptionalProperty(KeyAuthor, r.Author())
	jw.OptionalProperty(KeyLicense, r.License())
	jw.OptionalProperty(KeyHash, r.Hash())

	r.Extensions(func(key string, values []string) bool {
		writeValues(jw, key, values)
		return true
	})
	jw.EndObject()
	return jw.Flush()
}

// MarshalJSON implements json.Marshaler using WriteJSON.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeValues writes a single value as a string and several as an array.
func writeValues(jw *jsonstream.Writer, key string, values []string) {
	switch len(values) {
	case 0:
	case 1:
		jw.OptionalProperty(key, values[0])
	default:
		jw.BeginArrayProperty(key)
		for _, v := range values {
			jw.ArrayValue(v)
		}
		jw.EndArray()
	}
}

// String renders the record as "key: value" lines, one line per value.
func (r *Record) String() string {
	var sb strings.Builder
	line := func(key, value string) {
		if value != "" {
			sb.WriteString(key + ": " + value + "\n")
		}
	}
	line(KeyUnderType, r.AtType())
	line(KeyName, r.Name())
	sb.WriteString(KeyVersion + ": " + r.Version().String() + "\n")
	line(KeyURL, r.URL())
	line(KeyDatePublished, r.DatePublishedRaw())
	line(KeyAuthor, r.Author())
	line(KeyDescription, r.Description())
	line(KeyLicense, r.License())
	line(KeyKeywords, strings.Join(r.Keywords(), "; "))
	line(KeyHash, r.Hash())
	r.Extensions(func(key string, values []string) bool {
		for _, v := range values {
			sb.WriteString(key + ": " + v + "\n")
		}
		return true
	})
	return sb.String()
}
