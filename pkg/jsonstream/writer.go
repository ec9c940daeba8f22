// SPDX-License-Identifier: MPL-2.0

package jsonstream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

const indentUnit = "  "

// Writer emits an indented JSON document incrementally. Calls must be balanced
// by the caller; the first error is sticky and returned by Flush.
type Writer struct {
	w *bufio.Writer
	// empty[i] is true while the container at nesting level i has no members.
	empty []bool
	err   error
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// BeginObject opens the document's root object.
func (jw *Writer) BeginObject() {
	jw.write("{")
	jw.empty = append(jw.empty, true)
}

// Property writes a string-valued member of the current object.
func (jw *Writer) Property(name, value string) {
	jw.member(name)
	jw.quote(value)
}

// OptionalProperty writes a member only when value is not blank.
func (jw *Writer) OptionalProperty(name, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	jw.Property(name, value)
}

// BeginArrayProperty opens an array-valued member of the current object.
func (jw *Writer) BeginArrayProperty(name string) {
	jw.member(name)
	jw.write("[")
	jw.empty = append(jw.empty, true)
}

// ArrayValue writes a string element of the current array.
func (jw *Writer) ArrayValue(value string) {
	jw.element()
	jw.quote(value)
}

// EndArray closes the current array.
func (jw *Writer) EndArray() { jw.end("]") }

// EndObject closes the current object. Closing the root ends the line.
func (jw *Writer) EndObject() {
	jw.end("}")
	if len(jw.empty) == 0 {
		jw.write("\n")
	}
}

// Flush writes buffered output and returns the first error encountered.
func (jw *Writer) Flush() error {
	if jw.err != nil {
		return jw.err
	}
	jw.err = jw.w.Flush()
	return jw.err
}

func (jw *Writer) member(name string) {
	jw.element()
	jw.quote(name)
	jw.write(": ")
}

// element starts a new member or array element on its own indented line.
func (jw *Writer) element() {
	if n := len(jw.empty); n > 0 {
		if !jw.empty[n-1] {
			jw.write(",")
		}
		jw.empty[n-1] = false
	}
	jw.newline(len(jw.empty))
}

func (jw *Writer) end(delim string) {
	n := len(jw.empty)
	if n == 0 {
		return
	}
	wasEmpty := jw.empty[n-1]
	jw.empty = jw.empty[:n-1]
	if !wasEmpty {
		jw.newline(n - 1)
	}
	jw.write(delim)
}

func (jw *Writer) newline(level int) {
	jw.write("\n")
	jw.write(strings.Repeat(indentUnit, level))
}

func (jw *Writer) quote(s string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		jw.err = err
		return
	}
	jw.write(strings.TrimSuffix(buf.String(), "\n"))
}

func (jw *Writer) write(s string) {
	if jw.err != nil {
		return
	}
	_, jw.err = jw.w.WriteString(s)
}
