// SPDX-License-Identifier: MPL-2.0

// Package jsonstream reads and writes JSON one node at a time.
//
// Cursor is a pull tokenizer: each call to Next moves to the next node and
// reports it as an object start, array start, scalar value, or end of the
// enclosing container. Object members carry their property name, so callers can
// walk a document as a flat event stream without materializing it.
package jsonstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// DefaultMaxDepth bounds container nesting unless overridden with WithMaxDepth.
const DefaultMaxDepth = 256

const (
	// None is the position before the first node and after the end of input.
	None Kind = iota
	// StartObject is the opening of an object.
	StartObject
	// StartArray is the opening of an array.
	StartArray
	// Value is a scalar: string, number, boolean, or null.
	Value
	// EndElement closes the innermost open object or array.
	EndElement
)

// ErrTooDeep is wrapped by SyntaxError when nesting exceeds the configured depth.
var ErrTooDeep = errors.New("json nesting too deep")

type (
	// Kind identifies the node under the cursor.
	Kind int

	// Option configures a Cursor.
	Option func(*Cursor)

	// SyntaxError reports malformed JSON, or input that ends inside an open
	// container, at a byte offset.
	SyntaxError struct {
		Offset int64
		Err    error
	}

	// Cursor walks a JSON document forward only. It is not safe for concurrent use.
	Cursor struct {
		dec      *json.Decoder
		stack    []json.Delim
		maxDepth int

		kind  Kind
		name  string
		value string
		null  bool

		err error
	}
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case StartObject:
		return "StartObject"
	case StartArray:
		return "StartArray"
	case Value:
		return "Value"
	case EndElement:
		return "EndElement"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json syntax error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// WithMaxDepth limits how deeply containers may nest.
func WithMaxDepth(n int) Option {
	return func(c *Cursor) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// NewCursor returns a Cursor positioned before the first node of r.
func NewCursor(r io.Reader, opts ...Option) *Cursor {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	c := &Cursor{dec: dec, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Kind returns the kind of the current node.
func (c *Cursor) Kind() Kind { return c.kind }

// Name returns the property name of the current node, or "" for array elements,
// container ends, and the document root.
func (c *Cursor) Name() string { return c.name }

// Value returns the scalar text of a Value node. Numbers keep their literal
// form; booleans read "true" or "false"; null reads "".
func (c *Cursor) Value() string { return c.value }

// IsNull reports whether the current Value node is a JSON null.
func (c *Cursor) IsNull() bool { return c.null }

// Depth returns the number of containers open at the cursor, counting a
// container whose start is the current node.
func (c *Cursor) Depth() int { return len(c.stack) }

// Offset returns the input byte offset just past the current node.
func (c *Cursor) Offset() int64 { return c.dec.InputOffset() }

// Next advances to the next node. It returns io.EOF once the input is exhausted
// with every container closed, and a *SyntaxError for malformed input. Errors
// are sticky.
func (c *Cursor) Next() error {
	if c.err != nil {
		return c.err
	}
	c.kind, c.name, c.value, c.null = None, "", "", false

	tok, err := c.token()
	if err != nil {
		return c.fail(err)
	}

	if c.inObject() {
		if d, ok := tok.(json.Delim); ok && d == '}' {
			c.pop()
			c.kind = EndElement
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return c.fail(fmt.Errorf("expected property name, got %v", tok))
		}
		c.name = key
		if tok, err = c.token(); err != nil {
			return c.fail(err)
		}
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			c.kind = StartObject
		case '[':
			c.kind = StartArray
		default:
			c.pop()
			c.kind = EndElement
			return nil
		}
		if len(c.stack) >= c.maxDepth {
			return c.fail(fmt.Errorf("%w: limit %d", ErrTooDeep, c.maxDepth))
		}
		c.stack = append(c.stack, t)
	case string:
		c.kind, c.value = Value, t
	case json.Number:
		c.kind, c.value = Value, t.String()
	case bool:
		c.kind, c.value = Value, strconv.FormatBool(t)
	case nil:
		c.kind, c.null = Value, true
	default:
		return c.fail(fmt.Errorf("unexpected token %T", tok))
	}
	return nil
}

// Skip consumes the container that starts at the current node, leaving the
// cursor on its EndElement. For any other node Skip does nothing.
func (c *Cursor) Skip() error {
	if c.kind != StartObject && c.kind != StartArray {
		return nil
	}
	target := len(c.stack) - 1
	for {
		if err := c.Next(); err != nil {
			return err
		}
		if c.kind == EndElement && len(c.stack) == target {
			return nil
		}
	}
}

func (c *Cursor) token() (json.Token, error) {
	tok, err := c.dec.Token()
	if errors.Is(err, io.EOF) && len(c.stack) > 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (c *Cursor) inObject() bool {
	return len(c.stack) > 0 && c.stack[len(c.stack)-1] == '{'
}

func (c *Cursor) pop() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

func (c *Cursor) fail(err error) error {
	c.kind = None
	if errors.Is(err, io.EOF) {
		c.err = io.EOF
		return c.err
	}
	c.err = &SyntaxError{Offset: c.dec.InputOffset(), Err: err}
	return c.err
}
