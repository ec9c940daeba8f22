// SPDX-License-Identifier: MPL-2.0

package directory

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by StructureError when the document does not have
	// the shape of a directory.
	ErrMalformed = errors.New("malformed directory")
	// ErrUnexpectedEnd is wrapped by StructureError when input ends inside the
	// directory.
	ErrUnexpectedEnd = errors.New("unexpected end of directory")
	// ErrOutOfOrder is returned when ReadMetadata is called after reading began.
	ErrOutOfOrder = errors.New("directory metadata must be read before any record")
	// ErrParserFailed is returned by every call after a structural error.
	ErrParserFailed = errors.New("directory parser failed on an earlier call")
	// ErrFindConsumed is returned when Find is called a second time.
	ErrFindConsumed = errors.New("directory already searched")
	// ErrClosed is returned by calls made after Close.
	ErrClosed = errors.New("directory parser closed")
)

// StructureError describes an unrecoverable structural fault in a directory.
type StructureError struct {
	// Kind is ErrMalformed or ErrUnexpectedEnd.
	Kind error
	// State is the parser state in which the fault was found.
	State State
	// Offset is the input byte offset near the fault.
	Offset int64
	// Detail describes the fault when the cause alone does not.
	Detail string
	// Cause is the tokenizer error, if any.
	Cause error
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	msg := fmt.Sprintf("%v at offset %d (%s)", e.Kind, e.Offset, e.State)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the fault kind and the underlying cause to errors.Is.
func (e *StructureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
