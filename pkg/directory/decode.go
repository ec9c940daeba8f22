// SPDX-License-Identifier: MPL-2.0

package directory

import (
	"io"

	"github.com/filemeta/codebit/pkg/codebit"
	"github.com/filemeta/codebit/pkg/jsonstream"
)

// DecodeRecord reads a single record object from r using the same rules as
// directory items. Input after the closing brace is not read.
func DecodeRecord(r io.Reader, opts ...Option) (*codebit.Record, error) {
	p := NewParser(r, opts...)
	defer func() { _ = p.Close() }()

	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cursor.Kind() != jsonstream.StartObject {
		return nil, p.malformed("record must be a JSON object, found %s", p.cursor.Kind())
	}
	p.state = InItem
	rec, err := p.readItem()
	if err != nil {
		return nil, err
	}
	p.state = End
	return rec, nil
}
