// SPDX-License-Identifier: MPL-2.0

package directory

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/filemeta/codebit/pkg/codebit"
	"github.com/filemeta/codebit/pkg/jsonstream"
	"github.com/filemeta/codebit/pkg/semver"
)

// DefaultItemListKey names the array property that lists directory records.
const DefaultItemListKey = "itemListElement"

const (
	// PreRead is the state before anything has been read.
	PreRead State = iota
	// InMetadata is the state while reading top-level properties.
	InMetadata
	// AfterMetadata is the state once the item list has been found.
	AfterMetadata
	// InItemList is the state between records.
	InItemList
	// InItem is the state while reading one record.
	InItem
	// End is the state after the item list or the document has ended.
	End
	// Error is the terminal state after a structural fault.
	Error
)

type (
	// State is the position of a Parser within the directory document.
	State int

	// Option configures a Parser.
	Option func(*Parser)

	// Parser reads a directory document forward only. Records are produced on
	// demand; the metadata header is read first, implicitly if need be.
	Parser struct {
		src         io.Reader
		cursor      *jsonstream.Cursor
		ownsSource  bool
		itemListKey string
		maxDepth    int
		logger      *log.Logger

		state    State
		searched bool
		closed   bool
	}
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case PreRead:
		return "PreRead"
	case InMetadata:
		return "InMetadata"
	case AfterMetadata:
		return "AfterMetadata"
	case InItemList:
		return "InItemList"
	case InItem:
		return "InItem"
	case End:
		return "End"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// WithOwnership makes Close close the source reader when it is an io.Closer.
func WithOwnership(owns bool) Option {
	return func(p *Parser) {
		p.ownsSource = owns
	}
}

// WithItemListKey changes the name of the array property that lists records.
func WithItemListKey(key string) Option {
	return func(p *Parser) {
		if key != "" {
			p.itemListKey = key
		}
	}
}

// WithLogger sets the logger that receives debug messages about skipped nodes.
func WithLogger(l *log.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMaxDepth limits JSON nesting depth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// NewParser returns a Parser reading the directory document from r.
func NewParser(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		src:         r,
		itemListKey: DefaultItemListKey,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}

	var copts []jsonstream.Option
	if p.maxDepth > 0 {
		copts = append(copts, jsonstream.WithMaxDepth(p.maxDepth))
	}
	p.cursor = jsonstream.NewCursor(r, copts...)
	return p
}

// State returns the current parser state.
func (p *Parser) State() State { return p.state }

// ReadMetadata reads the directory header: every top-level scalar up to the
// item list, or to the end of the document when there is no item list. It must
// be the first read.
func (p *Parser) ReadMetadata() (*Metadata, error) {
	if err := p.usable(); err != nil {
		return nil, err
	}
	if p.state != PreRead {
		return nil, ErrOutOfOrder
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.cursor.Kind() != jsonstream.StartObject {
		return nil, p.malformed("document must be a JSON object, found %s", p.cursor.Kind())
	}
	p.state = InMetadata

	md := NewMetadata()
	for p.state == InMetadata {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.cursor.Kind() {
		case jsonstream.Value:
			if !p.cursor.IsNull() {
				md.Add(p.cursor.Name(), p.cursor.Value())
			}
		case jsonstream.StartArray:
			if p.cursor.Name() == p.itemListKey {
				p.state = AfterMetadata
				break
			}
			if err := p.skip(); err != nil {
				return nil, err
			}
		case jsonstream.StartObject:
			if err := p.skip(); err != nil {
				return nil, err
			}
		case jsonstream.EndElement:
			p.logger.Debug("directory has no item list", "key", p.itemListKey)
			p.state = End
		default:
			return nil, p.malformed("unexpected %s in directory header", p.cursor.Kind())
		}
	}
	return md, nil
}

// Next returns the next record of the item list, or nil with a nil error once
// the list is exhausted. Records are returned whether or not they are valid
// CodeBits; filtering is left to the caller.
func (p *Parser) Next() (*codebit.Record, error) {
	if err := p.usable(); err != nil {
		return nil, err
	}
	if p.state == PreRead {
		if _, err := p.ReadMetadata(); err != nil {
			return nil, err
		}
	}
	if p.state == AfterMetadata {
		// The cursor already consumed the opening bracket of the list.
		p.state = InItemList
	}

	for p.state == InItemList {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.cursor.Kind() {
		case jsonstream.StartObject:
			p.state = InItem
		case jsonstream.Value:
			p.logger.Debug("skipping stray value in item list", "value", p.cursor.Value())
		case jsonstream.StartArray:
			if err := p.skip(); err != nil {
				return nil, err
			}
		case jsonstream.EndElement:
			p.state = End
		default:
			return nil, p.malformed("unexpected %s in item list", p.cursor.Kind())
		}
	}

	if p.state != InItem {
		return nil, nil
	}
	return p.readItem()
}

// All returns an iterator over the remaining records. Iteration stops at the
// end of the list or after yielding the first error.
func (p *Parser) All() iter.Seq2[*codebit.Record, error] {
	return func(yield func(*codebit.Record, error) bool) {
		for {
			rec, err := p.Next()
			if err != nil {
				yield(nil, err)
				return
			}
			if rec == nil || !yield(rec, nil) {
				return
			}
		}
	}
}

// Find scans the remaining records for the given name and returns the one with
// the greatest version not above ceiling, or nil when none qualifies. Names are
// compared exactly. Find consumes the rest of the document and may be called
// only once. Pass semver.Max, or a ceiling from semver.ParseForSearch, to
// accept every version or every version in a range.
func (p *Parser) Find(name string, ceiling semver.Version) (*codebit.Record, error) {
	if p.searched {
		return nil, ErrFindConsumed
	}
	p.searched = true

	var (
		best    *codebit.Record
		bestVer semver.Version
	)
	for rec, err := range p.All() {
		if err != nil {
			return nil, err
		}
		if rec.Name() != name {
			continue
		}
		v := rec.Version()
		if v.Compare(ceiling) > 0 {
			p.logger.Debug("skipping version above ceiling", "name", name, "version", v, "ceiling", ceiling)
			continue
		}
		if best == nil || v.Compare(bestVer) > 0 {
			best, bestVer = rec, v
		}
	}
	return best, nil
}

// Close releases the parser, closing the source when the parser owns it.
// Close may be called more than once.
func (p *Parser) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if c, ok := p.src.(io.Closer); ok && p.ownsSource {
		return c.Close()
	}
	return nil
}

// readItem reads the properties of one record. The cursor is on its opening
// brace.
func (p *Parser) readItem() (*codebit.Record, error) {
	rec := codebit.New()
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.cursor.Kind() {
		case jsonstream.Value:
			if !p.cursor.IsNull() {
				rec.Add(p.cursor.Name(), p.cursor.Value())
			}
		case jsonstream.StartArray:
			if err := p.readValues(rec, p.cursor.Name()); err != nil {
				return nil, err
			}
		case jsonstream.StartObject:
			// Object-valued properties are not part of the record model.
			if err := p.skip(); err != nil {
				return nil, err
			}
		case jsonstream.EndElement:
			p.state = InItemList
			return rec, nil
		default:
			return nil, p.malformed("unexpected %s in record", p.cursor.Kind())
		}
	}
}

// readValues adds each scalar of an array property to rec.
func (p *Parser) readValues(rec *codebit.Record, key string) error {
	for {
		if err := p.advance(); err != nil {
			return err
		}
		switch p.cursor.Kind() {
		case jsonstream.Value:
			if !p.cursor.IsNull() {
				rec.Add(key, p.cursor.Value())
			}
		case jsonstream.StartArray, jsonstream.StartObject:
			if err := p.skip(); err != nil {
				return err
			}
		case jsonstream.EndElement:
			return nil
		default:
			return p.malformed("unexpected %s in property %q", p.cursor.Kind(), key)
		}
	}
}

func (p *Parser) usable() error {
	switch {
	case p.closed:
		return ErrClosed
	case p.state == Error:
		return ErrParserFailed
	}
	return nil
}

func (p *Parser) advance() error {
	if err := p.cursor.Next(); err != nil {
		return p.fail(err)
	}
	return nil
}

func (p *Parser) skip() error {
	p.logger.Debug("skipping nested value", "name", p.cursor.Name(), "kind", p.cursor.Kind(), "state", p.state)
	if err := p.cursor.Skip(); err != nil {
		return p.fail(err)
	}
	return nil
}

func (p *Parser) fail(err error) error {
	kind := ErrMalformed
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		kind = ErrUnexpectedEnd
	}
	se := &StructureError{Kind: kind, State: p.state, Offset: p.cursor.Offset(), Cause: err}
	p.state = Error
	return se
}

func (p *Parser) malformed(format string, args ...any) error {
	se := &StructureError{
		Kind:   ErrMalformed,
		State:  p.state,
		Offset: p.cursor.Offset(),
		Detail: fmt.Sprintf(format, args...),
	}
	p.state = Error
	return se
}
