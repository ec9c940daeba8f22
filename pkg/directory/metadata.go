// SPDX-License-Identifier: MPL-2.0

package directory

import (
	"github.com/filemeta/codebit/pkg/metadata"
	"github.com/filemeta/codebit/pkg/validation"
)

const (
	KeyContext = "@context"
	KeyType    = "@type"

	// ContextSchemaOrg is the required linked-data context of a directory.
	ContextSchemaOrg = "https://schema.org"
	// TypeItemList is the required linked-data type of a directory.
	TypeItemList = "ItemList"
)

// Metadata holds the top-level scalar properties of a directory.
type Metadata struct {
	metadata.Record
}

// NewMetadata returns empty directory metadata.
func NewMetadata() *Metadata {
	return &Metadata{}
}

// Context returns the linked-data context.
func (m *Metadata) Context() string { return m.Value(KeyContext) }

// Type returns the linked-data type.
func (m *Metadata) Type() string { return m.Value(KeyType) }

// Validate checks the directory header only, not the records it lists. Both
// the context and the type must hold exactly their expected value.
func (m *Metadata) Validate() validation.Result {
	var rep validation.Report
	m.expect(&rep, KeyContext, ContextSchemaOrg)
	m.expect(&rep, KeyType, TypeItemList)
	return rep.Result()
}

func (m *Metadata) expect(rep *validation.Report, key, want string) {
	if got := m.Value(key); got != want {
		rep.Mandatory("Property '%s' should be '%s' but is '%s'.", key, want, got)
	}
	if m.Count(key) > 1 {
		rep.Mandatory("Property '%s' has multiple values. Should have one value of '%s'.", key, want)
	}
}
