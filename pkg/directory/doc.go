// SPDX-License-Identifier: MPL-2.0

// Package directory reads CodeBit directories.
//
// A directory is a JSON object published for a domain. Its scalar top-level
// properties form the directory Metadata, and one designated array property
// (itemListElement by default) lists the CodeBit records of the domain:
//
//	{
//	  "@context": "https://schema.org",
//	  "@type": "ItemList",
//	  "itemListElement": [
//	    {"@type": "SoftwareSourceCode", "name": "example.com/a.go", ...},
//	    ...
//	  ]
//	}
//
// Parser walks the document forward only and yields one record at a time, so a
// large directory is never held in memory. A Parser reads a single stream and
// must not be used from more than one goroutine.
package directory
