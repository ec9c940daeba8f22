// SPDX-License-Identifier: MPL-2.0

package codebit

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecord_WriteJSON(t *testing.T) {
	t.Parallel()

	r := New()
	r.Add("x-foo", "1")
	r.Add(KeyAuthor, "Ann")
	r.Add(KeyKeywords, KeywordCodeBit)
	r.Add(KeyVersion, "1.2.3")
	r.Add(KeyURL, "https://example.com/a.go")
	r.Add(KeyName, "example.com/a.go")
	r.Add(KeyUnderType, TypeSoftwareSourceCode)
	r.Add("x-foo", "2")

	var sb strings.Builder
	if err := r.WriteJSON(&sb); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	want := `{
  "@type": "SoftwareSourceCode",
  "name": "example.com/a.go",
  "description": "",
  "url": "https://example.com/a.go",
  "version": "1.2.3",
  "keywords": "CodeBit",
  "author": "Ann",
  "x-foo": [
    "1",
    "2"
  ]
}
`
	if sb.String() != want {
		t.Errorf("WriteJSON() =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	t.Parallel()

	r := newValidRecord()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if kw, ok := decoded[KeyKeywords].([]any); !ok || len(kw) != 2 {
		t.Errorf("keywords = %#v, want two-element array", decoded[KeyKeywords])
	}
	if decoded[KeyHash] != "SHA256:00" {
		t.Errorf("hash = %#v", decoded[KeyHash])
	}
	if _, ok := decoded[KeyUnderType]; ok {
		t.Error("_type must be emitted as @type")
	}
}

func TestRecord_String(t *testing.T) {
	t.Parallel()

	r := newValidRecord()
	r.Add("x-os", "linux")
	want := "_type: SoftwareSourceCode\n" +
		"name: example.com/tools/a.go\n" +
		"version: 1.2.3\n" +
		"url: https://example.com/tools/a.go\n" +
		"datePublished: 2023-02-23\n" +
		"author: Ann Example\n" +
		"license: https://opensource.org/licenses/MIT\n" +
		"keywords: CodeBit; go\n" +
		"hash: SHA256:00\n" +
		"x-os: linux\n"
	if got := r.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
