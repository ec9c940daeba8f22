// SPDX-License-Identifier: MPL-2.0

package codebit

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// HashPrefix identifies the algorithm of a content hash.
const HashPrefix = "SHA256:"

// HashNormalizedEOL returns the SHA-256 content hash of r, in the form
// "SHA256:" followed by upper-case hex. Every CRLF pair is hashed as a single LF
// so that checkouts with either line ending hash alike. The transformation is
// applied to binary content too.
func HashNormalizedEOL(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, NewEOLNormalizer(r)); err != nil {
		return "", fmt.Errorf("hash content: %w", err)
	}
	return HashPrefix + strings.ToUpper(hex.EncodeToString(h.Sum(nil))), nil
}

type eolNormalizer struct {
	r *bufio.Reader
}

// NewEOLNormalizer returns a reader that yields r with each CRLF replaced by LF.
// A lone CR is passed through.
func NewEOLNormalizer(r io.Reader) io.Reader {
	return &eolNormalizer{r: bufio.NewReader(r)}
}

func (n *eolNormalizer) Read(p []byte) (int, error) {
	i := 0
	for i < len(p) {
		c, err := n.r.ReadByte()
		if err != nil {
			if i > 0 && errors.Is(err, io.EOF) {
				return i, nil
			}
			return i, err
		}
		if c == '\r' {
			next, err := n.r.Peek(1)
			if err == nil && next[0] == '\n' {
				continue
			}
		}
		p[i] = c
		i++
	}
	return i, nil
}
