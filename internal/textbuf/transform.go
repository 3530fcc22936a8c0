package textbuf

import (
	"bytes"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpper converts the contents to uppercase using the full Unicode
// mappings, so the byte and character lengths may change.
func (t *Buffer) ToUpper() {
	t.b = cases.Upper(language.Und).Bytes(t.b)
	t.charLen = -1
}

// ToLower converts the contents to lowercase using the full Unicode
// mappings.
func (t *Buffer) ToLower() {
	t.b = cases.Lower(language.Und).Bytes(t.b)
	t.charLen = -1
}

// Trim removes leading and trailing white space in place.
func (t *Buffer) Trim() {
	trimmed := bytes.TrimSpace(t.b)
	if len(trimmed) == len(t.b) {
		return
	}
	// Slide within the existing storage instead of reallocating.
	n := copy(t.b, trimmed)
	t.b = t.b[:n]
	t.charLen = -1
}

// Index returns the byte offset of the first occurrence of sub, or -1.
func (t *Buffer) Index(sub string) int {
	return bytes.Index(t.b, []byte(sub))
}

// Contains reports whether sub occurs in the buffer.
func (t *Buffer) Contains(sub string) bool {
	return t.Index(sub) >= 0
}

// Replace substitutes occurrences of old with new, at most n of them
// (all when n < 0), and returns how many were replaced.
func (t *Buffer) Replace(old, new string, n int) int {
	if old == "" {
		return 0
	}
	count := bytes.Count(t.b, []byte(old))
	if n >= 0 && count > n {
		count = n
	}
	if count == 0 {
		return 0
	}
	t.b = bytes.Replace(t.b, []byte(old), []byte(new), count)
	t.charLen = -1
	return count
}

// Equal compares byte-for-byte.
func (t *Buffer) Equal(o *Buffer) bool {
	return bytes.Equal(t.b, o.b)
}

// Compare orders buffers lexicographically by bytes, returning -1, 0 or 1.
func (t *Buffer) Compare(o *Buffer) int {
	return bytes.Compare(t.b, o.b)
}
