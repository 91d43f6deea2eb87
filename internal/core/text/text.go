// Package text provides the owned byte string value the pipeline stores and
// compares. An Owned holds a private copy of its input: constructors, Clone,
// Concat, Substring, and Lower all allocate fresh buffers, so no two values
// ever alias the same bytes. Equality and ordering are byte-wise; content is
// raw bytes, not runes
package text

import (
	"bytes"
	"errors"
)

// ErrIndexOutOfRange is the panic value raised by At for positions
// outside [0, Len)
var ErrIndexOutOfRange = errors.New("text: index out of range")

// Owned is an independently owned byte string with value semantics.
// The zero value is the empty string. Methods never mutate the receiver;
// every derived value carries its own buffer
type Owned struct {
	b []byte
}

// New returns an Owned holding a private copy of s
func New(s string) Owned {
	if s == "" {
		return Owned{}
	}
	return Owned{b: []byte(s)}
}

// FromBytes returns an Owned holding a private copy of b.
// A nil or empty slice yields the empty value, never an error
func FromBytes(b []byte) Owned {
	if len(b) == 0 {
		return Owned{}
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Owned{b: cp}
}

// Clone returns an independent duplicate of o
func (o Owned) Clone() Owned { return FromBytes(o.b) }

// Len returns the number of bytes in o
func (o Owned) Len() int { return len(o.b) }

// IsEmpty reports whether o holds no bytes
func (o Owned) IsEmpty() bool { return len(o.b) == 0 }

// String renders the exact byte content, no escaping
func (o Owned) String() string { return string(o.b) }

// Bytes returns a private copy of the content
func (o Owned) Bytes() []byte {
	if len(o.b) == 0 {
		return nil
	}
	cp := make([]byte, len(o.b))
	copy(cp, o.b)
	return cp
}

// At returns the byte at position i.
// Positions outside [0, Len) panic with ErrIndexOutOfRange
func (o Owned) At(i int) byte {
	if i < 0 || i >= len(o.b) {
		panic(ErrIndexOutOfRange)
	}
	return o.b[i]
}

// Concat returns a new value holding o's bytes followed by p's.
// Neither operand is touched
func (o Owned) Concat(p Owned) Owned {
	if len(o.b) == 0 && len(p.b) == 0 {
		return Owned{}
	}
	cp := make([]byte, 0, len(o.b)+len(p.b))
	cp = append(cp, o.b...)
	cp = append(cp, p.b...)
	return Owned{b: cp}
}

// Equal reports whether o and p have identical length and bytes
func (o Owned) Equal(p Owned) bool { return bytes.Equal(o.b, p.b) }

// Compare orders o against p byte-wise and returns -1, 0, or +1.
// When one string is a prefix of the other the shorter sorts first
func (o Owned) Compare(p Owned) int { return bytes.Compare(o.b, p.b) }

// Less reports whether o sorts before p under Compare
func (o Owned) Less(p Owned) bool { return bytes.Compare(o.b, p.b) < 0 }

// Greater reports whether o sorts after p under Compare
func (o Owned) Greater(p Owned) bool { return bytes.Compare(o.b, p.b) > 0 }

// Substring returns count bytes starting at start.
// An out-of-range start or a non-positive count yields the empty value;
// a count running past the end is truncated to the available length.
// These cases are leniency, not errors, so nothing is reported
func (o Owned) Substring(start, count int) Owned {
	if start < 0 || start >= len(o.b) || count <= 0 {
		return Owned{}
	}
	end := start + count
	if end > len(o.b) {
		end = len(o.b)
	}
	return FromBytes(o.b[start:end])
}

// Lower returns a new value with ASCII 'A'..'Z' mapped to lowercase.
// Every other byte passes through untouched; no locale awareness.
// Applying Lower twice yields the same value as applying it once
func (o Owned) Lower() Owned {
	if len(o.b) == 0 {
		return Owned{}
	}
	cp := make([]byte, len(o.b))
	for i, c := range o.b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		cp[i] = c
	}
	return Owned{b: cp}
}
