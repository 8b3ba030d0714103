package sjis

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var (
	// ErrSplitCharacter signals that a byte range ends inside a double-byte character.
	ErrSplitCharacter = errors.New("sjis: byte range splits a double-byte character")
	// ErrIndexOutOfBounds signals a byte range outside of a buffer.
	ErrIndexOutOfBounds = errors.New("sjis: byte range out of bounds")
)

// Substitute is the single byte written in place of characters outside of the
// Shift-JIS repertoire.
const Substitute = encoding.ASCIISub

// A UTF-8 sequence is at most 3 bytes for every character a single Shift-JIS
// byte may decode to (including U+FFFD), and a two-byte character never
// needs more than 3 bytes either.
const maxDecodedPerByte = 3

// Codec encodes and decodes Shift-JIS.
//
// A Codec is an immutable value and safe for concurrent use. Every call creates
// its own transformer, so no state is shared between calls.
type Codec struct {
	enc encoding.Encoding
}

var shiftJIS = Codec{enc: japanese.ShiftJIS}

// Default returns the Shift-JIS codec. This is the only encoding the package
// knows of.
func Default() Codec {
	return shiftJIS
}

func (c Codec) String() string {
	return "Shift_JIS"
}

func (c Codec) encoder() *encoding.Encoder {
	return encoding.ReplaceUnsupported(c.enc.NewEncoder())
}

// Bytes encodes s. Characters outside of the repertoire are encoded as
// Substitute, therefore Bytes never fails.
func (c Codec) Bytes(s string) []byte {
	if s == "" {
		return []byte{}
	}
	b, err := c.encoder().Bytes([]byte(s))
	if err != nil {
		tracer().Errorf("sjis: cannot encode %q: %v", s, err)
		return []byte{}
	}
	return b
}

// Len returns the number of bytes s occupies when encoded.
func (c Codec) Len(s string) int {
	if isASCII(s) {
		return len(s)
	}
	return len(c.Bytes(s))
}

// CharLen returns the encoded width of a single character, which is 1 or 2.
func (c Codec) CharLen(r rune) int {
	if r >= 0 && r < utf8.RuneSelf {
		return 1
	}
	return len(c.Bytes(string(r)))
}

// Decode decodes exactly count bytes of buf, starting at offset.
//
// If the byte range ends with the lead byte of a double-byte character,
// Decode returns ErrSplitCharacter. It is up to the caller to decide what to
// do with a truncated character. Any other invalid byte, e.g. a range starting
// on an orphaned 0x80 or 0xA0 trail byte, is not an error: the decoder
// replaces it with U+FFFD.
func (c Codec) Decode(buf []byte, offset, count int) (string, error) {
	src, err := subslice(buf, offset, count)
	if err != nil {
		return "", err
	}
	if len(src) == 0 {
		return "", nil
	}
	dst := make([]byte, maxDecodedPerByte*len(src))
	// With atEOF == false the decoder reports a dangling lead byte as a short
	// source instead of silently replacing it.
	nDst, nSrc, err := c.enc.NewDecoder().Transform(dst, src, false)
	if errors.Is(err, transform.ErrShortSrc) {
		return "", fmt.Errorf("%w at byte %d", ErrSplitCharacter, offset+nSrc)
	} else if err != nil {
		return "", err
	}
	return string(dst[:nDst]), nil
}

// DecodeLenient decodes count bytes of buf, starting at offset, and lets the
// decoder recover from invalid input by its own rules: an orphaned trail byte
// decodes to the single-byte character it happens to denote, undecodable bytes
// decode to U+FFFD.
func (c Codec) DecodeLenient(buf []byte, offset, count int) (string, error) {
	src, err := subslice(buf, offset, count)
	if err != nil {
		return "", err
	}
	if len(src) == 0 {
		return "", nil
	}
	b, err := c.enc.NewDecoder().Bytes(src)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func subslice(buf []byte, offset, count int) ([]byte, error) {
	if offset < 0 || count < 0 || offset > len(buf) || count > len(buf)-offset {
		return nil, fmt.Errorf("%w: [%d:%d] of %d bytes", ErrIndexOutOfBounds,
			offset, offset+count, len(buf))
	}
	return buf[offset : offset+count], nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// --- Characters ------------------------------------------------------------

// Char is a character of a text together with its encoded position.
type Char struct {
	Rune        rune
	Pos         int  // byte offset of the character in the encoded text
	Width       int  // encoded width in bytes
	Substituted bool // character is outside of the repertoire
}

// Wide reports whether the character occupies two bytes.
func (ch Char) Wide() bool {
	return ch.Width > 1
}

// Chars returns an iterator over the characters of s with their byte positions.
func (c Codec) Chars(s string) iter.Seq[Char] {
	return func(yield func(Char) bool) {
		pos := 0
		for _, r := range s {
			ch := Char{Rune: r, Pos: pos, Width: 1}
			if r >= utf8.RuneSelf {
				b := c.Bytes(string(r))
				ch.Width = len(b)
				ch.Substituted = len(b) == 1 && b[0] == Substitute
			}
			if !yield(ch) {
				return
			}
			pos += ch.Width
		}
	}
}
