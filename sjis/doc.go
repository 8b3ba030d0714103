/*
Package sjis wraps the Shift-JIS character encoding for byte-oriented text
operations.

Shift-JIS is a double-byte character set: ASCII and half-width katakana occupy
one byte, JIS X 0208 characters (kanji, kana, full-width forms) occupy two.
A lead byte of a two-byte character is always in 0x81…0x9F or 0xE0…0xFC, while
the trail byte may be any of 0x40…0xFC. A trail byte on its own therefore
decodes to some unrelated character, which is why cutting Shift-JIS text at
arbitrary byte offsets needs care.

The package offers a single codec, obtained with Default. There is no way to
configure another encoding.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package sjis

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dbcs'
func tracer() tracing.Trace {
	return tracing.Select("dbcs")
}
