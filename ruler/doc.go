/*
Package ruler renders Shift-JIS text on a console together with a byte ruler.

When fixed-width records go wrong it is usually because a field boundary
falls into a double-byte character. Render prints a text so that every
character occupies as many columns as it has bytes, followed by a ruler
giving the byte offset of every character, and optionally a marker under a
byte offset of interest:

	aピbカ
	01-34-
	  !

The '!' tells that a cut at byte 2 would split 'ピ'; a cut on a character
boundary is marked with '^'.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ruler

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dbcs'
func tracer() tracing.Trace {
	return tracing.Select("dbcs")
}
