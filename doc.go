/*
Package dbcs offers byte-oriented text operations for legacy double-byte
character sets.

Fixed-width Formats

Many legacy data formats, like flat files, EDI records or mainframe exports,
were specified in terms of bytes. A field of such a record is 10 bytes wide, not
10 characters. In Japan these formats are commonly encoded in Shift-JIS, a
double-byte character set (DBCS), where ASCII and half-width katakana take one
byte and kanji, kana and full-width forms take two.

Go strings are UTF-8, so neither len(s) nor counting runes tells the width of a
string in such a record. Package dbcs measures, slices and pads strings by their
Shift-JIS byte positions:

	LenB       byte length
	MidB       substring by byte offset and byte length
	MidToEndB  substring from a byte offset to the end
	LeftB      leading bytes
	RightB     trailing bytes
	PadLeftB   right-align to a byte width
	PadRightB  left-align to a byte width
	FixLeftB   right-align to exactly a byte width, cutting leading bytes
	FixRightB  left-align to exactly a byte width, cutting trailing bytes

Cutting a DBCS string at an arbitrary byte may split a two-byte character.
Where a cut at the end of a range splits a character, the character is dropped
and replaced by a single space, so the result is never longer than requested.
A cut at the start of a range (RightB, FixLeftB) leaves the orphaned trail byte
to the decoder, which will decode it as whatever single-byte character it
happens to denote. This asymmetry is kept for compatibility with existing
record data.

Null Values

Record fields are often optional. Type Text is a nullable string. Operations on
a null Text fail with ErrNullInput. For plain Go strings, which are never null,
the package offers functions of the same names.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package dbcs

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TextError is an error type for the dbcs module
type TextError string

func (e TextError) Error() string {
	return string(e)
}

// ErrNullInput is flagged whenever an operation is called for a null Text.
const ErrNullInput = TextError("text is null")

// ErrNegativeArgument is flagged whenever a byte offset, length or width is negative.
const ErrNegativeArgument = TextError("argument must not be negative")

// ArgumentError reports the parameter which caused ErrNegativeArgument.
type ArgumentError struct {
	Param string
	Value int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s = %d: %s", e.Param, e.Value, ErrNegativeArgument)
}

// Unwrap returns ErrNegativeArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrNegativeArgument
}
