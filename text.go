package dbcs

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/dbcs/sjis"
)

// Text is an immutable, nullable string.
//
// A Text created by
//
//	Text{}
//
// is null. Every operation on a null Text fails with ErrNullInput. Use
// FromString to create an empty, non-null Text.
//
// Methods that take or return positions use Shift-JIS byte offsets.
type Text struct {
	s     string
	valid bool
}

// FromString creates a non-null Text from a Go string.
func FromString(s string) Text {
	return Text{s: s, valid: true}
}

// FromPtr creates a Text from a string pointer. A nil pointer yields a null Text.
func FromPtr(p *string) Text {
	if p == nil {
		return Text{}
	}
	return FromString(*p)
}

// Null returns a null Text.
func Null() Text {
	return Text{}
}

var empty = FromString("")

// IsNull reports whether t is null.
func (t Text) IsNull() bool {
	return !t.valid
}

// String returns t as a Go string. A null Text returns "".
func (t Text) String() string {
	return t.s
}

// Ptr returns t as a string pointer, nil for a null Text.
func (t Text) Ptr() *string {
	if !t.valid {
		return nil
	}
	s := t.s
	return &s
}

// LenB returns the length of t in bytes when encoded as Shift-JIS.
func (t Text) LenB() (int, error) {
	if err := t.check(); err != nil {
		return 0, err
	}
	return codec.Len(t.s), nil
}

// codec is the single encoding every operation works with.
var codec = sjis.Default()

type arg struct {
	name  string
	value int
}

// check validates t and the numeric arguments, in the order given.
func (t Text) check(args ...arg) error {
	if !t.valid {
		return ErrNullInput
	}
	for _, a := range args {
		if a.value < 0 {
			return &ArgumentError{Param: a.name, Value: a.value}
		}
	}
	return nil
}
