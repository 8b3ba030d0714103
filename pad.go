package dbcs

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"
)

// PadLeftB right-aligns t by padding it on the left with spaces until it is
// width bytes long. If width is not greater than the byte length of t, t is
// returned unchanged.
func (t Text) PadLeftB(width int) (Text, error) {
	return t.PadLeftWithB(width, ' ')
}

// PadLeftWithB right-aligns t by padding it on the left with pad until it is
// width bytes long. If width is not greater than the byte length of t, t is
// returned unchanged.
//
// If pad is a double-byte character and the gap to fill is odd, the remaining
// byte is filled with a space, in front of the run of pad characters.
func (t Text) PadLeftWithB(width int, pad rune) (Text, error) {
	if err := t.check(arg{"width", width}); err != nil {
		return Text{}, err
	}
	n := codec.Len(t.s)
	if width <= n {
		return t, nil
	}
	run, rest := padding(width-n, pad)
	return FromString(rest + run + t.s), nil
}

// PadRightB left-aligns t by padding it on the right with spaces until it is
// width bytes long. If width is not greater than the byte length of t, t is
// returned unchanged.
func (t Text) PadRightB(width int) (Text, error) {
	return t.PadRightWithB(width, ' ')
}

// PadRightWithB left-aligns t by padding it on the right with pad until it is
// width bytes long. If width is not greater than the byte length of t, t is
// returned unchanged.
//
// If pad is a double-byte character and the gap to fill is odd, the remaining
// byte is filled with a space, after the run of pad characters.
func (t Text) PadRightWithB(width int, pad rune) (Text, error) {
	if err := t.check(arg{"width", width}); err != nil {
		return Text{}, err
	}
	n := codec.Len(t.s)
	if width <= n {
		return t, nil
	}
	run, rest := padding(width-n, pad)
	return FromString(t.s + run + rest), nil
}

// FixLeftB right-aligns t in a field of exactly width bytes. A shorter t is
// padded on the left with spaces, a longer t is cut to its trailing width
// bytes (see RightB).
func (t Text) FixLeftB(width int) (Text, error) {
	return t.FixLeftWithB(width, ' ')
}

// FixLeftWithB right-aligns t in a field of exactly width bytes. A shorter t is
// padded on the left with pad (see PadLeftWithB), a longer t is cut to its
// trailing width bytes (see RightB).
func (t Text) FixLeftWithB(width int, pad rune) (Text, error) {
	padded, err := t.PadLeftWithB(width, pad)
	if err != nil {
		return Text{}, err
	}
	return padded.RightB(width)
}

// FixRightB left-aligns t in a field of exactly width bytes. A shorter t is
// padded on the right with spaces, a longer t is cut to its leading width
// bytes (see LeftB).
func (t Text) FixRightB(width int) (Text, error) {
	return t.FixRightWithB(width, ' ')
}

// FixRightWithB left-aligns t in a field of exactly width bytes. A shorter t
// is padded on the right with pad (see PadRightWithB), a longer t is cut to
// its leading width bytes (see LeftB).
func (t Text) FixRightWithB(width int, pad rune) (Text, error) {
	padded, err := t.PadRightWithB(width, pad)
	if err != nil {
		return Text{}, err
	}
	return padded.LeftB(width)
}

// padding returns a run of pad characters filling as much of gap bytes as
// possible, and the spaces filling the rest.
func padding(gap int, pad rune) (run string, rest string) {
	unit := codec.CharLen(pad)
	run = strings.Repeat(string(pad), gap/unit)
	if r := gap % unit; r > 0 {
		rest = strings.Repeat(" ", r)
	}
	return run, rest
}
