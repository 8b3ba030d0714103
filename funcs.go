package dbcs

// Functions on plain Go strings. Go strings are never null, so the only
// error these functions may return is an *ArgumentError.

// LenB returns the length of s in bytes when encoded as Shift-JIS.
func LenB(s string) int {
	return codec.Len(s)
}

// MidB returns the substring of s at byte offset start with a length of
// length bytes. See Text.MidB.
func MidB(s string, start, length int) (string, error) {
	return unwrap(FromString(s).MidB(start, length))
}

// MidToEndB returns the substring of s from byte offset start to the end.
// See Text.MidToEndB.
func MidToEndB(s string, start int) (string, error) {
	return unwrap(FromString(s).MidToEndB(start))
}

// LeftB returns the leading length bytes of s. See Text.LeftB.
func LeftB(s string, length int) (string, error) {
	return unwrap(FromString(s).LeftB(length))
}

// RightB returns the trailing length bytes of s. See Text.RightB.
func RightB(s string, length int) (string, error) {
	return unwrap(FromString(s).RightB(length))
}

// PadLeftB pads s on the left with spaces to width bytes. See Text.PadLeftB.
func PadLeftB(s string, width int) (string, error) {
	return unwrap(FromString(s).PadLeftB(width))
}

// PadLeftWithB pads s on the left with pad to width bytes. See Text.PadLeftWithB.
func PadLeftWithB(s string, width int, pad rune) (string, error) {
	return unwrap(FromString(s).PadLeftWithB(width, pad))
}

// PadRightB pads s on the right with spaces to width bytes. See Text.PadRightB.
func PadRightB(s string, width int) (string, error) {
	return unwrap(FromString(s).PadRightB(width))
}

// PadRightWithB pads s on the right with pad to width bytes. See Text.PadRightWithB.
func PadRightWithB(s string, width int, pad rune) (string, error) {
	return unwrap(FromString(s).PadRightWithB(width, pad))
}

// FixLeftB right-aligns s in exactly width bytes. See Text.FixLeftB.
func FixLeftB(s string, width int) (string, error) {
	return unwrap(FromString(s).FixLeftB(width))
}

// FixLeftWithB right-aligns s in exactly width bytes, padding with pad.
// See Text.FixLeftWithB.
func FixLeftWithB(s string, width int, pad rune) (string, error) {
	return unwrap(FromString(s).FixLeftWithB(width, pad))
}

// FixRightB left-aligns s in exactly width bytes. See Text.FixRightB.
func FixRightB(s string, width int) (string, error) {
	return unwrap(FromString(s).FixRightB(width))
}

// FixRightWithB left-aligns s in exactly width bytes, padding with pad.
// See Text.FixRightWithB.
func FixRightWithB(s string, width int, pad rune) (string, error) {
	return unwrap(FromString(s).FixRightWithB(width, pad))
}

func unwrap(t Text, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return t.String(), nil
}
