package dbcs

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"

	"github.com/npillmayer/dbcs/sjis"
)

// MidB returns the substring of t starting at byte offset start with a
// length of length bytes.
//
// If start is at or beyond the end of t, or if length is 0, the result is
// empty. If start+length exceeds t, the excess is ignored. If the last
// character of the substring would be a partial double-byte character, that
// character is dropped and replaced by a single space.
func (t Text) MidB(start, length int) (Text, error) {
	if err := t.check(arg{"start", start}, arg{"length", length}); err != nil {
		return Text{}, err
	}
	if length == 0 { // nothing to decode
		return empty, nil
	}
	buf := codec.Bytes(t.s)
	if start >= len(buf) {
		return empty, nil
	}
	length = min(length, len(buf)-start)
	return FromString(decodeTruncated(buf, start, length)), nil
}

// MidToEndB returns the substring of t starting at byte offset start and
// extending to the end of t. If start is at or beyond the end of t, the result
// is empty.
func (t Text) MidToEndB(start int) (Text, error) {
	// Not delegating to MidB: the end of a buffer never splits a character.
	if err := t.check(arg{"start", start}); err != nil {
		return Text{}, err
	}
	buf := codec.Bytes(t.s)
	if start >= len(buf) {
		return empty, nil
	}
	s, err := codec.Decode(buf, start, len(buf)-start)
	if err != nil {
		T().Errorf("dbcs: decoding tail of %q failed: %v", t.s, err)
		s, _ = codec.DecodeLenient(buf, start, len(buf)-start)
	}
	return FromString(s), nil
}

// LeftB returns the leading length bytes of t.
//
// If length is at least the byte length of t, t is returned unchanged. If the
// cut splits a double-byte character, that character is dropped and replaced
// by a single space.
func (t Text) LeftB(length int) (Text, error) {
	if err := t.check(arg{"length", length}); err != nil {
		return Text{}, err
	}
	buf := codec.Bytes(t.s)
	if length >= len(buf) {
		return t, nil
	}
	return FromString(decodeTruncated(buf, 0, length)), nil
}

// RightB returns the trailing length bytes of t.
//
// If length is at least the byte length of t, t is returned unchanged.
// If the cut splits a double-byte character, its orphaned trail byte is
// decoded on its own, which yields some unrelated single-byte character
// (for example, cutting "ー" leaves "["). The result is always length bytes
// wide: an orphan which pairs up with the next byte into an unassigned code
// is decoded apart from it, as U+FFFD.
func (t Text) RightB(length int) (Text, error) {
	if err := t.check(arg{"length", length}); err != nil {
		return Text{}, err
	}
	if length == 0 {
		return empty, nil
	}
	buf := codec.Bytes(t.s)
	if length >= len(buf) {
		return t, nil
	}
	off := len(buf) - length
	s, err := codec.DecodeLenient(buf, off, length)
	if err != nil {
		T().Errorf("dbcs: decoding trailing %d bytes of %q failed: %v", length, t.s, err)
	}
	if codec.Len(s) < length {
		// orphan at off swallowed the lead byte at off+1
		T().Debugf("dbcs: orphaned byte 0x%02x re-paired, decoding it alone", buf[off])
		orphan, _ := codec.DecodeLenient(buf, off, 1)
		if rest, err := codec.Decode(buf, off+1, length-1); err == nil {
			s = orphan + rest
		}
	}
	return FromString(s), nil
}

// decodeTruncated decodes count bytes of buf at offset. A double-byte
// character split at the end of the range is replaced by a space.
func decodeTruncated(buf []byte, offset, count int) string {
	s, err := codec.Decode(buf, offset, count)
	if err == nil {
		return s
	}
	if errors.Is(err, sjis.ErrSplitCharacter) {
		T().Debugf("dbcs: %v, replacing it with a space", err)
		if s, err = codec.Decode(buf, offset, count-1); err == nil {
			return s + " "
		}
	}
	T().Errorf("dbcs: decoding [%d:%d] failed: %v", offset, offset+count, err)
	s, _ = codec.DecodeLenient(buf, offset, count)
	return s
}
