package record

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/dbcs"
	"github.com/npillmayer/dbcs/sjis"
)

// Format lays out values as a fixed-width record.
//
// Every field of the layout is formatted to exactly its width: values which are
// too short are padded, values which are too long are cut. A missing or null
// value is an error wrapping dbcs.ErrNullInput, unless the field is nullable;
// nullable fields are filled with their padding character.
func (l *Layout) Format(values map[string]dbcs.Text) (string, error) {
	for name := range values {
		if _, ok := l.index[name]; !ok {
			return "", fmt.Errorf("%w: %s in layout %s", ErrUnknownField, name, l.name)
		}
	}
	var b strings.Builder
	for _, f := range l.fields {
		v, ok := values[f.Name]
		if !ok || v.IsNull() {
			if !f.Nullable {
				return "", fmt.Errorf("record %s, field %s: %w", l.name, f.Name, dbcs.ErrNullInput)
			}
			v = dbcs.FromString("")
		}
		s, err := f.format(v)
		if err != nil {
			return "", fmt.Errorf("record %s, field %s: %w", l.name, f.Name, err)
		}
		b.WriteString(s.String())
	}
	line := b.String()
	if n := dbcs.LenB(line); n != l.width {
		tracer().Errorf("record: formatted %q to %d bytes instead of %d", line, n, l.width)
		return "", fmt.Errorf("%w: formatted %d bytes, layout %s has %d", ErrRecordWidth, n, l.name, l.width)
	}
	return line, nil
}

// FormatStrings is Format for non-null string values.
func (l *Layout) FormatStrings(values map[string]string) (string, error) {
	texts := make(map[string]dbcs.Text, len(values))
	for name, v := range values {
		texts[name] = dbcs.FromString(v)
	}
	return l.Format(texts)
}

// Encode lays out values as a fixed-width record and returns its Shift-JIS bytes.
func (l *Layout) Encode(values map[string]dbcs.Text) ([]byte, error) {
	line, err := l.Format(values)
	if err != nil {
		return nil, err
	}
	return sjis.Default().Bytes(line), nil
}

func (f Field) format(v dbcs.Text) (dbcs.Text, error) {
	if f.Align == Right {
		return v.FixLeftWithB(f.Width, f.PadChar())
	}
	return v.FixRightWithB(f.Width, f.PadChar())
}

// trim removes the padding from the padded side of a field value. Remainder
// spaces, as used with double-byte padding characters, are removed as well.
func (f Field) trim(s string) string {
	cutset := " " + string(f.PadChar())
	if f.Align == Right {
		return strings.TrimLeft(s, cutset)
	}
	return strings.TrimRight(s, cutset)
}

// --- Parsing ---------------------------------------------------------------

// Record is a parsed fixed-width record.
type Record struct {
	layout *Layout
	values []string
}

// Parse splits a fixed-width record into its fields and strips the padding of
// every field. Padding is indistinguishable from content: a right-aligned
// field "00000" with padding '0' parses to "".
//
// The byte length of line must match the width of the layout.
func (l *Layout) Parse(line string) (Record, error) {
	if n := dbcs.LenB(line); n != l.width {
		return Record{}, fmt.Errorf("%w: %d bytes, layout %s has %d", ErrRecordWidth, n, l.name, l.width)
	}
	rec := Record{layout: l, values: make([]string, len(l.fields))}
	for i, f := range l.fields {
		s, err := dbcs.MidB(line, l.offsets[i], f.Width)
		if err != nil {
			return Record{}, fmt.Errorf("record %s, field %s: %w", l.name, f.Name, err)
		}
		rec.values[i] = f.trim(s)
	}
	return rec, nil
}

// Decode parses a fixed-width record from its Shift-JIS bytes.
func (l *Layout) Decode(b []byte) (Record, error) {
	if len(b) != l.width {
		return Record{}, fmt.Errorf("%w: %d bytes, layout %s has %d", ErrRecordWidth, len(b), l.name, l.width)
	}
	line, err := sjis.Default().Decode(b, 0, len(b))
	if err != nil {
		return Record{}, fmt.Errorf("record %s: %w", l.name, err)
	}
	return l.Parse(line)
}

// Get returns the value of a field.
func (r Record) Get(name string) (string, error) {
	if r.layout == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	i, ok := r.layout.index[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return r.values[i], nil
}

// Names returns the field names of r in record order.
func (r Record) Names() []string {
	if r.layout == nil {
		return nil
	}
	names := make([]string, len(r.layout.fields))
	for i, f := range r.layout.fields {
		names[i] = f.Name
	}
	return names
}

// Map returns the fields of r as a map from field name to value.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.values))
	for i, name := range r.Names() {
		m[name] = r.values[i]
	}
	return m
}
