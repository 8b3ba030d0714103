package record

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidLayout signals an inconsistent layout definition.
	ErrInvalidLayout = errors.New("record: invalid layout")
	// ErrUnknownField signals a field name not present in a layout.
	ErrUnknownField = errors.New("record: unknown field")
	// ErrRecordWidth signals a record whose byte width differs from its layout.
	ErrRecordWidth = errors.New("record: record width does not match layout")
)

// Align is the alignment of a value within its field.
type Align string

// Fields are either left-aligned (padded and cut at the right end) or
// right-aligned (padded and cut at the left end).
const (
	Left  Align = "left"
	Right Align = "right"
)

// Field is a fixed-width field of a record.
type Field struct {
	Name     string `yaml:"name"`
	Width    int    `yaml:"width"`              // width in Shift-JIS bytes
	Align    Align  `yaml:"align,omitempty"`    // defaults to Left
	Pad      string `yaml:"pad,omitempty"`      // a single character, defaults to space
	Nullable bool   `yaml:"nullable,omitempty"` // null values are written as padding
}

// PadChar returns the padding character of f.
func (f Field) PadChar() rune {
	if f.Pad == "" {
		return ' '
	}
	r, _ := utf8.DecodeRuneInString(f.Pad)
	return r
}

func (f Field) validate() error {
	switch {
	case f.Name == "":
		return fmt.Errorf("%w: field without a name", ErrInvalidLayout)
	case f.Width <= 0:
		return fmt.Errorf("%w: field %s has width %d", ErrInvalidLayout, f.Name, f.Width)
	case f.Align != Left && f.Align != Right:
		return fmt.Errorf("%w: field %s has unknown alignment %q", ErrInvalidLayout, f.Name, f.Align)
	case f.Pad != "" && (!utf8.ValidString(f.Pad) || utf8.RuneCountInString(f.Pad) != 1):
		return fmt.Errorf("%w: field %s needs a single padding character, have %q",
			ErrInvalidLayout, f.Name, f.Pad)
	}
	return nil
}

// Layout is an ordered set of fields making up a fixed-width record.
// A Layout is immutable after creation and may be shared between goroutines.
type Layout struct {
	name    string
	fields  []Field
	offsets []int
	index   map[string]int
	width   int
}

// NewLayout creates a layout from a list of fields, in record order.
func NewLayout(name string, fields ...Field) (*Layout, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: layout %q has no fields", ErrInvalidLayout, name)
	}
	l := &Layout{
		name:    name,
		fields:  make([]Field, len(fields)),
		offsets: make([]int, len(fields)),
		index:   make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Align == "" {
			f.Align = Left
		}
		if err := f.validate(); err != nil {
			return nil, err
		}
		if _, dup := l.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %s", ErrInvalidLayout, f.Name)
		}
		l.fields[i] = f
		l.offsets[i] = l.width
		l.index[f.Name] = i
		l.width += f.Width
	}
	tracer().Debugf("record: layout %q with %d fields, %d bytes", name, len(fields), l.width)
	return l, nil
}

type layoutFile struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// ParseLayout reads a layout from its YAML definition.
func ParseLayout(data []byte) (*Layout, error) {
	var def layoutFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return NewLayout(def.Name, def.Fields...)
}

// Name returns the name of the layout.
func (l *Layout) Name() string {
	return l.name
}

// Width returns the record width in bytes.
func (l *Layout) Width() int {
	return l.width
}

// Fields returns a copy of the fields of l.
func (l *Layout) Fields() []Field {
	return append([]Field(nil), l.fields...)
}

// Offset returns the byte offset and width of a field.
func (l *Layout) Offset(name string) (offset, width int, err error) {
	i, ok := l.index[name]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return l.offsets[i], l.fields[i].Width, nil
}

// MarshalYAML writes l in the format ParseLayout reads.
func (l *Layout) MarshalYAML() (any, error) {
	return layoutFile{Name: l.name, Fields: l.fields}, nil
}
