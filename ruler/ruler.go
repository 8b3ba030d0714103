package ruler

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/fatih/color"
	"github.com/npillmayer/dbcs/sjis"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int            // wrap after this many columns, 0 for no wrapping
	Color     bool           // colour double-byte and substituted characters
	Mark      int            // byte offset to mark, negative for none
	Summary   bool           // append a line with byte and character counts
	Context   *uax11.Context // for East Asian widths; nil means uax11.LatinContext
}

// DefaultConfig returns a configuration without wrapping, colours and marks.
func DefaultConfig() *Config {
	return &Config{Mark: -1}
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and enables colours.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 80
		}
	} else {
		config.LineWidth = 80
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().Infof("ruler: setting line width to %d columns", config.LineWidth)
	return config
}

// Print renders text to stdout, configured from the terminal's properties.
func Print(text string) error {
	return Render(os.Stdout, text, ConfigFromTerminal())
}

var graphemeSetup sync.Once

// Render writes text, a byte ruler and an optional marker line to w.
//
// Every character is followed by blanks until it occupies as many columns as
// it has bytes in Shift-JIS. Characters which need more columns than bytes
// (e.g., emojis, which are substituted) extend the ruler with blanks. Lines are
// wrapped at character boundaries after config.LineWidth columns.
func Render(w io.Writer, text string, config *Config) error {
	if config == nil {
		config = DefaultConfig()
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	graphemeSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	seg := segment{pal: newPalette(config.Color), mark: config.Mark}
	codec := sjis.Default()
	for ch := range codec.Chars(text) {
		glyph, gw := glyphOf(ch.Rune, ctx)
		cells := max(ch.Width, gw)
		if config.LineWidth > 0 && seg.cols > 0 && seg.cols+cells > config.LineWidth {
			if err := seg.flush(w); err != nil {
				return err
			}
		}
		seg.add(ch, glyph, gw, cells)
	}
	if err := seg.flush(w); err != nil {
		return err
	}
	if config.Summary {
		s := codec.Summarize(text)
		_, err := fmt.Fprintf(w, "%d bytes, %d chars (%d wide, %d substituted)\n",
			s.Bytes, s.Chars, s.Wide, s.Substituted)
		return err
	}
	return nil
}

// glyphOf returns a printable form of r and its display width.
func glyphOf(r rune, ctx *uax11.Context) (string, int) {
	if unicode.IsControl(r) {
		return ".", 1
	}
	g := string(r)
	return g, uax11.StringWidth(grapheme.StringFromString(g), ctx)
}

type palette struct {
	wide, substituted, split *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		wide:        color.New(color.FgCyan),
		substituted: color.New(color.FgYellow, color.Bold),
		split:       color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.wide, p.substituted, p.split} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// segment collects the output lines for one wrapped portion of the text.
type segment struct {
	pal         palette
	mark        int
	cols        int
	text, ruler strings.Builder
	marks       strings.Builder
	marked      bool
}

func (seg *segment) add(ch sjis.Char, glyph string, gw, cells int) {
	switch {
	case ch.Substituted:
		seg.text.WriteString(seg.pal.substituted.Sprint(glyph))
	case ch.Wide():
		seg.text.WriteString(seg.pal.wide.Sprint(glyph))
	default:
		seg.text.WriteString(glyph)
	}
	seg.text.WriteString(strings.Repeat(" ", cells-gw))
	for i := 0; i < cells; i++ {
		pos := ch.Pos + i
		switch {
		case i == 0:
			seg.ruler.WriteString(strconv.Itoa(pos % 10))
		case i < ch.Width:
			seg.ruler.WriteByte('-')
		default:
			seg.ruler.WriteByte(' ')
		}
		switch {
		case i >= ch.Width || pos != seg.mark:
			seg.marks.WriteByte(' ')
		case i == 0:
			seg.marks.WriteByte('^')
			seg.marked = true
		default:
			seg.marks.WriteString(seg.pal.split.Sprint("!"))
			seg.marked = true
		}
	}
	seg.cols += cells
}

func (seg *segment) flush(w io.Writer) error {
	if seg.cols == 0 {
		return nil
	}
	lines := []string{seg.text.String(), strings.TrimRight(seg.ruler.String(), " ")}
	if seg.marked {
		lines = append(lines, strings.TrimRight(seg.marks.String(), " "))
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	seg.text.Reset()
	seg.ruler.Reset()
	seg.marks.Reset()
	seg.cols = 0
	seg.marked = false
	return nil
}
