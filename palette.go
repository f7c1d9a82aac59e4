package jcolor

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"pkt.systems/jcolor/internal/ansi"
)

// ColorMode selects whether output is styled.
type ColorMode string

const (
	// ColorAlways styles output regardless of the destination.
	ColorAlways ColorMode = "always"
	// ColorAuto styles output only when it goes to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

var colorModeRegistry = map[string]ColorMode{
	string(ColorAlways): ColorAlways,
	string(ColorAuto):   ColorAuto,
	string(ColorNever):  ColorNever,
}

// ColorModes returns the sorted list of colour mode names.
func ColorModes() []string {
	names := make([]string, 0, len(colorModeRegistry))
	for name := range colorModeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColorMode resolves a colour mode name. The empty string selects
// ColorAlways.
func ParseColorMode(name string) (ColorMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ColorAlways, nil
	}
	mode, ok := colorModeRegistry[name]
	if !ok {
		return "", fmt.Errorf("%w %q (use one of: %s)", ErrUnknownColorMode, name, strings.Join(ColorModes(), ", "))
	}
	return mode, nil
}

// ColorPalette holds the style applied to each token class. A nil entry
// leaves the token unstyled.
type ColorPalette struct {
	Key    *color.Color
	String *color.Color
	Number *color.Color
	Bool   *color.Color
	Null   *color.Color
}

// DefaultColorPalette returns the palette with colour forced on, independent
// of color.NoColor.
func DefaultColorPalette() ColorPalette {
	return colorPaletteFromAnsi(ansi.PaletteDefault)
}

// NoColorPalette disables all styling while keeping the layout.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}

func colorPaletteFromAnsi(ap ansi.Palette) ColorPalette {
	enabled := func(attr color.Attribute) *color.Color {
		c := color.New(attr)
		c.EnableColor()
		return c
	}
	return ColorPalette{
		Key:    enabled(ap.Key),
		String: enabled(ap.String),
		Number: enabled(ap.Num),
		Bool:   enabled(ap.Bool),
		Null:   enabled(ap.Nil),
	}
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

// resolvePalette picks the palette for opts.Color when writing to w.
func resolvePalette(opts *Options, w io.Writer) (ColorPalette, error) {
	name := ""
	if opts != nil {
		name = opts.Color
	}
	mode, err := ParseColorMode(name)
	if err != nil {
		return ColorPalette{}, err
	}
	switch mode {
	case ColorNever:
		return NoColorPalette(), nil
	case ColorAuto:
		if !isTerminal(w) {
			return NoColorPalette(), nil
		}
	}
	return DefaultColorPalette(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
