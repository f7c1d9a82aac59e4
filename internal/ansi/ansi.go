// Package ansi holds the colour attributes jcolor paints each JSON token
// class with.
package ansi

import "github.com/fatih/color"

// Palette assigns a colour attribute to each JSON token class.
type Palette struct {
	Key    color.Attribute
	String color.Attribute
	Num    color.Attribute
	Bool   color.Attribute
	Nil    color.Attribute
}

// PaletteDefault is the only palette: success for keys and strings, warning
// for numbers, info for booleans and special for null.
var PaletteDefault = Palette{
	Key:    color.FgGreen,
	String: color.FgGreen,
	Num:    color.FgYellow,
	Bool:   color.FgHiBlue,
	Nil:    color.FgMagenta,
}
