package jcolor

import (
	"strings"

	"github.com/tidwall/pretty"
)

// Width 0 puts every array element on its own line.
var prettyOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

// JSON returns the compact encoding of v with members in input order.
func (v *Value) JSON() []byte {
	return v.appendJSON(nil)
}

// Pretty returns v as multi-line JSON indented by two spaces, without a
// trailing newline.
func (v *Value) Pretty() string {
	out := pretty.PrettyOptions(v.JSON(), prettyOptions)
	return strings.TrimSuffix(string(out), "\n")
}

func (v *Value) appendJSON(dst []byte) []byte {
	switch v.Kind() {
	case Bool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number:
		return append(dst, v.text...)
	case String:
		return appendQuoted(dst, v.text)
	case Array:
		dst = append(dst, '[')
		for i, item := range v.items {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.appendJSON(dst)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		for i, m := range v.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, m.Key)
			dst = append(dst, ':')
			dst = m.Value.appendJSON(dst)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

// appendQuoted appends s as a JSON string literal. Control characters
// without a short escape become \u00XX; everything else is copied as is.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '"':
			dst = append(dst, '\\', c)
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigit(c>>4), hexDigit(c&0x0f))
				continue
			}
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + (v - 10)
}

// Process normalizes and parses raw, then re-serializes the value in pretty
// form.
func Process(raw string, opts *Options) (string, error) {
	v, err := Parse(raw, opts)
	if err != nil {
		return "", err
	}
	return v.Pretty(), nil
}
