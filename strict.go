package jcolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	errInvalidUTF8   = errors.New("invalid UTF-8 in input")
	errLoneSurrogate = errors.New("lone surrogate in \\u escape")
	errNumberRange   = errors.New("number out of range")
)

// checkText rejects what fastjson lets through but strict JSON does not:
// invalid UTF-8 and \u escapes that do not form a complete surrogate pair.
// s must already be syntactically valid JSON.
func checkText(s string) error {
	if !utf8.ValidString(s) {
		return errInvalidUTF8
	}
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !inString {
			if c == '"' {
				inString = true
			}
			continue
		}
		switch c {
		case '"':
			inString = false
		case '\\':
			i++
			if i >= len(s) || s[i] != 'u' {
				continue
			}
			n1, ok := hex4(s, i+1)
			if !ok {
				continue
			}
			start := i - 1
			i += 4
			if !utf16.IsSurrogate(n1) {
				continue
			}
			if n1 > 0xDBFF || i+6 >= len(s) || s[i+1] != '\\' || s[i+2] != 'u' {
				return fmt.Errorf("%w at offset %d", errLoneSurrogate, start)
			}
			n2, ok := hex4(s, i+3)
			if !ok || n2 < 0xDC00 || n2 > 0xDFFF {
				return fmt.Errorf("%w at offset %d", errLoneSurrogate, start)
			}
			i += 6
		}
	}
	return nil
}

func hex4(s string, at int) (rune, bool) {
	if at+4 > len(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s[at:at+4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

// checkNumber rejects numbers whose magnitude does not fit a float64.
func checkNumber(text string) error {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && math.IsInf(f, 0) {
		return fmt.Errorf("%w: %s", errNumberRange, text)
	}
	return nil
}
