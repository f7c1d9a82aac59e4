package jcolor

import "errors"

var (
	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("invalid JSON after normalization")
	// ErrUnknownColorMode is returned for a colour mode outside ColorModes.
	ErrUnknownColorMode = errors.New("unknown color mode")
)

// ParseError reports that the normalized input is not well-formed JSON.
// Error returns the parser's diagnostic unchanged.
type ParseError struct {
	// Input is the normalized text handed to the parser.
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return ErrParse.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
