package jcolor

import (
	"bytes"
	"errors"
)

// SGR sequences of the default palette.
const (
	sgrReset      = "\x1b[0m"
	sgrGreen      = "\x1b[32m"
	sgrYellow     = "\x1b[33m"
	sgrMagenta    = "\x1b[35m"
	sgrBrightBlue = "\x1b[94m"
)

func wrapSGR(seq, s string) string {
	return seq + s + sgrReset
}

type noByteWriter struct {
	buf bytes.Buffer
}

func (w *noByteWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

type newlineFailWriter struct {
	buf bytes.Buffer
}

func (w *newlineFailWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *newlineFailWriter) WriteByte(_ byte) error {
	return errors.New("newline err")
}
