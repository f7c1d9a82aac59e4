package jcolor

import (
	"bytes"
	"io"
	"strings"

	"pkt.systems/jpact"
)

// RepairTo normalizes raw, checks that the result is valid JSON and streams
// it compacted to w on a single line, without styling.
func RepairTo(w io.Writer, raw string, opts *Options) error {
	normalized := Normalize(raw, opts)
	if _, err := parseStrict(normalized); err != nil {
		return err
	}
	if err := jpact.CompactWriter(w, strings.NewReader(normalized), 0); err != nil {
		return err
	}
	return writeNewline(w)
}

// Repair returns what RepairTo would write.
func Repair(raw string, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := RepairTo(&buf, raw, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}
