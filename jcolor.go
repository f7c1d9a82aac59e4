package jcolor

import (
	"io"
	"log/slog"
	"os"
)

// Options controls normalization and rendering.
type Options struct {
	// Color is a colour mode name, see ColorModes. Default "always".
	Color string
	// Logger receives debug records for each rewrite rule that matched.
	// Nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions holds the fallback configuration.
var DefaultOptions = &Options{Color: string(ColorAlways)}

var discardLogger = slog.New(slog.DiscardHandler)

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}

// Render runs the whole pipeline on raw: normalize, parse, pretty-print,
// re-parse and colorize. ColorAuto is resolved against os.Stdout.
func Render(raw string, opts *Options) (string, error) {
	return render(raw, opts, os.Stdout)
}

// RenderTo writes the rendering of raw to w followed by a newline. ColorAuto
// is resolved against w.
func RenderTo(w io.Writer, raw string, opts *Options) error {
	out, err := render(raw, opts, w)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	return writeNewline(w)
}

func render(raw string, opts *Options, w io.Writer) (string, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	pal, err := resolvePalette(opts, w)
	if err != nil {
		return "", err
	}
	pretty, err := Process(raw, opts)
	if err != nil {
		return "", err
	}
	opts.logger().Debug("parsed", "bytes", len(pretty))
	return ColorizeJSON(pretty, pal)
}
