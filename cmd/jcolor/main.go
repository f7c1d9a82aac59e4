package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"pkt.systems/jcolor"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("jcolor", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	colorMode := fs.String("color", string(jcolor.ColorAlways), "when to colorize output: "+strings.Join(jcolor.ColorModes(), ", "))
	repair := fs.BoolP("repair", "r", false, "print the repaired JSON on one line, without colors")
	debug := fs.BoolP("debug", "d", false, "log rewrite rules to stderr")
	showVersion := fs.BoolP("version", "V", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Processes and colorizes JSON input.\n\nUsage: jcolor [flags] '<json>'\n\nEnclose the JSON in single quotes (' ') so it arrives as one argument.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return exitOK
		}
		return usageError(fs, stderr, err)
	}
	if *showVersion {
		fmt.Fprintf(stdout, "jcolor %s\n", version)
		return exitOK
	}
	if fs.NArg() != 1 {
		return usageError(fs, stderr, fmt.Errorf("expected exactly one JSON argument, got %d", fs.NArg()))
	}
	if _, err := jcolor.ParseColorMode(*colorMode); err != nil {
		return usageError(fs, stderr, err)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	opts := *jcolor.DefaultOptions
	opts.Color = *colorMode
	opts.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	input := fs.Arg(0)
	var err error
	if *repair {
		err = jcolor.RepairTo(stdout, input, &opts)
	} else {
		err = jcolor.RenderTo(stdout, input, &opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error processing JSON: %v\n", err)
		return exitError
	}
	return exitOK
}

func usageError(fs *pflag.FlagSet, stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "jcolor: %v\n\n", err)
	fs.SetOutput(stderr)
	fs.Usage()
	return exitUsage
}
