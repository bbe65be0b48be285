// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jexplore prints the tree of a JSON document, the way it would be
// shown in an editor's tree view.
//
// Usage:
//
//	jexplore [flags] file
//
// Use "-" as the file name to read standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	maxDepth  = flag.Int("depth", -1, "Maximum depth of expansion (-1 for unlimited)")
	ctype     = flag.String("type", "json", "Content type of the input document")
	colorMode = flag.String("color", "auto", "Colorize output: auto, always, or never")
	showPos   = flag.Bool("pos", false, "Show the source position of each value")
	verbose   = flag.Bool("v", false, "Log diagnostics to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	switch *colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	default:
		fmt.Fprintf(os.Stderr, "Invalid -color mode %q\n", *colorMode)
		os.Exit(2)
	}

	text, err := readInput(flag.Arg(0), os.Stdin)
	if err != nil {
		log.Error("read input", "error", err)
		os.Exit(1)
	}
	cfg := &config{
		Name:        flag.Arg(0),
		ContentType: *ctype,
		MaxDepth:    *maxDepth,
		ShowPos:     *showPos,
		Log:         log,
	}
	if err := run(cfg, os.Stdout, text); err != nil {
		log.Error("render failed", "error", err)
		os.Exit(1)
	}
}

// readInput returns the contents of the named file, or of stdin if name is "-".
func readInput(name string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", name, err)
	}
	return string(data), nil
}
