// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors
// CLI shape grounded in minlz's cmd/mz (flag.NewFlagSet, custom Usage,
// explicit exit codes) and spec.md §6.

// Command pack compresses a single file into a phyzip archive.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dzyubak/phyzip/archive"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	level := fs.Int("level", 1, "compression level 1-9 (1 is fastest, default)")
	showVersion := fs.Bool("version", false, "print version and exit")
	fs.BoolVar(showVersion, "v", false, "print version and exit (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: pack [options] <input-file> <output-file>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Println("pack version " + version)
		return 0
	}

	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return 2
	}

	if *level < 1 || *level > 9 {
		fmt.Fprintln(os.Stderr, "pack: -level must be between 1 and 9")
		return 2
	}

	if err := archive.Pack(rest[0], rest[1], &archive.PackOptions{Level: *level}); err != nil {
		fmt.Fprintf(os.Stderr, "pack: %v\n", err)
		return 1
	}

	return 0
}
