// SPDX-License-Identifier: MIT
// Copyright (c) 2026 phyzip authors
// CLI shape grounded in minlz's cmd/mz (flag.NewFlagSet, custom Usage,
// explicit exit codes) and spec.md §6.

// Command unpack extracts a single file from a phyzip archive into the
// current directory.
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
	fs := flag.NewFlagSet("unpack", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	showVersion := fs.Bool("version", false, "print version and exit")
	fs.BoolVar(showVersion, "v", false, "print version and exit (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: unpack <archive-file>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Println("unpack version " + version)
		return 0
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return 2
	}

	if err := archive.Unpack(rest[0]); err != nil {
		fmt.Fprintf(os.Stderr, "unpack: %v\n", err)
		return 1
	}

	return 0
}
