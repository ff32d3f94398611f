// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/ik5/spirit"
	"github.com/ik5/spirit/audio"
	"github.com/ik5/spirit/catalog"
	"github.com/ik5/spirit/internal/config"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errUsage = errors.New("invalid usage")

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()
	cat := catalog.Default()

	global := flag.NewFlagSet("spirit", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	cfg.RegisterFlags(global)

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			writeUsage(stdout, cat)
			return exitOK
		}
		return report(stderr, usageError("%v", err))
	}

	rest := global.Args()
	if len(rest) == 0 {
		writeUsage(stderr, cat)
		return exitUsage
	}

	name, cmdArgs := rest[0], rest[1:]
	switch name {
	case "help":
		writeUsage(stdout, cat)
		return exitOK
	case "list":
		if err := noArgs(cmdArgs); err != nil {
			return report(stderr, err)
		}
		if err := cat.WriteList(stdout); err != nil {
			return report(stderr, err)
		}
		return exitOK
	case "info":
		return report(stderr, runInfo(stdout, cmdArgs))
	}

	return report(stderr, render(&cfg, cat, name, cmdArgs, stdout, stderr))
}

// render parses the subcommand flags, validates the configuration and runs
// the recipe. Global flags are accepted after the subcommand as well.
// A -h or --help among the arguments prints the usage to stdout.
func render(cfg *config.Config, cat *catalog.Catalog, name string, args []string, stdout, logOut io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.RegisterFlags(fs)

	var action func(*spirit.Generator, []string) error
	if c, ok := findCommand(name); ok {
		action = c.flags(fs)
	} else if _, err := cat.Lookup(name); err == nil {
		action = func(g *spirit.Generator, args []string) error {
			if err := noArgs(args); err != nil {
				return err
			}
			return g.Category(name)
		}
	} else {
		return usageError("unknown command %q, run \"spirit help\"", name)
	}

	positional, err := parseInterspersed(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		writeUsage(stdout, cat)
		return nil
	}
	if err != nil {
		return usageError("%s: %v", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := newLogger(logOut, level)
	defer func() { _ = logger.Sync() }()

	g, err := spirit.New(spirit.Options{
		Audio:     cfg.Audio(),
		OutputDir: cfg.OutputDir,
		Duration:  cfg.Duration,
		Catalog:   cat,
	}, logger)
	if err != nil {
		return err
	}

	return action(g, positional)
}

// parseInterspersed parses flags that may appear between positional
// arguments and returns the positionals in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}

		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}

		positional = append(positional, args[0])
		args = args[1:]
	}
}

// report prints err and maps it to an exit code.
func report(stderr io.Writer, err error) int {
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "spirit: %v\n", err)

	if errors.Is(err, errUsage) || errors.Is(err, audio.ErrInvalidArgument) {
		return exitUsage
	}
	return exitFailure
}

func writeUsage(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "Usage: spirit [global flags] <command> [command flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags (also accepted after the command):")
	fmt.Fprintln(w, "  -o, --output DIR        output directory (default ./output, $SPIRIT_OUTPUT)")
	fmt.Fprintln(w, "  -d, --duration SECONDS  duration of each file (default 60, $SPIRIT_DURATION)")
	fmt.Fprintln(w, "  -s, --sample-rate HZ    44100, 48000, 96000 or 192000 (default 44100, $SPIRIT_SAMPLE_RATE)")
	fmt.Fprintln(w, "  -b, --bit-depth BITS    16, 24 or 32 (default 16, $SPIRIT_BIT_DEPTH)")
	fmt.Fprintln(w, "  -v, --verbose           log every rendered entry ($SPIRIT_LOG_LEVEL)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Catalog commands:")
	for _, c := range cat.Categories() {
		fmt.Fprintf(w, "  %-20s %s\n", c.Command, c.CLIDescription)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Presets and ad hoc commands:")
	for _, c := range presetCommands {
		fmt.Fprintf(w, "  %-20s %s\n", c.name, c.summary)
		if c.args != "" {
			fmt.Fprintf(w, "  %-20s   %s %s\n", "", c.name, c.args)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other commands:")
	fmt.Fprintf(w, "  %-20s %s\n", "list", "List all documented frequencies")
	fmt.Fprintf(w, "  %-20s %s\n", "info FILE.wav", "Print the format, length and peak of a WAV file")
	fmt.Fprintf(w, "  %-20s %s\n", "help", "Show this help")
}
