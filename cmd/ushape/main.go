/*
Command ushape shapes text for display on terminals and devices without a
shaping engine of their own.

Text is taken from the command line arguments or, if there are none, line by
line from stdin. Options are preset from the user's locale and may be
overridden by flags:

    ushape -locale ar "سلام"
    ushape -opts 0x100018 < input.txt
    ushape -nobidi -trace D "မြန်မာ"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/ushape"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		gtrace.CoreTracer.Errorf(err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("ushape", flag.ContinueOnError)
	tlevel := flags.String("trace", "E", "Trace level [D|I|E]")
	locale := flags.String("locale", "", "Locale to derive options from (default: user locale)")
	optstr := flags.String("opts", "", "Shaping options as a bitmask, e.g. 0x100008")
	nobidi := flags.Bool("nobidi", false, "Suppress bidi reordering")
	unshape := flags.Bool("unshape", false, "Convert presentation forms back to nominal letters")
	validate := flags.Bool("validate", false, "Fail on options which are not implemented")
	if err := flags.Parse(args); err != nil {
		return err
	}
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*tlevel))
	opts, err := options(*locale, *optstr)
	if err != nil {
		return err
	}
	if *unshape {
		opts = opts&^ushape.LettersMask | ushape.LettersUnshape
	}
	if *nobidi {
		opts &^= ushape.DirectionOutputBidi
	}
	gtrace.CoreTracer.Infof("shaping with options %s", opts)
	if err := ushape.Validate(opts); err != nil {
		if *validate {
			return err
		}
		gtrace.CoreTracer.Infof(err.Error())
	}
	if flags.NArg() > 0 {
		_, err = fmt.Fprintln(stdout, ushape.ShapeString(strings.Join(flags.Args(), " "), opts))
		return err
	}
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if _, err = fmt.Fprintln(stdout, ushape.ShapeString(scanner.Text(), opts)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// options returns an explicit bitmask if given, otherwise the preset for the
// locale or for the user's environment.
func options(locale, optstr string) (ushape.Options, error) {
	if optstr != "" {
		n, err := strconv.ParseUint(optstr, 0, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid option mask %q: %w", optstr, err)
		}
		return ushape.Options(n), nil
	}
	var ctx *ushape.Context
	if locale != "" {
		ctx = ushape.ContextForLocale(locale)
	} else {
		ctx = ushape.ContextFromEnvironment()
	}
	gtrace.CoreTracer.Debugf("context script is %s", ctx.Script)
	return ctx.Options(), nil
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
