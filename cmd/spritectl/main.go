// Command spritectl inspects and batch-edits spritesheet images.
//
// Usage:
//
//	spritectl [-v] <command> [flags] <file>
//
// Commands:
//
//	new      create a blank sheet
//	info     print sheet and sprite sizes
//	reduce   reduce the number of colors
//	flip     mirror every sprite
//	rotate   rotate every sprite by quarter turns
//	gif      export the sprites as an animated GIF
//	palette  list stored palettes
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"go.uber.org/zap"

	"github.com/gogpu/sprite"
)

var errUsage = errors.New("usage")

type command struct {
	name  string
	usage string
	run   func(l *zap.Logger, args []string) error
}

var commands = []command{
	{"new", "new [-sprite WxH] [-cells CxR] file", runNew},
	{"info", "info file", runInfo},
	{"reduce", "reduce [-k n] [-metric rgb|hsb] [-o out] file", runReduce},
	{"flip", "flip [-updown] [-o out] file", runFlip},
	{"rotate", "rotate [-turns n] [-o out] file", runRotate},
	{"gif", "gif [-fps n] [-scale n] [-skip-blank] [-o out.gif] file", runGIF},
	{"palette", "palette [-memory path]", runPalette},
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = usage
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	if *verbose {
		sprite.SetLogger(slog.Default())
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(l, args); err != nil {
			if errors.Is(err, errUsage) {
				fmt.Fprintf(os.Stderr, "usage: spritectl %s\n", c.usage)
				os.Exit(2)
			}
			l.Fatal(name, zap.Error(err))
		}
		return
	}
	fmt.Fprintf(os.Stderr, "spritectl: unknown command %q\n", name)
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: spritectl [-v] <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %s\n", c.usage)
	}
}
