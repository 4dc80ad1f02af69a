package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/editor"
	"github.com/gogpu/sprite/imageio"
	"github.com/gogpu/sprite/palette"
)

// dimFlag parses "WxH".
type dimFlag struct{ image.Point }

func (d *dimFlag) String() string { return fmt.Sprintf("%dx%d", d.X, d.Y) }

func (d *dimFlag) Set(s string) error {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return fmt.Errorf("want WxH, got %q", s)
	}
	if _, err := fmt.Sscan(w, &d.X); err != nil {
		return err
	}
	if _, err := fmt.Sscan(h, &d.Y); err != nil {
		return err
	}
	return nil
}

// parse parses args and returns the single positional file argument.
func parse(fs *flag.FlagSet, args []string) (string, error) {
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return "", errUsage
	}
	if fs.NArg() != 1 {
		return "", errUsage
	}
	return fs.Arg(0), nil
}

func runNew(l *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	spriteDim := dimFlag{image.Pt(16, 16)}
	cells := dimFlag{image.Pt(4, 1)}
	fs.Var(&spriteDim, "sprite", "sprite size")
	fs.Var(&cells, "cells", "sprites per row and column")
	path, err := parse(fs, args)
	if err != nil {
		return err
	}

	s, err := sprite.NewSpritesheet(spriteDim.Point, cells.Point)
	if err != nil {
		return err
	}
	if err := imageio.SaveSpritesheet(s, path); err != nil {
		return err
	}
	l.Info("created", zap.String("path", path), zap.Stringer("sprite", &spriteDim), zap.Stringer("cells", &cells))
	return nil
}

func runInfo(_ *zap.Logger, args []string) error {
	path, err := parse(flag.NewFlagSet("info", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	s, err := imageio.LoadSpritesheet(path)
	if err != nil {
		return err
	}
	_, signed := sprite.ReadSignature(s.Layer)
	blank := 0
	for _, cell := range s.All() {
		if !cell.HasVisibleContent() {
			blank++
		}
	}
	fmt.Printf("%s\n  size    %v\n  sprite  %v (signature %v)\n  grid    %v\n  sprites %d (%d blank)\n",
		s.Name(), s.Size(), s.SpriteDim(), signed, s.GridSize(), s.Len(), blank)
	return nil
}

// openEditor loads path into a new editor.
func openEditor(path string) (*editor.Editor, error) {
	s, err := imageio.LoadSpritesheet(path)
	if err != nil {
		return nil, err
	}
	e := editor.New(editor.WithHistoryLimit(1))
	e.OpenSheet(s)
	return e, nil
}

// eachSprite runs fn with every sprite of the editor's sheet in view.
func eachSprite(e *editor.Editor, fn func()) error {
	for p := range e.Sheet().All() {
		if err := e.ViewSprite(p); err != nil {
			return err
		}
		fn()
	}
	return nil
}

func output(o, in string) string {
	if o != "" {
		return o
	}
	return in
}

func runReduce(l *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("reduce", flag.ContinueOnError)
	k := fs.Int("k", 16, "number of colors")
	metric := fs.String("metric", "rgb", "distance metric: rgb or hsb")
	out := fs.String("o", "", "output file (default: overwrite input)")
	path, err := parse(fs, args)
	if err != nil {
		return err
	}

	m := sprite.MetricRGB
	switch strings.ToLower(*metric) {
	case "rgb":
	case "hsb", "hsv":
		m = sprite.MetricHSB
	default:
		return fmt.Errorf("unknown metric %q", *metric)
	}

	e, err := openEditor(path)
	if err != nil {
		return err
	}
	// Reduce the whole sheet as one sprite so every sprite shares the colors.
	sheet := e.Sheet()
	dim := sheet.SpriteDim()
	if err := e.SetSpriteDim(sheet.Size()); err != nil {
		return err
	}
	if err := e.ReduceColors(*k, m, false); err != nil {
		return err
	}
	if err := e.SetSpriteDim(dim); err != nil {
		return err
	}
	if err := imageio.SaveSpritesheet(sheet, output(*out, path)); err != nil {
		return err
	}
	l.Info("reduced", zap.String("path", output(*out, path)), zap.Int("k", *k), zap.Stringer("metric", m))
	return nil
}

func runFlip(l *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("flip", flag.ContinueOnError)
	upDown := fs.Bool("updown", false, "mirror top to bottom instead of left to right")
	out := fs.String("o", "", "output file (default: overwrite input)")
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	e, err := openEditor(path)
	if err != nil {
		return err
	}
	if err := eachSprite(e, func() {
		e.Reflect(*upDown)
		e.Drop()
	}); err != nil {
		return err
	}
	if err := imageio.SaveSpritesheet(e.Sheet(), output(*out, path)); err != nil {
		return err
	}
	l.Info("flipped", zap.String("path", output(*out, path)), zap.Bool("updown", *upDown))
	return nil
}

func runRotate(l *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("rotate", flag.ContinueOnError)
	turns := fs.Int("turns", 1, "clockwise quarter turns, negative for counterclockwise")
	out := fs.String("o", "", "output file (default: overwrite input)")
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	e, err := openEditor(path)
	if err != nil {
		return err
	}
	if err := eachSprite(e, func() {
		e.Rotate(*turns)
		e.Drop()
	}); err != nil {
		return err
	}
	if err := imageio.SaveSpritesheet(e.Sheet(), output(*out, path)); err != nil {
		return err
	}
	l.Info("rotated", zap.String("path", output(*out, path)), zap.Int("turns", *turns))
	return nil
}

func runGIF(l *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("gif", flag.ContinueOnError)
	fps := fs.Int("fps", editor.DefaultFPS, "frames per second")
	scale := fs.Float64("scale", 1, "scale factor")
	skipBlank := fs.Bool("skip-blank", true, "leave out fully transparent sprites")
	out := fs.String("o", "", "output file (default: input with .gif extension)")
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	if *out == "" {
		*out = strings.TrimSuffix(path, filepath.Ext(path)) + ".gif"
	}

	e, err := openEditor(path)
	if err != nil {
		return err
	}
	e.SetFPS(*fps)
	frames, err := e.Frames(*scale, *scale, *skipBlank)
	if err != nil {
		return err
	}
	if err := imageio.SaveGIF(*out, frames, e.Delay()); err != nil {
		return err
	}
	l.Info("exported", zap.String("path", *out), zap.Int("frames", len(frames)), zap.Duration("delay", e.Delay()))
	return nil
}

func runPalette(_ *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("palette", flag.ContinueOnError)
	memPath := fs.String("memory", "", "palette memory file (default: user config dir)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	path := *memPath
	if path == "" {
		var err error
		if path, err = palette.DefaultPath(); err != nil {
			return err
		}
	}
	m, err := palette.Load(path)
	if err != nil {
		return err
	}
	if len(m.Palettes) == 0 {
		fmt.Println("no palettes stored in", path)
		return nil
	}
	for i, p := range m.Palettes {
		mark := " "
		if i == m.Active {
			mark = "*"
		}
		fmt.Printf("%s %-24s %dx%d\n", mark, p.Name, p.Rows(), p.Cols())
	}
	return nil
}
