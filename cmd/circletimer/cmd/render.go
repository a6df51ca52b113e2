package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/circletimer/pkg/animation"
	"github.com/go-drift/circletimer/pkg/circletimer"
	"github.com/go-drift/circletimer/pkg/errors"
	"github.com/go-drift/circletimer/pkg/graphics"
	"github.com/go-drift/circletimer/pkg/graphics/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the timer to a PNG",
		Long: `Render the timer at a moment of a countdown and write it as a PNG.

Without --duration the timer is drawn empty. With --duration it is started
and drawn --at seconds later.

Flags:
  --duration SECONDS   Countdown length
  --at SECONDS         Time since the start (default 0)
  --strategy NAME      Removal strategy: mask or stroke (default from style)
  --filled             Draw the full fill without starting a countdown
  --size N             Widget width and height in pixels (default from config)
  --scale F            Resample the image by F (default 1)
  --out FILE           Output file (default: standard output)

The global --style FILE flag replaces the config's style section; the
--strategy flag still applies on top of it.`,
		Usage: "circletimer render [--duration S] [--at S] [--strategy mask|stroke] [--filled] [--size N] [--scale F] [--out FILE]",
		Run:   runRender,
	})
}

type renderOptions struct {
	duration time.Duration
	started  bool
	at       time.Duration
	strategy string
	filled   bool
	size     float64
	scale    float64
	out      string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{scale: 1}
	seconds := func(name, v string) (time.Duration, error) {
		s, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || s < 0 || math.IsInf(s, 0) || math.IsNaN(s) {
			return 0, fmt.Errorf("%s must be a non-negative number of seconds, got %q", name, v)
		}
		return time.Duration(s * float64(time.Second)), nil
	}
	positive := func(name, v string) (float64, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%s must be a positive number, got %q", name, v)
		}
		return f, nil
	}

	for i := 0; i < len(args); {
		if args[i] == "--filled" {
			opts.filled = true
			i++
			continue
		}
		var (
			v   string
			n   int
			ok  bool
			err error
		)
		for _, name := range []string{"--duration", "--at", "--strategy", "--size", "--scale", "--out"} {
			if v, n, ok, err = takeValue(args, i, name); !ok {
				continue
			}
			if err != nil {
				return opts, err
			}
			switch name {
			case "--duration":
				opts.duration, err = seconds(name, v)
				opts.started = true
			case "--at":
				opts.at, err = seconds(name, v)
			case "--strategy":
				opts.strategy = strings.ToLower(v)
				if opts.strategy != "mask" && opts.strategy != "stroke" {
					err = fmt.Errorf("--strategy must be mask or stroke, got %q", v)
				}
			case "--size":
				opts.size, err = positive(name, v)
			case "--scale":
				opts.scale, err = positive(name, v)
			case "--out":
				opts.out = v
			}
			if err != nil {
				return opts, err
			}
			break
		}
		if !ok {
			return opts, fmt.Errorf("unexpected argument %q", args[i])
		}
		i += n
	}
	if opts.filled && opts.started {
		return opts, fmt.Errorf("--filled and --duration cannot be combined")
	}
	return opts, nil
}

// frozenClock reports a fixed time that render moves by hand.
type frozenClock struct{ now time.Time }

func (c *frozenClock) Now() time.Time { return c.now }

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	style := cfg.Style
	switch opts.strategy {
	case "mask":
		style.UseMask = true
	case "stroke":
		style.UseMask = false
	}
	size := cfg.Size
	if opts.size > 0 {
		size = opts.size
	}

	var out io.Writer = os.Stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", opts.out, err)
		}
		defer f.Close()
		out = f
	}

	if err := renderTimer(out, style, size, opts); err != nil {
		return &errors.TimerError{Op: "cmd.render", Kind: errors.KindRender, Err: err, Source: opts.out}
	}
	return nil
}

// renderTimer draws a timer of the given style and size at the moment
// described by opts and encodes it as a PNG.
func renderTimer(w io.Writer, style circletimer.Style, size float64, opts renderOptions) error {
	clk := &frozenClock{now: time.Unix(0, 0)}
	scheduler := animation.NewScheduler(clk)
	timer := circletimer.New(
		circletimer.WithStyle(style),
		circletimer.WithBounds(graphics.Size{Width: size, Height: size}),
		circletimer.WithScheduler(scheduler),
	)

	switch {
	case opts.started:
		timer.StartTimer(opts.duration)
		clk.now = clk.now.Add(opts.at)
		scheduler.Step()
	case opts.filled:
		timer.DrawFilled()
	}

	px := int(math.Ceil(size))
	canvas := raster.NewCanvas(px, px)
	timer.Paint(canvas)
	return raster.EncodePNG(w, raster.Scale(canvas.Image(), opts.scale))
}
