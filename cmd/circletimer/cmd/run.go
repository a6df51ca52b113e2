package cmd

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"image"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/circletimer/pkg/animation"
	"github.com/go-drift/circletimer/pkg/circletimer"
	"github.com/go-drift/circletimer/pkg/graphics"
	"github.com/go-drift/circletimer/pkg/graphics/raster"
	"github.com/go-drift/circletimer/pkg/screen"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Start timers from typed seconds",
		Long: `Run the timer screen in the terminal.

Each line read from standard input is handled like pressing return in the
screen's text field: a non-negative number of seconds starts the timer,
anything else is ignored. A running timer is superseded by the next valid
line. When standard error is a terminal, a progress bar shows the time
remaining.

The command exits when input ends and no timer is running, or on Ctrl+C.

Flags:
  --size N           Widget width and height in pixels (default from config)
  --snapshots DIR    Write a PNG of the widget to DIR each time a timer ends

The global --style FILE flag replaces the config's style section.`,
		Usage: "circletimer run [--size N] [--snapshots DIR]",
		Run:   runRun,
	})
}

type runOptions struct {
	size         float64
	snapshotsDir string
}

func parseRunArgs(args []string) (runOptions, error) {
	var opts runOptions
	for i := 0; i < len(args); {
		if v, n, ok, err := takeValue(args, i, "--size"); ok {
			if err != nil {
				return opts, err
			}
			size, err := strconv.ParseFloat(v, 64)
			if err != nil || size <= 0 {
				return opts, fmt.Errorf("--size must be a positive number, got %q", v)
			}
			opts.size = size
			i += n
			continue
		}
		if v, n, ok, err := takeValue(args, i, "--snapshots"); ok {
			if err != nil {
				return opts, err
			}
			opts.snapshotsDir = v
			i += n
			continue
		}
		return opts, fmt.Errorf("unexpected argument %q", args[i])
	}
	return opts, nil
}

func runRun(args []string) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	size := cfg.Size
	if opts.size > 0 {
		size = opts.size
	}
	if opts.snapshotsDir != "" {
		if err := os.MkdirAll(opts.snapshotsDir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	scheduler := animation.NewScheduler(nil)
	timer := circletimer.New(
		circletimer.WithStyle(cfg.Style),
		circletimer.WithBounds(graphics.Size{Width: size, Height: size}),
		circletimer.WithScheduler(scheduler),
	)
	scr := screen.New(timer, scheduler)
	scr.Verbose = cfg.Verbose

	px := int(math.Ceil(size))
	loop := &frameLoop{
		title:     cfg.Title,
		screen:    scr,
		canvas:    raster.NewCanvas(px, px),
		interval:  time.Second / time.Duration(cfg.FrameRate),
		bar:       newProgressBar(os.Stderr),
		snapshots: make(chan *image.RGBA, 1),
		saveShots: opts.snapshotsDir != "",
	}
	timer.OnComplete(func() { loop.completed = true })

	log.Printf("%s: %gpx, %s strategy, %d fps", cfg.Title, size, cfg.Style.Strategy(), cfg.FrameRate)
	if cfg.Path != "" {
		log.Printf("config: %s", cfg.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// A read from stdin cannot be interrupted, so the reader stays outside
	// the group. It stops handing over lines once ctx is done.
	lines := make(chan string)
	go readLines(ctx, os.Stdin, lines)

	g.Go(func() error {
		defer close(loop.snapshots)
		return loop.run(ctx, lines)
	})
	g.Go(func() error {
		return writeSnapshots(opts.snapshotsDir, loop.snapshots)
	})

	err = g.Wait()
	if stderrors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func readLines(ctx context.Context, r io.Reader, out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case out <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

type frameLoop struct {
	title     string
	screen    *screen.Screen
	canvas    *raster.Canvas
	interval  time.Duration
	bar       *progressBar
	snapshots chan *image.RGBA
	saveShots bool
	completed bool
}

func (l *frameLoop) run(ctx context.Context, lines <-chan string) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	timer := l.screen.Timer
	inputDone := false
	for {
		select {
		case <-ctx.Done():
			l.bar.clear()
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				// Exit on the next frame once the last timer is done.
				lines = nil
				inputDone = true
				continue
			}
			if l.screen.Submit(line) {
				l.bar.clear()
				log.Printf("%s: started for %ss", l.title, strings.TrimSpace(line))
			}

		case <-ticker.C:
			l.screen.Frame(l.canvas)
			if timer.Running() {
				l.bar.draw(timer.Progress())
			}
			if l.completed {
				l.completed = false
				l.bar.clear()
				log.Printf("%s: time is up", l.title)
				if l.saveShots {
					select {
					case l.snapshots <- cloneImage(l.canvas.Image()):
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
			if inputDone && !timer.Running() {
				return nil
			}
		}
	}
}

func writeSnapshots(dir string, in <-chan *image.RGBA) error {
	n := 0
	for img := range in {
		n++
		path := filepath.Join(dir, fmt.Sprintf("timer-%03d.png", n))
		if err := writePNG(path, img); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := raster.EncodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func cloneImage(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}
