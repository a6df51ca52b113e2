package cmd

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/circletimer/pkg/animation"
	"github.com/go-drift/circletimer/pkg/circletimer"
	"github.com/go-drift/circletimer/pkg/errors"
	"github.com/go-drift/circletimer/pkg/graphics"
	"github.com/go-drift/circletimer/pkg/graphics/raster"
	"github.com/go-drift/circletimer/pkg/screen"
)

func TestTakeValue(t *testing.T) {
	args := []string{"--size", "40", "--out=a.png", "--at"}

	v, n, ok, err := takeValue(args, 0, "--size")
	if v != "40" || n != 2 || !ok || err != nil {
		t.Errorf("separate value: %q %d %v %v", v, n, ok, err)
	}
	v, n, ok, err = takeValue(args, 2, "--out")
	if v != "a.png" || n != 1 || !ok || err != nil {
		t.Errorf("joined value: %q %d %v %v", v, n, ok, err)
	}
	if _, _, ok, _ = takeValue(args, 2, "--size"); ok {
		t.Error("matched the wrong flag")
	}
	if _, _, ok, err = takeValue(args, 3, "--at"); !ok || err == nil {
		t.Error("expected missing value error")
	}
}

func TestParseRunArgs(t *testing.T) {
	opts, err := parseRunArgs([]string{"--size=64", "--snapshots", "out"})
	if err != nil {
		t.Fatalf("parseRunArgs: %v", err)
	}
	if opts.size != 64 || opts.snapshotsDir != "out" {
		t.Errorf("opts = %+v", opts)
	}

	for _, args := range [][]string{{"--size", "0"}, {"--size", "big"}, {"extra"}} {
		if _, err := parseRunArgs(args); err == nil {
			t.Errorf("parseRunArgs(%v) succeeded", args)
		}
	}
}

func TestParseRenderArgs(t *testing.T) {
	opts, err := parseRenderArgs([]string{
		"--duration", "4", "--at=1.5", "--strategy", "Stroke", "--scale", "2", "--out", "t.png",
	})
	if err != nil {
		t.Fatalf("parseRenderArgs: %v", err)
	}
	want := renderOptions{
		duration: 4 * time.Second,
		started:  true,
		at:       1500 * time.Millisecond,
		strategy: "stroke",
		scale:    2,
		out:      "t.png",
	}
	if opts != want {
		t.Errorf("opts = %+v, want %+v", opts, want)
	}

	bad := [][]string{
		{"--duration", "-1"},
		{"--strategy", "wipe"},
		{"--scale", "0"},
		{"--filled", "--duration", "1"},
		{"--bogus"},
	}
	for _, args := range bad {
		if _, err := parseRenderArgs(args); err == nil {
			t.Errorf("parseRenderArgs(%v) succeeded", args)
		}
	}
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		remaining float64
		want      string
	}{
		{1, "[##########] 100%"},
		{0.5, "[#####.....]  50%"},
		{0, "[..........]   0%"},
		{-1, "[..........]   0%"},
	}
	for _, tt := range tests {
		if got := renderBar(tt.remaining, 10); got != tt.want {
			t.Errorf("renderBar(%v) = %q, want %q", tt.remaining, got, tt.want)
		}
	}
}

func TestProgressBar_DisabledWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bar")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	bar := newProgressBar(f)
	bar.draw(0.5)
	bar.clear()

	info, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("wrote %d bytes to a regular file", info.Size())
	}
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img
}

func TestRenderTimer(t *testing.T) {
	style := circletimer.DefaultStyle()
	style.FillColor = graphics.ColorRed

	var buf bytes.Buffer
	opts := renderOptions{duration: 4 * time.Second, started: true, at: time.Second, scale: 1}
	if err := renderTimer(&buf, style, 100, opts); err != nil {
		t.Fatalf("renderTimer: %v", err)
	}
	img := decodePNG(t, buf.Bytes())
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("bounds = %v", b)
	}
	// A quarter of the way in, the top-right quadrant is gone.
	if r, g, b, _ := img.At(32, 68).RGBA(); r>>8 < 250 || g>>8 > 5 || b>>8 > 5 {
		t.Errorf("bottom-left = %v, want red", img.At(32, 68))
	}
	if r, _, _, _ := img.At(68, 32).RGBA(); r>>8 != 0xAA {
		t.Errorf("top-right = %v, want background", img.At(68, 32))
	}
}

func TestRenderTimer_Scale(t *testing.T) {
	var buf bytes.Buffer
	opts := renderOptions{filled: true, scale: 2}
	if err := renderTimer(&buf, circletimer.DefaultStyle(), 50, opts); err != nil {
		t.Fatalf("renderTimer: %v", err)
	}
	if b := decodePNG(t, buf.Bytes()).Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("bounds = %v, want 100x100", b)
	}
}

func TestFrameLoop_ExitsWhenInputEndsAndTimerIdle(t *testing.T) {
	scheduler := animation.NewScheduler(nil)
	timer := circletimer.New(
		circletimer.WithBounds(graphics.Size{Width: 20, Height: 20}),
		circletimer.WithScheduler(scheduler),
	)
	loop := &frameLoop{
		title:     "test",
		screen:    screen.New(timer, scheduler),
		canvas:    raster.NewCanvas(20, 20),
		interval:  time.Millisecond,
		bar:       &progressBar{},
		snapshots: make(chan *image.RGBA, 1),
		saveShots: true,
	}
	timer.OnComplete(func() { loop.completed = true })

	lines := make(chan string, 2)
	lines <- "nope"
	lines <- "0"
	close(lines)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := loop.run(ctx, lines); err != nil {
		t.Fatalf("run: %v", err)
	}
	select {
	case img := <-loop.snapshots:
		if img.Bounds().Dx() != 20 {
			t.Errorf("snapshot bounds = %v", img.Bounds())
		}
	default:
		t.Error("expected a snapshot of the finished timer")
	}
}

func TestWriteSnapshots(t *testing.T) {
	dir := t.TempDir()
	in := make(chan *image.RGBA, 2)
	in <- image.NewRGBA(image.Rect(0, 0, 4, 4))
	in <- image.NewRGBA(image.Rect(0, 0, 4, 4))
	close(in)

	if err := writeSnapshots(dir, in); err != nil {
		t.Fatalf("writeSnapshots: %v", err)
	}
	for _, name := range []string{"timer-001.png", "timer-002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	in = make(chan *image.RGBA, 1)
	in <- image.NewRGBA(image.Rect(0, 0, 1, 1))
	close(in)
	err := writeSnapshots(filepath.Join(dir, "missing"), in)
	if err == nil || !strings.Contains(err.Error(), "failed to create") {
		t.Errorf("err = %v, want create failure", err)
	}
}

func TestReadLines(t *testing.T) {
	out := make(chan string)
	go readLines(context.Background(), strings.NewReader("1\n2.5\n"), out)

	var got []string
	for line := range out {
		got = append(got, line)
	}
	if len(got) != 2 || got[0] != "1" || got[1] != "2.5" {
		t.Errorf("lines = %q", got)
	}
}

func TestReadLines_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Nobody receives from out, as after the frame loop has exited.
	out := make(chan string)
	done := make(chan struct{})
	go func() {
		readLines(ctx, strings.NewReader("1\n2\n3\n"), out)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("readLines still blocked after cancellation")
	}
	if _, ok := <-out; ok {
		t.Error("out should be closed")
	}
}

func TestLoadConfig_StyleFileReplacesConfigStyle(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "circletimer.yaml")
	stylePath := filepath.Join(dir, "red.toml")
	if err := os.WriteFile(cfgPath, []byte("size: 64\nstyle:\n  fill_color: \"#FF00FF00\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stylePath, []byte("use_mask = false\nfill_color = \"#FF3366CC\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prev := globals
	t.Cleanup(func() { globals = prev })
	defer errors.SetHandler(errors.SetHandler(nil))
	globals = globalOptions{configPath: cfgPath, stylePath: stylePath}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Size != 64 {
		t.Errorf("size = %v, want the config value", cfg.Size)
	}
	if cfg.Style.UseMask || cfg.Style.FillColor != graphics.Color(0xFF3366CC) {
		t.Errorf("style = %+v, want the style file", cfg.Style)
	}
	if cfg.Style.BorderColor != circletimer.DefaultStyle().BorderColor {
		t.Errorf("border = %v, want the default", cfg.Style.BorderColor)
	}

	globals.stylePath = filepath.Join(dir, "missing.yaml")
	if _, err := loadConfig(); err == nil {
		t.Error("a missing style file should fail")
	}
}
