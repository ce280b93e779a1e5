package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/leofk/algorithm-2/frontier"
	"github.com/leofk/algorithm-2/hsla"
	"github.com/leofk/algorithm-2/picker"
)

// envPrefix prefixes every environment override, e.g. FLOODFILL_TOL.
const envPrefix = "FLOODFILL_"

// errUnknownMode is returned for a -mode outside solid|grid|gradient|rainbow.
var errUnknownMode = errors.New("floodfill: unknown mode")

// config is everything one run needs.
type config struct {
	In, Out, PNG string
	X, Y         int
	Mode         string
	Order        string
	Tolerance    float64
	Freq         int
	Color        string
	Color2       string
	Spacing      int
	Radius       int
	RainFreq     float64
	Delay        int
	Scale        int
	Verbose      bool
}

// defaultConfig reproduces the classic demo: a red-to-blue gradient DFS fill
// from (50,50) with tolerance 0.02, a frame every 100 pixels, radius 70.
func defaultConfig() config {
	return config{
		In:        "originals/test.png",
		Out:       "images/test.gif",
		X:         50,
		Y:         50,
		Mode:      "gradient",
		Order:     "dfs",
		Tolerance: 0.02,
		Freq:      100,
		Color:     "0,1,0.5",
		Color2:    "200,1,0.5",
		Spacing:   10,
		Radius:    70,
		RainFreq:  0.002,
		Delay:     10,
		Scale:     1,
	}
}

// applyEnv overrides cfg from FLOODFILL_* variables read through getenv.
func applyEnv(cfg *config, getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(envPrefix + key); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v := getenv(envPrefix + key)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("floodfill: %s%s=%q: %w", envPrefix, key, v, err)
		}
		*dst = n
		return nil
	}
	dec := func(key string, dst *float64) error {
		v := getenv(envPrefix + key)
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("floodfill: %s%s=%q: %w", envPrefix, key, v, err)
		}
		*dst = f
		return nil
	}

	str("IN", &cfg.In)
	str("OUT", &cfg.Out)
	str("PNG", &cfg.PNG)
	str("MODE", &cfg.Mode)
	str("ORDER", &cfg.Order)
	str("COLOR", &cfg.Color)
	str("COLOR2", &cfg.Color2)
	for _, e := range []struct {
		key string
		dst *int
	}{
		{"X", &cfg.X}, {"Y", &cfg.Y}, {"FREQ", &cfg.Freq}, {"SPACING", &cfg.Spacing},
		{"RADIUS", &cfg.Radius}, {"DELAY", &cfg.Delay}, {"SCALE", &cfg.Scale},
	} {
		if err := num(e.key, e.dst); err != nil {
			return err
		}
	}
	if err := dec("TOL", &cfg.Tolerance); err != nil {
		return err
	}
	return dec("RAINFREQ", &cfg.RainFreq)
}

// parseFlags layers command-line flags over base.
func parseFlags(args []string, base config, out io.Writer) (config, error) {
	cfg := base
	fs := flag.NewFlagSet("floodfill", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.In, "in", cfg.In, "input image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output animated GIF")
	fs.StringVar(&cfg.PNG, "png", cfg.PNG, "optional PNG of the final frame")
	fs.IntVar(&cfg.X, "x", cfg.X, "seed x")
	fs.IntVar(&cfg.Y, "y", cfg.Y, "seed y")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "color strategy: solid, grid, gradient, rainbow")
	fs.StringVar(&cfg.Order, "order", cfg.Order, "traversal order: dfs or bfs")
	fs.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "color tolerance from the seed color")
	fs.IntVar(&cfg.Freq, "freq", cfg.Freq, "pixels filled between frames")
	fs.StringVar(&cfg.Color, "color", cfg.Color, `fill / grid / gradient start color ("h,s,l[,a]" or "#rrggbb")`)
	fs.StringVar(&cfg.Color2, "color2", cfg.Color2, "gradient end color")
	fs.IntVar(&cfg.Spacing, "spacing", cfg.Spacing, "grid spacing in pixels")
	fs.IntVar(&cfg.Radius, "radius", cfg.Radius, "gradient radius in pixels")
	fs.Float64Var(&cfg.RainFreq, "rainfreq", cfg.RainFreq, "rainbow hue cycles per pixel")
	fs.IntVar(&cfg.Delay, "delay", cfg.Delay, "GIF frame delay in 1/100 s")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "integer upscale of exported frames")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// ordering resolves the -order flag.
func (c config) ordering() (frontier.Ordering, error) {
	return frontier.ParseOrdering(c.Order)
}

// strategy builds the color picker for a fill seeded at (c.X, c.Y).
func (c config) strategy() (picker.Picker, error) {
	first, err := hsla.Parse(c.Color)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(c.Mode) {
	case "solid":
		return picker.Solid{Color: first}, nil
	case "grid":
		g, err := picker.NewGrid(first, c.Spacing)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "gradient":
		second, err := hsla.Parse(c.Color2)
		if err != nil {
			return nil, err
		}
		return picker.Gradient{From: first, To: second, Radius: float64(c.Radius), Center: image.Pt(c.X, c.Y)}, nil
	case "rainbow":
		return picker.Rainbow{Frequency: c.RainFreq}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownMode, c.Mode)
}
