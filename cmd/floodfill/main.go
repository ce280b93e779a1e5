// Command floodfill decodes an image, flood-fills it from a seed pixel and
// writes the fill animation as a GIF.
//
// Usage:
//
//	floodfill -in originals/test.png -out images/test.gif -x 50 -y 50 \
//	    -mode gradient -order dfs -tol 0.02 -freq 100
//
// Defaults may also come from FLOODFILL_* variables or a .env file in the
// working directory; flags win over both.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/leofk/algorithm-2/animation"
	"github.com/leofk/algorithm-2/fill"
	"github.com/leofk/algorithm-2/raster"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Fatal("loading .env")
	}

	cfg := defaultConfig()
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		logrus.WithError(err).Fatal("reading environment")
	}
	cfg, err := parseFlags(os.Args[1:], cfg, os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
		w := log.WriterLevel(logrus.DebugLevel)
		defer func() { _ = w.Close() }()
		fill.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("floodfill failed")
	}
}

// run performs one decode → fill → export cycle.
func run(cfg config, log logrus.FieldLogger) error {
	img, err := raster.Load(cfg.In)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"in":     cfg.In,
		"width":  img.Width(),
		"height": img.Height(),
	}).Info("image loaded")

	p, err := cfg.strategy()
	if err != nil {
		return err
	}
	ord, err := cfg.ordering()
	if err != nil {
		return err
	}

	anim, err := fill.Fill(img, cfg.X, cfg.Y, p,
		fill.WithOrdering(ord),
		fill.WithTolerance(cfg.Tolerance),
		fill.WithFrameFrequency(cfg.Freq),
	)
	if err != nil {
		return fmt.Errorf("fill at (%d,%d): %w", cfg.X, cfg.Y, err)
	}
	log.WithFields(logrus.Fields{
		"mode":   cfg.Mode,
		"order":  ord.String(),
		"frames": anim.Len(),
	}).Info("fill complete")

	if err := os.MkdirAll(filepath.Dir(cfg.Out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	opts := animation.DefaultGIFOptions()
	opts.Delay = cfg.Delay
	opts.Scale = cfg.Scale
	if err := anim.SaveGIF(cfg.Out, opts); err != nil {
		return err
	}
	log.WithField("out", cfg.Out).Info("animation written")

	if cfg.PNG != "" {
		if err := anim.Last().SavePNG(cfg.PNG); err != nil {
			return err
		}
		log.WithField("png", cfg.PNG).Info("final frame written")
	}
	return nil
}
