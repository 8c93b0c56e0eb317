package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wbrown/pixscale"
	"github.com/wbrown/pixscale/imageutil"
	"github.com/wbrown/pixscale/xbrz"
)

// errUsage marks command line mistakes, which exit with status 2.
var errUsage = errors.New("usage error")

type options struct {
	workers int
	config  xbrz.Config
	debug   bool
	list    bool
	compare string
	args    []string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.list {
		for _, algo := range pixscale.Algorithms() {
			fmt.Println(algo)
		}
		return
	}

	logger := initLogger(opts.debug)
	if err := run(opts, logger); err != nil {
		logger.WithError(err).Error("pixscale failed")
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	def := xbrz.DefaultConfig()
	opts := &options{}

	fs := flag.NewFlagSet("pixscale", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0),
		"Number of goroutines scaling row slices (xBRZ filters)")
	fs.Float64Var(&opts.config.LuminanceWeight, "luma", def.LuminanceWeight,
		"xBRZ luminance weight in the color distance")
	fs.Float64Var(&opts.config.EqualColorTolerance, "tolerance", def.EqualColorTolerance,
		"xBRZ distance below which two colors count as equal")
	fs.Float64Var(&opts.config.DominantDirectionThreshold, "dominant", def.DominantDirectionThreshold,
		"xBRZ ratio that makes an edge direction dominant")
	fs.Float64Var(&opts.config.SteepDirectionThreshold, "steep", def.SteepDirectionThreshold,
		"xBRZ ratio that makes a line shallow or steep")
	fs.BoolVar(&opts.debug, "debug", false,
		"Enable debug logging")
	fs.BoolVar(&opts.list, "list", false,
		"List the available algorithms and exit")
	fs.StringVar(&opts.compare, "compare", "",
		"Comma separated algorithms to render side by side instead of a single result")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: pixscale [flags] ALGORITHM SOURCE [TARGET]")
		fmt.Fprintln(stderr, "       pixscale [flags] -compare ALGO,ALGO,... SOURCE [TARGET]")
		fmt.Fprintln(stderr, "\nAlgorithms:")
		for _, algo := range pixscale.Algorithms() {
			fmt.Fprintln(stderr, "  "+algo)
		}
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.args = fs.Args()
	return opts, nil
}

// initLogger logs text with full timestamps in debug mode and plain info
// level text otherwise.
func initLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}
	return logger
}

func run(opts *options, logger *logrus.Logger) error {
	if opts.compare != "" {
		if len(opts.args) < 1 || len(opts.args) > 2 {
			return fmt.Errorf("%w: -compare takes SOURCE [TARGET]", errUsage)
		}
		source := opts.args[0]
		target := ""
		if len(opts.args) == 2 {
			target = opts.args[1]
		}
		return runCompare(opts, logger, strings.Split(opts.compare, ","), source, target)
	}

	if len(opts.args) < 2 || len(opts.args) > 3 {
		return fmt.Errorf("%w: expected ALGORITHM SOURCE [TARGET]", errUsage)
	}
	algorithm, source := opts.args[0], opts.args[1]

	target := ""
	if len(opts.args) == 3 {
		target = opts.args[2]
	} else {
		var err error
		if target, err = defaultTarget(source, algorithm); err != nil {
			return err
		}
	}

	f, err := resolveFilter(algorithm, opts.config, opts.workers)
	if err != nil {
		return err
	}
	return scaleFile(f, source, target, logger)
}

// defaultTarget names the output next to source as
// <name>_<algorithm>.<suffix>.
func defaultTarget(source, algorithm string) (string, error) {
	ext := filepath.Ext(source)
	if ext == "" || ext == "." {
		return "", fmt.Errorf("%w: input path %q must have a file suffix", errUsage, source)
	}
	base := strings.TrimSuffix(filepath.Base(source), ext)
	return filepath.Join(filepath.Dir(source), base+"_"+algorithm+ext), nil
}

// resolveFilter looks up name and applies the xBRZ thresholds and worker
// count where the filter uses them.
func resolveFilter(name string, cfg xbrz.Config, workers int) (pixscale.Filter, error) {
	f, err := pixscale.ByName(name)
	if err != nil {
		return nil, err
	}
	opts := []pixscale.XBRZOption{pixscale.WithConfig(cfg), pixscale.WithWorkers(workers)}
	switch f.(type) {
	case *pixscale.XBRZ:
		return pixscale.NewXBRZ(f.Factor(), opts...)
	case *pixscale.XBRZPlus:
		return pixscale.NewXBRZPlus(opts...)
	}
	return f, nil
}

func scaleFile(f pixscale.Filter, source, target string, logger *logrus.Logger) error {
	log := logger.WithFields(logrus.Fields{
		"input":  source,
		"output": target,
		"filter": f.Name(),
		"factor": f.Factor(),
	})
	start := time.Now()

	if strings.EqualFold(filepath.Ext(source), ".gif") {
		log.Debug("Reading animation")
		g, err := imageutil.LoadGIF(source)
		if err != nil {
			return err
		}
		scaled, err := pixscale.ApplyGIF(f, g)
		if err != nil {
			return err
		}
		if err := imageutil.SaveGIF(scaled, target); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"frames":  len(scaled.Image),
			"elapsed": time.Since(start),
		}).Info("Scaled animation")
		return nil
	}

	log.Debug("Reading image")
	img, err := imageutil.LoadImage(source)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":  img.Width(),
		"height": img.Height(),
	}).Debug("Decoded image")

	scaled, err := pixscale.ApplyImage(f, img)
	if err != nil {
		return err
	}
	if err := imageutil.SaveImage(scaled, target); err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Info("Scaled image")
	return nil
}

// runCompare renders source through every named filter and writes the
// results side by side, captioned with the filter names.
func runCompare(opts *options, logger *logrus.Logger, names []string, source, target string) error {
	if target == "" {
		var err error
		if target, err = defaultTarget(source, "compare"); err != nil {
			return err
		}
	}

	img, err := imageutil.LoadImage(source)
	if err != nil {
		return err
	}

	tiles := []imageutil.Tile{{Image: img, Label: "source"}}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := resolveFilter(name, opts.config, opts.workers)
		if err != nil {
			return err
		}
		start := time.Now()
		scaled, err := pixscale.ApplyImage(f, img)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"filter":  f.Name(),
			"elapsed": time.Since(start),
		}).Debug("Rendered tile")
		tiles = append(tiles, imageutil.Tile{Image: scaled, Label: f.Name()})
	}

	sheet, err := imageutil.Sheet(tiles)
	if err != nil {
		return err
	}
	if err := imageutil.SaveImage(sheet, target); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"input":   source,
		"output":  target,
		"filters": len(tiles) - 1,
	}).Info("Wrote comparison sheet")
	return nil
}
