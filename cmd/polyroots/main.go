// Command polyroots recovers the polynomial going through the points of
// each test case file, and prints its constant term and its roots.
//
// Usage:
//
//	polyroots [flags] testcase.json...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/shaih/go-polyroots/encoding/testcase"
	"github.com/shaih/go-polyroots/primitives/config"
	"github.com/shaih/go-polyroots/protocols/recovery"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

type options struct {
	configPath    string
	precision     float64
	maxIterations int
	format        string
	plotDir       string
	logLevel      string
	cpuProfile    string
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("polyroots", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: polyroots [flags] testcase.json...\n")
		fs.PrintDefaults()
	}

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "YAML file with precision and max_iterations")
	fs.Float64Var(&opts.precision, "precision", config.DefaultPrecision, "threshold below which a value is zero")
	fs.IntVar(&opts.maxIterations, "max-iterations", config.DefaultMaxIterations, "iteration cap of Newton-Raphson")
	fs.StringVar(&opts.format, "format", "text", "output format: text, json or msgpack")
	fs.StringVar(&opts.plotDir, "plot", "", "directory where a PNG plot is written for each input")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level")
	fs.StringVar(&opts.cpuProfile, "cpuprofile", "", "directory where a CPU profile is written")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(fs.Output(), "invalid log level %q\n", opts.logLevel)
		return 2
	}
	log.SetLevel(level)

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		log.Errorf("%v", err)
		return 2
	}

	if opts.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.cpuProfile), profile.Quiet).Stop()
	}

	status := 0
	for _, path := range fs.Args() {
		if err := process(path, cfg, opts, stdout); err != nil {
			log.WithField("file", path).Errorf("%v", err)
			status = 1
		}
	}
	return status
}

// loadConfig reads the config file if any, then applies the flags that
// were explicitly set on top of it
func loadConfig(fs *flag.FlagSet, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "precision":
			cfg.Precision = opts.precision
		case "max-iterations":
			cfg.MaxIterations = opts.maxIterations
		}
	})
	return cfg, cfg.Validate()
}

func process(path string, cfg config.Config, opts options, stdout io.Writer) error {
	doc, err := testcase.Load(path)
	if err != nil {
		return err
	}
	samples, err := doc.Samples()
	if err != nil {
		return fmt.Errorf("failed to decode points: %w", err)
	}

	res, err := recovery.Run(samples, cfg)
	if err != nil {
		return err
	}

	switch opts.format {
	case "json":
		err = recovery.EncodeJSON(stdout, res)
	case "msgpack":
		err = recovery.EncodeMsgpack(stdout, res)
	case "text":
		err = recovery.WriteText(stdout, filepath.Base(path), res)
		if err == nil {
			_, err = io.WriteString(stdout, "\n")
		}
	default:
		err = fmt.Errorf("unknown format %q", opts.format)
	}
	if err != nil {
		return err
	}

	if opts.plotDir != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
		if err := recovery.Plot(res, filepath.Base(path), filepath.Join(opts.plotDir, name)); err != nil {
			return err
		}
	}
	return nil
}
