// Command dxdemo runs the DxLib demo scenes through the tdx registry.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/tinyrange/dxbridge/internal/assets"
	"github.com/tinyrange/dxbridge/internal/config"
	"github.com/tinyrange/dxbridge/internal/dx"
	"github.com/tinyrange/dxbridge/internal/dx/headless"
	"github.com/tinyrange/dxbridge/internal/dx/native"
	"github.com/tinyrange/dxbridge/internal/tdx"
)

// DxLib must be driven from the thread that initialised it.
func init() { runtime.LockOSThread() }

// headlessFrames bounds a headless run when the config leaves frames at zero.
const headlessFrames = 120

type options struct {
	configPath  string
	headless    bool
	assets      string
	frames      int
	scene       string
	writeConfig string
	timeslice   string
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "YAML or TOML config file")
	fs.BoolVar(&opts.headless, "headless", false, "Use the recording backend instead of DxLib")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.StringVar(&opts.assets, "assets", "", "Override the asset directory")
	fs.IntVar(&opts.frames, "frames", -1, "Override the number of frames to run (0 runs until closed)")
	fs.StringVar(&opts.scene, "scene", "dum", "Scene to run: "+strings.Join(sceneNames(), ", "))
	fs.StringVar(&opts.writeConfig, "write-config", "", "Write the effective config to this file and exit")
	fs.StringVar(&opts.timeslice, "timeslice", "", "Record frame timings to this file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, os.Stdout, opts); err != nil {
		log.Error("dxdemo failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if opts.assets != "" {
		cfg.AssetDir = opts.assets
	}
	if opts.frames >= 0 {
		cfg.Frames = opts.frames
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, log *slog.Logger, out io.Writer, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.writeConfig != "" {
		if err := config.WriteFile(opts.writeConfig, cfg); err != nil {
			return err
		}
		log.Info("wrote config", "path", opts.writeConfig)
		return nil
	}

	sc, ok := scenes[opts.scene]
	if !ok {
		return fmt.Errorf("unknown scene %q (have %s)", opts.scene, strings.Join(sceneNames(), ", "))
	}

	var (
		b     dx.Backend
		asset func(string) string
	)
	if opts.headless {
		if cfg.Frames == 0 {
			cfg.Frames = headlessFrames
		}
		b = headless.New(headless.Options{
			Assets: headlessAssets(log, cfg.AssetDir),
			Logger: log,
		})
		asset = func(name string) string { return name }
	} else {
		nopts := cfg.NativeOptions()
		nopts.Logger = log
		if b, err = native.Open(nopts); err != nil {
			if errors.Is(err, native.ErrUnsupported) {
				return fmt.Errorf("%w (try -headless)", err)
			}
			return err
		}
		asset = cfg.Path
	}

	topts := cfg.TdxOptions()
	topts.Logger = log
	t, err := tdx.New(b, topts)
	if err != nil {
		return err
	}

	prof, err := startProfile(opts.timeslice)
	if err != nil {
		t.Close()
		return err
	}

	a := &app{t: t, cfg: cfg, log: log, out: out, asset: asset, prof: prof}
	runErr := sc(ctx, a)
	if err := t.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if err := prof.close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// headlessAssets serves dir, or the embedded stand-in images when dir does
// not exist.
func headlessAssets(log *slog.Logger, dir string) fs.FS {
	if st, err := os.Stat(dir); err == nil && st.IsDir() {
		return os.DirFS(dir)
	}
	log.Info("asset directory missing, using embedded images", "dir", dir)
	return assets.Demo()
}
