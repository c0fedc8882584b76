package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/game"
	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
	ebitenrender "chosenoffset.com/raycaster/internal/render/ebiten"
	"chosenoffset.com/raycaster/internal/render/terminal"
	"chosenoffset.com/raycaster/internal/world/scene"
)

type options struct {
	configPath string
	logLevel   string
}

// parseFlags loads the config file named by -config and applies flag overrides.
func parseFlags(args []string, stderr io.Writer) (*config.Config, options, error) {
	fs := flag.NewFlagSet("raycaster", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", "raycaster.yaml", "YAML config file (missing file means defaults)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	backend := fs.String("backend", "", "host backend: ebiten or terminal")
	control := fs.String("control", "", "control scheme: pointer or motion")
	fov := fs.Int("fov", 0, "number of rays, one per degree")
	walls := fs.Int("walls", -1, "number of random walls")
	noBoundary := fs.Bool("no-boundary", false, "omit the four viewport border walls")
	seed := fs.Int64("seed", 0, "wall generation seed (0 = time based)")
	debug := fs.Bool("debug", false, "show FPS and state overlay")

	if err := fs.Parse(args); err != nil {
		return nil, opts, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, opts, err
	}

	// Flags only override values that were explicitly set.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = config.Backend(*backend)
		case "control":
			cfg.Control = config.ControlScheme(*control)
		case "fov":
			cfg.Rays.FOV = *fov
		case "walls":
			cfg.Walls.Count = *walls
		case "no-boundary":
			cfg.Walls.Boundary = !*noBoundary
		case "seed":
			cfg.Walls.Seed = *seed
		case "debug":
			cfg.Debug = *debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, opts, err
	}
	return cfg, opts, nil
}

func main() {
	cfg, opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := logger.Setup(opts.logLevel, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		logger.Log.WithError(err).Fatal("Raycaster exited with an error")
	}
}

func run(cfg *config.Config) error {
	log := logger.Log.WithFields(logrus.Fields{"component": "main"})

	seed := cfg.Walls.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc := scene.New(rand.New(rand.NewSource(seed)), cfg.Viewport.Width, cfg.Viewport.Height, cfg.Walls.Count, cfg.Walls.Boundary)
	log.WithFields(logrus.Fields{
		"seed":     seed,
		"walls":    len(sc.Walls()),
		"boundary": cfg.Walls.Boundary,
	}).Info("Generated walls")
	for i, w := range sc.Obstacles() {
		log.WithFields(logrus.Fields{
			"wall": i,
			"x1":   w.P1.X,
			"y1":   w.P1.Y,
			"x2":   w.P2.X,
			"y2":   w.P2.Y,
		}).Debug("Wall")
	}

	var (
		engine   render.Engine
		renderer render.Renderer
		input    render.InputManager
	)
	switch cfg.Backend {
	case config.BackendTerminal:
		// The terminal owns the screen, so logs go to a file.
		closeLog, err := logger.ToFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		termInput := terminal.NewInputManager()
		engine = terminal.NewEngine(nil, termInput)
		renderer = terminal.NewRenderer()
		input = termInput
	default:
		engine = ebitenrender.NewEngine()
		renderer = ebitenrender.NewRenderer()
		input = ebitenrender.NewInputManager()
	}

	g := game.NewGame(cfg, sc, renderer, input)
	if clock, ok := engine.(render.Clock); ok {
		g.Clock = clock
	}

	engine.SetWindowSize(cfg.Viewport.Width, cfg.Viewport.Height)
	engine.SetWindowTitle(cfg.Viewport.Title)
	engine.SetWindowResizable(true)

	log.WithFields(logrus.Fields{
		"backend": cfg.Backend,
		"control": cfg.Control,
		"fov":     cfg.Rays.FOV,
	}).Info("Starting raycaster")
	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	log.Info("Raycaster stopped")
	return nil
}
