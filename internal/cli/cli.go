// Package cli implements the spirograph command-line interface.
//
// Without arguments the root command opens a window animating random curves
// that start over once all of them have closed. Three positional arguments
// R, r and l draw that single curve instead. The render subcommand draws
// without a window and writes a PNG.
//
// Settings come from the built-in defaults, an optional TOML file (--config)
// and finally the command-line flags, in that order.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/spirograph/internal/chime"
	"github.com/iburimskiy/spirograph/internal/config"
	"github.com/iburimskiy/spirograph/internal/errors"
	"github.com/iburimskiy/spirograph/internal/game"
	"github.com/iburimskiy/spirograph/internal/spiro"
)

const appName = "spirograph"

// version is set with -ldflags "-X .../internal/cli.version=v1.2.3".
var version = "dev"

// Execute runs the CLI and returns the first command error.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// flags holds the persistent flag values shared by all commands.
type flags struct {
	configPath string
	verbose    bool
	count      int
	seed       uint64
	step       int
}

func newRootCmd() *cobra.Command {
	var f flags
	var cfg config.Config

	root := &cobra.Command{
		Use:   appName + " [R r l]",
		Short: "Draw spirographs",
		Long: `Draws hypotrochoid curves ("spirographs").

With no arguments, random curves are animated together and restarted once all
of them have closed. With R r l, that single curve is drawn in black.

  R: radius of the outer circle
  r: radius of the inner circle
  l: ratio of hole distance to r

Keys: T toggles cursors, Space restarts, S saves a PNG, Esc/Q quits.`,
		Version:      version,
		SilenceUsage: true,
		Args:         curveArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			loaded, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd.Context(), cfg, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "TOML configuration file")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	pf.IntVarP(&f.count, "count", "n", config.CurveCount, "number of animated curves")
	pf.Uint64Var(&f.seed, "seed", 0, "random seed, 0 picks one")
	pf.IntVar(&f.step, "step", config.StepDeg, "degrees advanced per step")

	root.AddCommand(newRenderCmd(&cfg))
	return root
}

// curveArgs accepts either no arguments or exactly R r l.
func curveArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 3 {
		return errors.New(errors.ErrCodeInvalidInput, "expected no arguments or R r l, got %d", len(args))
	}
	return nil
}

// loadConfig layers defaults, the config file and explicitly set flags.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	logger := loggerFromContext(cmd.Context())

	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		logger.Debug("config loaded", "path", f.configPath)
	}

	fl := cmd.Flags()
	if fl.Changed("count") {
		cfg.Animation.Count = f.count
	}
	if fl.Changed("seed") {
		cfg.Animation.Seed = f.seed
	}
	if fl.Changed("step") {
		cfg.Animation.StepDeg = f.step
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newSampler seeds the sampler from the config, or from the clock when the
// seed is 0. The seed is logged so a run can be repeated.
func newSampler(cfg config.Config, logger *log.Logger) *spiro.Sampler {
	seed := cfg.Animation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Debug("sampler seeded", "seed", seed)
	return spiro.NewSeededSampler(seed)
}

func runWindow(ctx context.Context, cfg config.Config, args []string) error {
	logger := loggerFromContext(ctx)
	opts := game.Options{Logger: logger}

	if len(args) == 3 {
		params, err := parseCurveArgs(args)
		if err != nil {
			return err
		}
		opts.Single = &params
		logger.Info("generating spirograph", "R", params.OuterRadius(), "r", params.InnerRadius(), "l", params.HoleRatio())
		return game.Run(cfg, opts)
	}

	opts.Sampler = newSampler(cfg, logger)
	if cfg.Chime.Enabled {
		player, err := chime.New(cfg.Chime, logger)
		if err != nil {
			logger.Warn("chime disabled", "err", err)
		} else {
			defer player.Close()
			opts.Cue = player
		}
	}
	logger.Info("generating spirographs", "curves", cfg.Animation.Count)
	return game.Run(cfg, opts)
}
