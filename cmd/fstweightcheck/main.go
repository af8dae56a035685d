// Command fstweightcheck verifies the semiring laws of the built-in weight
// types with randomly drawn samples and prints PASS on success.
//
//	fstweightcheck [--seed N] [--repeat N] [--delta D] [--mode M]
//	               [--weights a,b] [--parallel N] [-v N] [--config file.yaml]
//
// Flags override the values read from --config.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/wfst/fstlog"
	"github.com/katalvlaran/wfst/weighttest"
)

func newRootCmd(stdout, stderr io.Writer, logOpts ...fstlog.Option) *cobra.Command {
	flagCfg := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "fstweightcheck",
		Short: "Checks the semiring laws of the built-in weight types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			// 1. Assemble the configuration.
			cfg := defaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			overrideFromFlags(cmd, &cfg, flagCfg)
			mode, err := cfg.validate()
			if err != nil {
				return err
			}
			cmd.SilenceErrors = true

			// 2. Run; violations are logged by check.
			opts := append([]fstlog.Option{fstlog.WithOutput(stderr), fstlog.WithVerbosity(cfg.Verbosity)}, logOpts...)
			log := fstlog.New(opts...)
			defer func() { _ = log.Sync() }()

			if err := check(cmd.Context(), cfg, mode, log); err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, "PASS")
			return err
		},
	}
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with defaults for the flags below")
	f.Int64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "random seed (0 selects a fixed default)")
	f.IntVar(&flagCfg.Repeat, "repeat", flagCfg.Repeat, "number of test repetitions")
	f.Float64Var(&flagCfg.Delta, "delta", flagCfg.Delta, "tolerance for approximate equality")
	f.StringVar(&flagCfg.Mode, "mode", flagCfg.Mode, "violation handling: fail-fast, aggregate or fatal")
	f.StringSliceVar(&flagCfg.Weights, "weights", flagCfg.Weights, "weight types to check")
	f.IntVar(&flagCfg.Parallel, "parallel", flagCfg.Parallel, "max concurrent weight types (0 = all)")
	f.IntVarP(&flagCfg.Verbosity, "verbosity", "v", flagCfg.Verbosity, "log detail level")

	return cmd
}

// overrideFromFlags copies explicitly set flags over cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *Config, flags Config) {
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if f.Changed("repeat") {
		cfg.Repeat = flags.Repeat
	}
	if f.Changed("delta") {
		cfg.Delta = flags.Delta
	}
	if f.Changed("mode") {
		cfg.Mode = flags.Mode
	}
	if f.Changed("weights") {
		cfg.Weights = flags.Weights
	}
	if f.Changed("parallel") {
		cfg.Parallel = flags.Parallel
	}
	if f.Changed("verbosity") {
		cfg.Verbosity = flags.Verbosity
	}
}

func check(ctx context.Context, cfg Config, mode weighttest.Mode, log *fstlog.Logger) error {
	log.Info(fmt.Sprintf("Seed = %d", cfg.Seed))
	log.VInfo(1, "checking", zap.Strings("weights", cfg.Weights), zap.Int("repeat", cfg.Repeat), zap.Stringer("mode", mode))

	suites := buildSuites(cfg,
		weighttest.WithDelta(cfg.Delta),
		weighttest.WithMode(mode),
		weighttest.WithLogger(log),
	)
	err := weighttest.RunSuites(ctx, cfg.Parallel, suites...)
	for _, e := range multierr.Errors(err) {
		log.Error(e.Error())
	}

	return err
}

// run executes the command and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, logOpts ...fstlog.Option) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr, logOpts...)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
