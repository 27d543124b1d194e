// Package cli is the command tree of the solid binary.
package cli

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sghaida/solid/examples"
	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/internal/logger"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	debug      bool

	cfg config.Config
	log *logger.Logger
}

// Run executes the CLI and returns the process exit code. It exists apart
// from main so tests can drive the CLI without os.Exit.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if a.log != nil {
		a.log.Sync()
	}
	if err != nil {
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "solid",
		Short:        "Run the SOLID example programs",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (optional; overrides SOLID_* environment)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(listCmd(a), runCmd(a))
	return cmd
}

func (a *app) setup() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	if a.configPath != "" {
		if cfg, err = config.LoadFile(a.configPath, cfg); err != nil {
			return err
		}
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With("run_id", uuid.NewString())
	a.log.Debug("config loaded", "env", cfg.Env, "data_dir", cfg.DataDir, "config_file", a.configPath)
	return nil
}

func (a *app) catalog() examples.Options {
	return examples.Options{
		DataDir:     a.cfg.DataDir,
		RedisAddr:   a.cfg.RedisAddr,
		PostgresDSN: a.cfg.PostgresDSN,
		Log:         a.log,
	}
}
