package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fchimpan/kusa-blocks/internal/config"
	"github.com/fchimpan/kusa-blocks/internal/tui"
)

type Deps struct {
	RunTUI func(ctx context.Context, cfg config.Config, seed uint64) (tui.Result, error)
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		RunTUI: defaultRunTUI,
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	c := &cobra.Command{
		Use:          "kusa-blocks",
		Short:        "Play a falling-block puzzle in your terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			seed := cfg.Seed
			if seed == 0 {
				seed = uint64(deps.Now().UnixNano())
			}
			return run(cmd.Context(), deps, cfg, seed)
		},
	}

	f := c.Flags()
	f.Float64P(config.KeySpeed, "s", 1.0, "game speed multiplier (1.0 is normal)")
	f.Uint64(config.KeySeed, 0, "piece sequence seed (0 picks one from the clock)")
	f.Bool(config.KeyDebug, false, "write a debug log while playing")
	f.String(config.KeyLogFile, config.DefaultLogFile, "debug log path (used with --debug)")
	f.String(config.KeyConfig, "", "config file (yaml, toml or json)")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
