// main.go wires up the modclock command-line interface: a root command
// with a serve subcommand for the JSON API and a demo subcommand that
// walks through the engine on the console.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/modclock/modclock/internal/config"
	"github.com/modclock/modclock/internal/server"
	"github.com/modclock/modclock/pkg/pool"
)

var version = "dev" // set by the linker

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "modclock",
		Short:   "Modular arithmetic clock & cipher tool",
		Version: version,
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./modclock.yaml)")
	cmd.AddCommand(newServeCmd(), newDemoCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log := zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().
				Timestamp().
				Str("component", "modclock").
				Logger()

			pl := pool.NewPool(cfg.Workers)
			defer pl.TearDown()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, log, pl).Run(ctx)
		},
	}
}
