// Package cli defines the wpkit command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/myrinnew/wpkit/internal/config"
	"github.com/myrinnew/wpkit/internal/logger"
	"github.com/myrinnew/wpkit/internal/tui"
	"github.com/myrinnew/wpkit/internal/wpapi"
)

// Execute runs the root command.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "wpkit",
		Short:         "wpkit — client tools for a WordPress-style blogging service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newCookiesCmd(&debug))
	cmd.AddCommand(newPlansCmd(&debug))
	cmd.AddCommand(newShareCmd(&debug))
	return cmd
}

// setup loads config, wires the logger and returns screen dependencies plus a
// cleanup func.
func setup(debug bool) (tui.Deps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return tui.Deps{}, nil, err
	}

	cleanupLog, _ := logger.Setup(logger.Config{DataDir: cfg.Data.Dir, Debug: debug})
	cleanup := func() {
		if cleanupLog != nil {
			_ = cleanupLog()
		}
	}

	token, err := wpapi.ResolveToken()
	if err != nil {
		cleanup()
		return tui.Deps{}, nil, err
	}

	deps := tui.Deps{
		API:    wpapi.New(cfg.API.BaseURL, wpapi.WithToken(token), wpapi.WithLogger(logger.L())),
		Cfg:    cfg,
		Logger: logger.L(),
	}
	return deps, cleanup, nil
}
