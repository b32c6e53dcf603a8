package main

import (
	"context"
	"errors"
	"fmt"

	"dining-companion/internal/analytics"
	"dining-companion/internal/catalog"
	"dining-companion/internal/config"
	"dining-companion/internal/model"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errOutcome marks a command that printed its own failure message.
var errOutcome = errors.New("request failed")

// cli holds the state shared by every subcommand.
type cli struct {
	cfg      *config.Config
	origin   string
	catalog  string
	logLevel string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	c := &cli{cfg: cfg}

	root := &cobra.Command{
		Use:           "dinectl",
		Short:         "Browse campus dining halls, menus and personalised insights",
		Long:          `dinectl lists dining locations and their menus, and fetches a user's recommendations and dislikes from the analytics backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.origin, "origin", cfg.Analytics.BackendURL, "analytics backend origin (scheme://host[:port])")
	root.PersistentFlags().StringVar(&c.catalog, "catalog", cfg.Catalog.File, "catalogue fixture (.json, .yaml, .yml, optionally .gz); empty uses the built-in campus catalogue")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		c.locationsCmd(),
		c.menuCmd(),
		c.recommendationsCmd(),
		c.dislikesCmd(),
	)

	return root
}

func (c *cli) logger(cmd *cobra.Command) zerolog.Logger {
	return config.NewLoggerWithWriter(config.LoggerConfig{Level: c.logLevel, Format: "console"}, cmd.ErrOrStderr())
}

func (c *cli) locations(cmd *cobra.Command) ([]model.DiningLocation, error) {
	locations, err := catalog.Load(commandContext(cmd), c.catalog, c.cfg.S3, c.logger(cmd))
	if err != nil {
		cmd.PrintErrln("Error:", err)
		return nil, errOutcome
	}
	return locations, nil
}

func (c *cli) client(cmd *cobra.Command) (*analytics.Client, error) {
	client, err := analytics.NewClient(
		c.origin,
		c.logger(cmd),
		analytics.WithTunnelSignatures(c.cfg.Analytics.TunnelSignatures...),
	)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		return nil, errOutcome
	}
	return client, nil
}

// report prints the failure message for a non-OK result.
func report[T any](cmd *cobra.Command, result analytics.Result[T]) error {
	cmd.PrintErrln(result.Message())
	if result.Kind == analytics.KindTunnelInterstitial {
		var tunnelErr *analytics.TunnelInterstitialError
		if errors.As(result.Err, &tunnelErr) && tunnelErr.Origin != "" {
			cmd.PrintErrln("Backend URL:", tunnelErr.Origin)
		}
	}
	return fmt.Errorf("%w: %s", errOutcome, result.Kind)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
