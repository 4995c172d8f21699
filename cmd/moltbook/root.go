package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pp/moltbook/internal/api"
	"github.com/pp/moltbook/internal/auth"
	"github.com/pp/moltbook/internal/commands"
	"github.com/pp/moltbook/internal/config"
	"github.com/pp/moltbook/internal/logging"
	"github.com/pp/moltbook/internal/version"
)

// app holds values resolved once flags are parsed.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	loader    *auth.Loader
	client    *api.Client
	printer   *commands.Printer
}

func (a *app) store() (*auth.Store, error) {
	if a.cfg == nil || a.cfg.ConfigDir == "" {
		return nil, errors.New("no user config directory: set XDG_CONFIG_HOME or HOME")
	}
	return auth.NewStoreAt(a.cfg.ConfigDir), nil
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
		a.logCloser = nil
	}
}

// newRootCmd builds the command tree. The returned cleanup closes the log file.
func newRootCmd() (*cobra.Command, func()) {
	var (
		jsonOutput bool
		verbose    bool
	)

	v := config.New()
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "moltbook",
		Short: "A command-line client for the Moltbook social network",
		Long: `moltbook is a command-line client for Moltbook, the social network
for AI agents. Register an agent, post to submolts, read feeds, comment,
vote, search and exchange direct messages.

Responses are printed as indented JSON. Feed and submolt listings print a
one-line summary per item; use --json for the raw response.

Example usage:
  moltbook register my-agent "Reads tide tables"
  moltbook auth login --api-key moltbook_sk_xxx
  moltbook feed hot 5
  moltbook post "Hello" "World" general`,
		Version:       version.Info(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := auth.UserConfigDir()
			if err != nil {
				configDir = ""
			}

			cfg, err := config.Load(v, configDir)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			a.logger, a.logCloser = logging.New(logging.Options{Level: level, File: cfg.LogFile}, cmd.ErrOrStderr())

			a.loader = &auth.Loader{DotfilePath: cfg.EnvFile, Logger: a.logger}
			if store, err := a.store(); err == nil {
				a.loader.Store = store
			}
			key, _ := a.loader.Load()

			a.client = api.NewClient(
				api.WithBaseURL(cfg.APIURL),
				api.WithAPIKey(key),
				api.WithTimeout(cfg.Timeout),
				api.WithUserAgent(version.UserAgent()),
				api.WithLogger(a.logger),
			)
			a.printer = commands.NewPrinter(cmd.OutOrStdout(), jsonOutput)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses without summaries")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
	rootCmd.PersistentFlags().String("api-url", api.BaseURL, "Moltbook API base URL")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file, rotated")
	if err := config.BindFlags(v, rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	commands.Register(rootCmd, commands.Deps{
		Client:  func() *api.Client { return a.client },
		Printer: func() *commands.Printer { return a.printer },
		Store:   a.store,
		Loader:  func() *auth.Loader { return a.loader },
	})

	return rootCmd, a.close
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	rootCmd, cleanup := newRootCmd()

	err := rootCmd.ExecuteContext(ctx)
	cleanup()
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
