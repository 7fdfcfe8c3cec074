package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dms/internal/client"
	"dms/internal/config"
	"dms/internal/tui"
)

type rootOptions struct {
	Server        string
	Source        string
	Timeout       time.Duration
	LogDir        string
	LogMaxFiles   int
	PortalBaseURL string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "dms",
		Short:         "Browse document types, designs and design versions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, logger, cleanup, err := opts.setup()
			if err != nil {
				return err
			}
			defer cleanup()

			logger.Info("terminal browser starting", "server", opts.Server, "source", opts.Source)
			model := tui.New(cmd.Context(), &loggingFetcher{next: c, logger: logger}, opts.PortalBaseURL)
			if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Server, "server", envOr("DMS_SERVER", "http://localhost:8080"), "server base URL")
	flags.StringVar(&opts.Source, "source", string(client.SourceProxy), "route family for types and designs (proxy|mock)")
	flags.DurationVar(&opts.Timeout, "timeout", client.DefaultTimeout, "HTTP timeout per request")
	flags.StringVar(&opts.LogDir, "log-dir", "", "write JSON logs to timestamped files in this directory")
	flags.IntVar(&opts.LogMaxFiles, "log-max-files", 10, "log files to keep in --log-dir")
	flags.StringVar(&opts.PortalBaseURL, "portal", "", "portal base URL for sidebar links")

	cmd.AddCommand(newPingCmd(&opts))
	cmd.AddCommand(newTypesCmd(&opts))
	cmd.AddCommand(newDesignsCmd(&opts))
	cmd.AddCommand(newVersionsCmd(&opts))
	return cmd
}

// setup builds the API client and the logger. The logger discards output
// unless --log-dir is set, so the terminal stays clean.
func (o *rootOptions) setup() (*client.Client, *slog.Logger, func(), error) {
	source := client.Source(o.Source)
	if source != client.SourceProxy && source != client.SourceMock {
		return nil, nil, nil, fmt.Errorf("--source must be %q or %q, got %q", client.SourceProxy, client.SourceMock, o.Source)
	}

	c, err := client.New(o.Server, client.WithSource(source), client.WithTimeout(o.Timeout))
	if err != nil {
		return nil, nil, nil, err
	}

	var out io.Writer = io.Discard
	cleanup := func() {}
	if o.LogDir != "" {
		f, err := config.SetupLogFile(o.LogDir, "dms", o.LogMaxFiles)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("setup log file: %w", err)
		}
		out = f
		cleanup = func() { _ = f.Close() }
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return c, logger, cleanup, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
