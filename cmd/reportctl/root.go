package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"grant-portal/internal/service/builder"
)

const defaultURL = "http://localhost:4001"

type options struct {
	url     string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "reportctl",
		Short:         "Build and run grant portal reports",
		Long:          "Run custom reports against the grant portal API from YAML specification files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultBase := os.Getenv("PORTAL_URL")
	if defaultBase == "" {
		defaultBase = defaultURL
	}

	root.PersistentFlags().StringVar(&opts.url, "url", defaultBase, "Portal base URL (env PORTAL_URL)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Request timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests to stderr")

	root.AddCommand(
		newFieldsCmd(),
		newGenerateCmd(opts),
		newSaveCmd(opts),
	)

	return root
}

func (o *options) client() *builder.Client {
	return builder.NewClient(o.url, &http.Client{Timeout: o.timeout})
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	var w io.Writer = io.Discard
	if o.verbose {
		w = cmd.ErrOrStderr()
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
