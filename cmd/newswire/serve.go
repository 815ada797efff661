package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Accept bulletins over HTTP",
	Long: `Serve starts the HTTP intake:

  POST /bulletins   NewsML document as the request body
  GET  /healthz     liveness
  GET  /metrics     Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, _ := newApplication()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return application.Serve(ctx, flagAddr)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Process bulletins dropped into a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, _ := newApplication()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return application.Watch(ctx, args[0])
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (default from HTTP_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd, watchCmd)
}
