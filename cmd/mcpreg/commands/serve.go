package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mcpreg/internal/logging"
	"github.com/thoreinstein/mcpreg/internal/web"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: server.addr from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	Long: `Serve the catalog and detail pages over HTTP.

Routes:
  /                    catalog page
  /server/.../<id>     detail page; ?tab= and ?client= select the view
  /healthz             liveness

Stops gracefully on interrupt.`,
	Example: `  # Serve on the configured address
  mcpreg serve

  # Serve on a specific port
  mcpreg serve --addr 127.0.0.1:9000

  See Also: mcpreg browse`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(c *cobra.Command, _ []string) error {
	cfg := currentConfig()
	opts := web.Options{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	if serveAddr != "" {
		opts.Addr = serveAddr
	}

	resolver, err := newResolver()
	if err != nil {
		return err
	}
	srv, err := web.New(resolver, opts, logging.FromContext(c.Context()))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}
