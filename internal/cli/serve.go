package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssaunders/site/internal/config"
	"github.com/ssaunders/site/internal/logging"
	"github.com/ssaunders/site/internal/server"
	"github.com/ssaunders/site/web"
)

var (
	servePort   int
	serveAssets string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the website",
	Long: `Run the website until interrupted.

Assets are served from the binary unless --assets points at a directory
containing templates/ and static/, which is then read live.

Example:
  site serve
  site serve --port 8080 --assets ./web`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultServerPort, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveAssets, "assets", "", "Directory with live templates/ and static/ (default: embedded)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
		if err := config.ValidateServerConfig(&cfg.Server); err != nil {
			return err
		}
	}

	assets := web.Embedded()
	if serveAssets != "" {
		assets = web.GetAssets(serveAssets)
	}

	srv, err := server.NewServerFromConfig(cfg, assets, logging.Default())
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://localhost:%d\n", srv.Port())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down...")
	if err := srv.Stop(); err != nil {
		return err
	}
	return <-errCh
}
