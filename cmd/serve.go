package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lcgen/config"
	"github.com/tutils/lcgen/httpsrv"
)

const shutdownTimeout = 5 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generator over HTTP",
	Long: `Start an HTTP server exposing generation, report download, a websocket value stream and metrics, For example:
  lcgen serve --listen=0.0.0.0:8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := httpsrv.NewServer(
			httpsrv.WithListenAddress(viper.GetString(config.KeyServeListen)),
			httpsrv.WithLogger(log),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", config.DefaultListen, "http server listen address")
	viper.BindPFlag(config.KeyServeListen, flags.Lookup("listen"))
}
