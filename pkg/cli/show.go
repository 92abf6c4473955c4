package cli

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pkg/browser"
	"github.com/secmon-lab/dosecurve/pkg/cli/config"
	controller "github.com/secmon-lab/dosecurve/pkg/controller/http"
	"github.com/secmon-lab/dosecurve/pkg/domain/model"
	"github.com/secmon-lab/dosecurve/pkg/usecase"
	"github.com/secmon-lab/dosecurve/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

// openBrowser is replaced in tests
var openBrowser = browser.OpenURL

func cmdShow(chartCfg *config.Chart, serverCfg *config.Server) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the preset and display the chart until interrupted (default)",
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := serverCfg.Validate(); err != nil {
				return err
			}

			curveUC := usecase.NewCurveUseCase(model.DefaultParameters(), model.DefaultOccupancyModel(), chartCfg.Configure())
			if err := printPreset(c.Root().Writer, curveUC.Parameters()); err != nil {
				return goerr.Wrap(err, "failed to print preset")
			}
			server := controller.NewServer(ctx, serverCfg.Addr, curveUC)

			listener, err := net.Listen("tcp", serverCfg.Addr)
			if err != nil {
				return goerr.Wrap(err, "failed to listen", goerr.V("addr", serverCfg.Addr))
			}
			url := serverCfg.URL(listener.Addr())

			serveErr := make(chan error, 1)
			go func() {
				if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
					serveErr <- err
				}
				close(serveErr)
			}()

			logger.Info("Chart available",
				slog.String("url", url),
				slog.Any("server", serverCfg),
				slog.Any("chart", chartCfg),
			)

			if !serverCfg.NoBrowser {
				async.Dispatch(ctx, func(ctx context.Context) error {
					if err := openBrowser(url); err != nil {
						return goerr.Wrap(err, "failed to open browser", goerr.V("url", url))
					}
					return nil
				})
			}

			// Block like a plot window until the user is done
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err, ok := <-serveErr:
				if ok {
					return goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
