package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dosecurve/pkg/cli/config"
	"github.com/secmon-lab/dosecurve/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, w io.Writer) error {
	var (
		loggerCfg config.Logger
		chartCfg  config.Chart
		serverCfg config.Server
	)
	logger := slog.Default()

	app := &cli.Command{
		Name:           "dosecurve",
		Usage:          "Plasma concentration and DAT occupancy curve of a single oral dose",
		Version:        "0.1.0",
		Writer:         w,
		DefaultCommand: "show",
		Flags: joinFlags(
			loggerCfg.Flags(),
			chartCfg.Flags(),
			serverCfg.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			configured, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			logger = configured
			slog.SetDefault(logger)
			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdShow(&chartCfg, &serverCfg),
			cmdRender(&chartCfg),
			cmdTable(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctxlog.With(ctx, logger), err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
