package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dosecurve/pkg/cli/config"
	"github.com/secmon-lab/dosecurve/pkg/domain/model"
	"github.com/secmon-lab/dosecurve/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender(chartCfg *config.Chart) *cli.Command {
	var output string

	return &cli.Command{
		Name:  "render",
		Usage: "Write the chart as a standalone HTML page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file, '-' for stdout",
				Value:       "dosecurve.html",
				Sources:     cli.EnvVars("DOSECURVE_OUTPUT"),
				TakesFile:   true,
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			curveUC := usecase.NewCurveUseCase(model.DefaultParameters(), model.DefaultOccupancyModel(), chartCfg.Configure())

			if output == "-" {
				return curveUC.RenderChart(ctx, c.Root().Writer)
			}

			if err := writeFile(output, func(w io.Writer) error {
				return curveUC.RenderChart(ctx, w)
			}); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Chart written", "path", output)
			return nil
		},
	}
}

// writeFile creates path and writes it with fn, removing the file on failure
func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}

	if err := fn(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return goerr.Wrap(err, "failed to write output file", goerr.V("path", path))
	}

	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close output file", goerr.V("path", path))
	}
	return nil
}
