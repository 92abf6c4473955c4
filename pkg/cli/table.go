package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dosecurve/pkg/domain/model"
	"github.com/secmon-lab/dosecurve/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

func cmdTable() *cli.Command {
	var (
		format string
		every  int
	)

	return &cli.Command{
		Name:  "table",
		Usage: "Print the evaluated curve as YAML or JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format (yaml, json)",
				Value:       "yaml",
				Destination: &format,
				Validator: func(v string) error {
					if v != "yaml" && v != "json" {
						return goerr.New("unsupported table format", goerr.V("format", v))
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:        "every",
				Aliases:     []string{"n"},
				Usage:       "Print every n-th grid point (grid step is 0.1 h)",
				Value:       10,
				Destination: &every,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			curveUC := usecase.NewCurveUseCase(model.DefaultParameters(), model.DefaultOccupancyModel(), nil)

			report, err := curveUC.Report(ctx, every)
			if err != nil {
				return err
			}

			return writeReport(c.Root().Writer, format, report)
		},
	}
}

func writeReport(w io.Writer, format string, report *model.Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return goerr.Wrap(err, "failed to encode report as JSON")
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return goerr.Wrap(err, "failed to encode report as YAML")
		}
		if err := enc.Close(); err != nil {
			return goerr.Wrap(err, "failed to flush YAML encoder")
		}
	default:
		return goerr.New("unsupported table format", goerr.V("format", format))
	}
	return nil
}
