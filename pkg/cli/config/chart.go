package config

import (
	"log/slog"

	"github.com/secmon-lab/dosecurve/pkg/service/chart"
	"github.com/urfave/cli/v3"
)

// Chart holds chart rendering configuration
type Chart struct {
	AssetsHost string
	Width      string
	Height     string
}

// Flags returns CLI flags for Chart configuration
func (c *Chart) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "assets-host",
			Usage:       "Base URL the echarts JavaScript is loaded from (default: go-echarts CDN)",
			Category:    "Chart",
			Sources:     cli.EnvVars("DOSECURVE_ASSETS_HOST"),
			Destination: &c.AssetsHost,
		},
		&cli.StringFlag{
			Name:        "chart-width",
			Usage:       "Chart width as CSS length",
			Category:    "Chart",
			Value:       "960px",
			Sources:     cli.EnvVars("DOSECURVE_CHART_WIDTH"),
			Destination: &c.Width,
		},
		&cli.StringFlag{
			Name:        "chart-height",
			Usage:       "Chart height as CSS length",
			Category:    "Chart",
			Value:       "540px",
			Sources:     cli.EnvVars("DOSECURVE_CHART_HEIGHT"),
			Destination: &c.Height,
		},
	}
}

// Configure creates a chart renderer from the configuration
func (c *Chart) Configure() *chart.Renderer {
	options := []chart.Option{chart.WithSize(c.Width, c.Height)}
	if c.AssetsHost != "" {
		options = append(options, chart.WithAssetsHost(c.AssetsHost))
	}
	return chart.New(options...)
}

// LogValue returns structured log value
func (c Chart) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("assets_host", c.AssetsHost),
		slog.String("width", c.Width),
		slog.String("height", c.Height),
	)
}
