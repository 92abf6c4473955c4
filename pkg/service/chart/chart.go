package chart

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dosecurve/pkg/domain/interfaces"
	"github.com/secmon-lab/dosecurve/pkg/domain/model"
)

// Axis ranges of the chart
const (
	ConcentrationMax = 120
	OccupancyMax     = 100
	ReferenceLevel   = 50
)

// Series names, also used as legend entries
const (
	SeriesConcentration = "Blood Concentration"
	SeriesOccupancy     = "DAT Occupancy"
	SeriesReference     = "50% Occupancy"
)

const (
	colorConcentration = "blue"
	colorOccupancy     = "red"
	colorReference     = "black"
)

// Renderer renders a dual-axis concentration/occupancy chart as an HTML page
type Renderer struct {
	chartID    string
	assetsHost string
	width      string
	height     string
}

var _ interfaces.ChartRenderer = (*Renderer)(nil)

// Option configures Renderer
type Option func(*Renderer)

// WithAssetsHost sets the host the echarts JavaScript is loaded from
func WithAssetsHost(host string) Option {
	return func(r *Renderer) {
		r.assetsHost = host
	}
}

// WithChartID sets the DOM element ID of the chart
func WithChartID(id string) Option {
	return func(r *Renderer) {
		r.chartID = id
	}
}

// WithSize sets the chart size as CSS lengths
func WithSize(width, height string) Option {
	return func(r *Renderer) {
		r.width = width
		r.height = height
	}
}

// New creates a new chart renderer
func New(options ...Option) *Renderer {
	r := &Renderer{
		chartID: "dose" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		width:   "960px",
		height:  "540px",
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// ContentType returns the media type of the rendered output
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Title returns the chart title for a parameter set
func Title(p model.Parameters) string {
	return "Blood Concentration and DAT Occupancy with Dose: " + formatNumber(p.Dose) + " mg"
}

// Render writes the chart of curve to w
func (r *Renderer) Render(ctx context.Context, w io.Writer, curve *model.Curve, p model.Parameters) error {
	if curve == nil || curve.Len() == 0 {
		return goerr.Wrap(model.ErrEmptyCurve, "nothing to render")
	}

	line := r.build(curve, p)
	if err := line.Render(w); err != nil {
		return goerr.Wrap(err, "failed to write chart", goerr.V("chart_id", r.chartID))
	}

	ctxlog.From(ctx).Debug("Chart rendered",
		"chart_id", r.chartID,
		"points", curve.Len(),
	)
	return nil
}

func (r *Renderer) build(curve *model.Curve, p model.Parameters) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		// empty fields fall back to the go-echarts defaults
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  p.Substance + " Concentration and DAT Occupancy",
			ChartID:    r.chartID,
			Width:      r.width,
			Height:     r.height,
			AssetsHost: r.assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: Title(p),
			Left:  "center",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "30",
			Data: []string{SeriesConcentration, SeriesOccupancy, SeriesReference},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:         "value",
			Name:         "Time (h)",
			NameLocation: "middle",
			NameGap:      30,
			Min:          model.GridStart,
			Max:          model.GridEnd,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			Name:      "Blood Concentration (mg/L)",
			Position:  "left",
			Min:       0,
			Max:       ConcentrationMax,
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true)},
		}),
	)

	line.ExtendYAxis(opts.YAxis{
		Type:      "value",
		Name:      "DAT Occupancy (%)",
		Position:  "right",
		Min:       0,
		Max:       OccupancyMax,
		SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		AxisLabel: &opts.AxisLabel{Show: opts.Bool(true)},
	})

	concentration := make([]opts.LineData, curve.Len())
	occupancy := make([]opts.LineData, curve.Len())
	for i := range curve.Time {
		concentration[i] = opts.LineData{Value: []float64{curve.Time[i], curve.Concentration[i]}}
		occupancy[i] = opts.LineData{Value: []float64{curve.Time[i], curve.Occupancy[i]}}
	}
	reference := []opts.LineData{
		{Value: []float64{model.GridStart, ReferenceLevel}},
		{Value: []float64{model.GridEnd, ReferenceLevel}},
	}

	line.AddSeries(SeriesConcentration, concentration,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false), YAxisIndex: 0}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorConcentration, Width: 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorConcentration}),
	)
	line.AddSeries(SeriesOccupancy, occupancy,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false), YAxisIndex: 1}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorOccupancy, Width: 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorOccupancy}),
	)
	line.AddSeries(SeriesReference, reference,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false), YAxisIndex: 1}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorReference, Type: "dashed", Width: 1}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorReference}),
	)

	return line
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
