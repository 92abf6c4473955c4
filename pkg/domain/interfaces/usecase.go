package interfaces

import (
	"context"
	"io"

	"github.com/secmon-lab/dosecurve/pkg/domain/model"
)

// Curve provides the evaluated dose curve and its chart
type Curve interface {
	// Parameters returns the parameter set the curve is evaluated for
	Parameters() model.Parameters

	// Evaluate computes the concentration and occupancy curve
	Evaluate(ctx context.Context) *model.Curve

	// Report returns the curve sampled every n grid points together with its peak
	Report(ctx context.Context, every int) (*model.Report, error)

	// RenderChart writes the chart of the evaluated curve to w
	RenderChart(ctx context.Context, w io.Writer) error

	// ChartContentType returns the media type written by RenderChart
	ChartContentType() string
}
