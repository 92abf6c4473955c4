package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dosecurve/pkg/domain/interfaces"
	"github.com/secmon-lab/dosecurve/pkg/domain/model"
)

// CurveUseCase evaluates the preset dose curve and renders it
type CurveUseCase struct {
	params    model.Parameters
	occupancy model.OccupancyModel
	renderer  interfaces.ChartRenderer
}

var _ interfaces.Curve = (*CurveUseCase)(nil)

// NewCurveUseCase creates a new CurveUseCase instance
func NewCurveUseCase(params model.Parameters, occupancy model.OccupancyModel, renderer interfaces.ChartRenderer) *CurveUseCase {
	return &CurveUseCase{
		params:    params,
		occupancy: occupancy,
		renderer:  renderer,
	}
}

// Parameters returns the parameter set of the use case
func (uc *CurveUseCase) Parameters() model.Parameters {
	return uc.params
}

// Evaluate computes the concentration and occupancy curve
func (uc *CurveUseCase) Evaluate(ctx context.Context) *model.Curve {
	curve := Evaluate(uc.params, uc.occupancy)

	ctxlog.From(ctx).Debug("Curve evaluated",
		slog.Any("params", uc.params),
		slog.Float64("ka", uc.params.AbsorptionRate()),
		slog.Float64("ke", uc.params.EliminationRate()),
		slog.Any("curve", curve),
	)

	return curve
}

// Report returns the curve sampled every n grid points with its peak
func (uc *CurveUseCase) Report(ctx context.Context, every int) (*model.Report, error) {
	curve := uc.Evaluate(ctx)

	var points []model.Point
	if every == 1 {
		points = curve.Points()
	} else {
		sampled, err := curve.Sample(every)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to sample curve", goerr.V("every", every))
		}
		points = sampled
	}

	return &model.Report{
		Parameters:      uc.params,
		Occupancy:       uc.occupancy,
		AbsorptionRate:  uc.params.AbsorptionRate(),
		EliminationRate: uc.params.EliminationRate(),
		Peak:            curve.Peak(),
		Points:          points,
	}, nil
}

// RenderChart writes the chart of the evaluated curve to w
func (uc *CurveUseCase) RenderChart(ctx context.Context, w io.Writer) error {
	if uc.renderer == nil {
		return goerr.New("chart renderer is not configured")
	}

	curve := uc.Evaluate(ctx)
	if err := uc.renderer.Render(ctx, w, curve, uc.params); err != nil {
		return goerr.Wrap(err, "failed to render chart", goerr.V("dose", uc.params.Dose))
	}
	return nil
}

// ChartContentType returns the media type written by RenderChart
func (uc *CurveUseCase) ChartContentType() string {
	if uc.renderer == nil {
		return ""
	}
	return uc.renderer.ContentType()
}
