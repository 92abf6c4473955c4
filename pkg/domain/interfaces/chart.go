package interfaces

import (
	"context"
	"io"

	"github.com/secmon-lab/dosecurve/pkg/domain/model"
)

// ChartRenderer draws an evaluated curve
type ChartRenderer interface {
	// Render writes the chart of curve for the parameter set p to w
	Render(ctx context.Context, w io.Writer, curve *model.Curve, p model.Parameters) error

	// ContentType returns the media type of the rendered output
	ContentType() string
}
