package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/gonum/floats"
)

// Time grid of an evaluated curve: [GridStart, GridEnd) with GridStep spacing
const (
	GridStart  = 0.0
	GridEnd    = 72.0
	GridStep   = 0.1
	GridPoints = 720
)

// TimeGrid returns GridPoints evenly spaced time points from GridStart to
// GridEnd-GridStep inclusive
func TimeGrid() []float64 {
	return floats.Span(make([]float64, GridPoints), GridStart, GridStart+GridStep*(GridPoints-1))
}

// Point is a single sample of a curve
type Point struct {
	Time          float64 `yaml:"time" json:"time"`
	Concentration float64 `yaml:"concentration" json:"concentration"`
	Occupancy     float64 `yaml:"occupancy" json:"occupancy"`
}

// Curve holds the evaluated sequences. All three slices have equal length.
type Curve struct {
	Time          []float64
	Concentration []float64
	Occupancy     []float64
}

// Len returns the number of samples
func (c *Curve) Len() int {
	return len(c.Time)
}

// At returns the i-th sample
func (c *Curve) At(i int) Point {
	return Point{
		Time:          c.Time[i],
		Concentration: c.Concentration[i],
		Occupancy:     c.Occupancy[i],
	}
}

// Points returns every sample
func (c *Curve) Points() []Point {
	points := make([]Point, c.Len())
	for i := range points {
		points[i] = c.At(i)
	}
	return points
}

// Sample returns every n-th sample starting from the first
func (c *Curve) Sample(every int) ([]Point, error) {
	if every < 1 {
		return nil, goerr.New("sampling interval must be positive", goerr.V("every", every))
	}

	points := make([]Point, 0, (c.Len()+every-1)/every)
	for i := 0; i < c.Len(); i += every {
		points = append(points, c.At(i))
	}
	return points, nil
}

// Peak returns the sample with the highest plasma concentration
func (c *Curve) Peak() Point {
	if c.Len() == 0 {
		return Point{}
	}
	return c.At(floats.MaxIdx(c.Concentration))
}

// LogValue returns structured log value
func (c *Curve) LogValue() slog.Value {
	peak := c.Peak()
	return slog.GroupValue(
		slog.Int("points", c.Len()),
		slog.Float64("peak_time", peak.Time),
		slog.Float64("peak_concentration", peak.Concentration),
		slog.Float64("peak_occupancy", peak.Occupancy),
	)
}
