package model_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dosecurve/pkg/domain/model"
)

func TestTimeGrid(t *testing.T) {
	grid := model.TimeGrid()

	gt.Equal(t, len(grid), 720)
	gt.Equal(t, grid[0], 0.0)
	gt.True(t, math.Abs(grid[len(grid)-1]-71.9) < 1e-9)
	for i := 1; i < len(grid); i++ {
		gt.True(t, math.Abs(grid[i]-grid[i-1]-0.1) < 1e-9)
	}
}

func TestCurveSample(t *testing.T) {
	curve := &model.Curve{
		Time:          []float64{0, 1, 2, 3, 4},
		Concentration: []float64{0, 10, 20, 15, 5},
		Occupancy:     []float64{0, 40, 60, 50, 30},
	}

	t.Run("every second point", func(t *testing.T) {
		points, err := curve.Sample(2)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(points), 3)
		gt.Equal(t, points[0].Time, 0.0)
		gt.Equal(t, points[1].Time, 2.0)
		gt.Equal(t, points[2].Time, 4.0)
	})

	t.Run("every point", func(t *testing.T) {
		points, err := curve.Sample(1)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(points), curve.Len())
	})

	t.Run("error on non-positive interval", func(t *testing.T) {
		_, err := curve.Sample(0)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("sampling interval must be positive")
	})
}

func TestCurvePoints(t *testing.T) {
	curve := &model.Curve{
		Time:          []float64{0, 0.1, 0.2},
		Concentration: []float64{0, 1.5, 2.5},
		Occupancy:     []float64{0, 20, 30},
	}

	points := curve.Points()
	gt.Equal(t, len(points), 3)
	gt.Equal(t, points[1], model.Point{Time: 0.1, Concentration: 1.5, Occupancy: 20})
	gt.Equal(t, len((&model.Curve{}).Points()), 0)
}

func TestCurvePeak(t *testing.T) {
	t.Run("returns the maximum concentration sample", func(t *testing.T) {
		curve := &model.Curve{
			Time:          []float64{0, 1, 2, 3},
			Concentration: []float64{0, 12, 8, 4},
			Occupancy:     []float64{0, 70, 55, 35},
		}
		peak := curve.Peak()
		gt.Equal(t, peak.Time, 1.0)
		gt.Equal(t, peak.Concentration, 12.0)
		gt.Equal(t, peak.Occupancy, 70.0)
	})

	t.Run("empty curve", func(t *testing.T) {
		curve := &model.Curve{}
		gt.Equal(t, curve.Peak(), model.Point{})
	})
}

func TestOccupancy(t *testing.T) {
	m := model.DefaultOccupancyModel()

	t.Run("zero concentration", func(t *testing.T) {
		gt.Equal(t, m.Occupancy(0), 0.0)
	})

	t.Run("negative concentration is treated as zero", func(t *testing.T) {
		occ := m.Occupancy(-1)
		gt.False(t, math.IsNaN(occ))
		gt.Equal(t, occ, 0.0)
	})

	t.Run("half maximal brain concentration gives 100 percent", func(t *testing.T) {
		plasma := m.HalfMaximal * m.PartitionCoefficient
		gt.True(t, math.Abs(m.Occupancy(plasma)-100) < 1e-9)
	})

	t.Run("increases with concentration", func(t *testing.T) {
		gt.True(t, m.Occupancy(5) < m.Occupancy(10))
		gt.True(t, m.Occupancy(10) < m.Occupancy(50))
	})
}
