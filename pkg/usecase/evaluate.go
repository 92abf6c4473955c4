package usecase

import (
	"math"

	"github.com/secmon-lab/dosecurve/pkg/domain/model"
)

// Evaluate computes plasma concentration and occupancy over the model time grid
func Evaluate(p model.Parameters, m model.OccupancyModel) *model.Curve {
	ka := p.AbsorptionRate()
	ke := p.EliminationRate()
	c0 := p.InitialConcentration()

	time := model.TimeGrid()
	curve := &model.Curve{
		Time:          time,
		Concentration: make([]float64, len(time)),
		Occupancy:     make([]float64, len(time)),
	}

	for i, t := range time {
		cp := PlasmaConcentration(ka, ke, c0, t)
		curve.Concentration[i] = cp
		curve.Occupancy[i] = m.Occupancy(cp)
	}

	return curve
}

// PlasmaConcentration evaluates the one-compartment oral absorption model
// at time t. c0 is DOSE/Vd.
func PlasmaConcentration(ka, ke, c0, t float64) float64 {
	if ka == ke {
		// limit of the general form as ke approaches ka
		return ka * t * math.Exp(-ka*t) * c0
	}
	return ka / (ka - ke) * (math.Exp(-ke*t) - math.Exp(-ka*t)) * c0
}
