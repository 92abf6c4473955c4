package model

import (
	"log/slog"
	"math"
)

// SubstanceName is the substance the preset parameter set describes
const SubstanceName = "4'-Br-4-methylaminorex"

// ionizationPKa is the pKa used to estimate the non-ionized fraction at a given pH
const ionizationPKa = 6.56

// Parameters holds the scalar constants of a single oral dose.
// Times are in hours, masses in mg (dose) and kg (body weight), Vd in L.
// TimeToPeak, Interval and Offset are informational and not used by the model.
type Parameters struct {
	Substance   string  `yaml:"substance" json:"substance"`
	Dose        float64 `yaml:"dose" json:"dose"`
	BodyWeight  float64 `yaml:"body_weight" json:"body_weight"`
	TimeToPeak  float64 `yaml:"time_to_peak" json:"time_to_peak"`
	Duration    float64 `yaml:"duration" json:"duration"`
	AfterEffect float64 `yaml:"after_effect" json:"after_effect"`
	Interval    float64 `yaml:"interval" json:"interval"`
	Onset       float64 `yaml:"onset" json:"onset"`
	Offset      float64 `yaml:"offset" json:"offset"`
	PH          float64 `yaml:"ph" json:"ph"`
	F           float64 `yaml:"bioavailability" json:"bioavailability"`
	Vd          float64 `yaml:"volume_of_distribution" json:"volume_of_distribution"`
}

// DefaultParameters returns the preset parameter set
func DefaultParameters() Parameters {
	return Parameters{
		Substance:   SubstanceName,
		Dose:        60,
		BodyWeight:  60,
		TimeToPeak:  2,
		Duration:    16,
		AfterEffect: 26,
		Interval:    4,
		Onset:       0.05,
		Offset:      4,
		PH:          7.4,
		F:           0.95,
		Vd:          4,
	}
}

// WithDose returns a copy of the parameter set with a different dose
func (p Parameters) WithDose(dose float64) Parameters {
	p.Dose = dose
	return p
}

// InitialConcentration returns DOSE/Vd, the scale factor of the plasma curve
func (p Parameters) InitialConcentration() float64 {
	return p.Dose / p.Vd
}

// AbsorptionRate returns the first-order absorption rate constant ka.
// The rate is reduced by the ionized fraction at the given pH.
func (p Parameters) AbsorptionRate() float64 {
	bioavailable := p.F * p.Dose / p.Vd
	ionization := math.Pow(10, (ionizationPKa-p.PH)*math.Log10(math.E))
	return bioavailable / (1 + ionization*math.Exp(-bioavailable*p.Onset/p.BodyWeight))
}

// EliminationRate returns the elimination rate constant ke derived from
// the total effect time taken as half-life.
func (p Parameters) EliminationRate() float64 {
	return math.Ln2 / (p.Duration + p.AfterEffect)
}

// LogValue returns structured log value
func (p Parameters) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("substance", p.Substance),
		slog.Float64("dose", p.Dose),
		slog.Float64("body_weight", p.BodyWeight),
		slog.Float64("duration", p.Duration),
		slog.Float64("after_effect", p.AfterEffect),
		slog.Float64("onset", p.Onset),
		slog.Float64("ph", p.PH),
		slog.Float64("f", p.F),
		slog.Float64("vd", p.Vd),
	)
}
