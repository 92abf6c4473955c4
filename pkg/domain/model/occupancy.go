package model

import "math"

// OccupancyModel describes the saturation transform from plasma
// concentration to transporter occupancy
type OccupancyModel struct {
	PartitionCoefficient float64 `yaml:"partition_coefficient" json:"partition_coefficient"` // plasma / brain
	HillExponent         float64 `yaml:"hill_exponent" json:"hill_exponent"`
	HalfMaximal          float64 `yaml:"half_maximal" json:"half_maximal"`
	Normalization        float64 `yaml:"normalization" json:"normalization"`
}

// DefaultOccupancyModel returns the DAT occupancy model used by the preset
func DefaultOccupancyModel() OccupancyModel {
	return OccupancyModel{
		PartitionCoefficient: 3.35,
		HillExponent:         0.6,
		HalfMaximal:          10,
		Normalization:        0.5,
	}
}

// BrainConcentration converts a plasma concentration to a brain concentration
func (m OccupancyModel) BrainConcentration(plasma float64) float64 {
	return plasma / m.PartitionCoefficient
}

// Occupancy returns the occupancy percentage for a plasma concentration.
// Negative brain concentrations are treated as zero so the fractional power
// is always defined; the result is not capped at 100.
func (m OccupancyModel) Occupancy(plasma float64) float64 {
	brain := math.Max(m.BrainConcentration(plasma), 0)
	num := math.Pow(brain, m.HillExponent)
	return num / (num + math.Pow(m.HalfMaximal, m.HillExponent)) / m.Normalization * 100
}
