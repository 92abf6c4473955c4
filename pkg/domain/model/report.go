package model

// Report is a tabular summary of an evaluated curve
type Report struct {
	Parameters      Parameters     `yaml:"parameters" json:"parameters"`
	Occupancy       OccupancyModel `yaml:"occupancy_model" json:"occupancy_model"`
	AbsorptionRate  float64        `yaml:"ka" json:"ka"`
	EliminationRate float64        `yaml:"ke" json:"ke"`
	Peak            Point          `yaml:"peak" json:"peak"`
	Points          []Point        `yaml:"points" json:"points"`
}
