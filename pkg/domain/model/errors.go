package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for curve operations
var (
	ErrEmptyCurve = goerr.New("curve has no samples")
)
