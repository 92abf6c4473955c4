package cli

import (
	"fmt"
	"io"

	"github.com/secmon-lab/dosecurve/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// printPreset writes the informational header shown before the chart
func printPreset(w io.Writer, p model.Parameters) error {
	_, err := fmt.Fprintf(w,
		"%s Concentration and DAT Occupancy Calculator\n"+
			"Parameters are preset with the following values:\n"+
			"Dose: %g mg\n"+
			"Dosing interval: %g h\n",
		p.Substance, p.Dose, p.Interval,
	)
	return err
}
