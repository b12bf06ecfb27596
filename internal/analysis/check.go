package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/ljeopp/internal/pair"
)

type ForceCheck struct {
	R        float64
	Analytic float64
	Numeric  float64
	RelErr   float64
}

// CheckForces compares the kernel force against -dE/dr by central
// differences with step h*r at each radius.
func CheckForces(d *pair.Derived, radii []float64, h float64) []ForceCheck {
	out := make([]ForceCheck, 0, len(radii))
	for _, r := range radii {
		step := h * r
		numeric := -(d.Energy(r+step) - d.Energy(r-step)) / (2 * step)
		fpair, _ := pair.Evaluate(r*r, d, 1, false)
		analytic := fpair * r
		if r*r >= d.CutSq {
			analytic = d.Force(r)
		}
		scale := math.Max(math.Abs(analytic), math.Abs(numeric))
		rel := 0.0
		if scale > 0 {
			rel = math.Abs(analytic-numeric) / scale
		}
		out = append(out, ForceCheck{R: r, Analytic: analytic, Numeric: numeric, RelErr: rel})
	}
	return out
}

func MaxRelError(checks []ForceCheck) float64 {
	if len(checks) == 0 {
		return 0
	}
	errs := make([]float64, len(checks))
	for i, c := range checks {
		errs[i] = c.RelErr
	}
	return floats.Max(errs)
}
