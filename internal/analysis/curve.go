package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/ljeopp/internal/pair"
)

type Point struct {
	R         float64 `json:"r"`
	Energy    float64 `json:"energy"`
	Force     float64 `json:"force"`
	Curvature float64 `json:"curvature"`
}

// Tabulate samples d at n evenly spaced radii in [rmin, rmax]. Energies
// include the shift offset; points past the cutoff are still evaluated.
func Tabulate(d *pair.Derived, rmin, rmax float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 points, got %d", n)
	}
	if !(rmin > 0) || !(rmax > rmin) {
		return nil, fmt.Errorf("invalid radial range [%g, %g]", rmin, rmax)
	}
	radii := floats.Span(make([]float64, n), rmin, rmax)
	points := make([]Point, n)
	for i, r := range radii {
		points[i] = Point{
			R:         r,
			Energy:    d.Energy(r),
			Force:     d.Force(r),
			Curvature: d.Curvature(r),
		}
	}
	return points, nil
}

func Energies(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Energy
	}
	return out
}

func Forces(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Force
	}
	return out
}

// Minimum returns the tabulated point of lowest energy.
func Minimum(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	return points[floats.MinIdx(Energies(points))], true
}
