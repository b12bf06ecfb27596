package pair

import (
	"fmt"
	"io"
)

// WriteData writes one line per like pair: type, epsilon, sigma and the
// six EOPP coefficients.
func (t *Table) WriteData(w io.Writer) error {
	for i := 1; i <= t.ntypes; i++ {
		p := t.params[t.index(i, i)]
		if _, err := fmt.Fprintf(w, "%d %g %g %g %g %g %g %g %g\n",
			i, p.Epsilon, p.Sigma, p.C1, p.N1, p.C2, p.N2, p.KStar, p.PhiStar); err != nil {
			return err
		}
	}
	return nil
}

// WriteDataAll writes one line per pair i <= j including the cutoff.
func (t *Table) WriteDataAll(w io.Writer) error {
	for i := 1; i <= t.ntypes; i++ {
		for j := i; j <= t.ntypes; j++ {
			p := t.params[t.index(i, j)]
			if _, err := fmt.Fprintf(w, "%d %d %g %g %g %g %g %g %g %g %g\n",
				i, j, p.Epsilon, p.Sigma, p.Cutoff, p.C1, p.N1, p.C2, p.N2, p.KStar, p.PhiStar); err != nil {
				return err
			}
		}
	}
	return nil
}

// Extract returns a named coefficient as a (ntypes+1) x (ntypes+1) matrix
// indexed directly by type; row and column 0 are unused.
func (t *Table) Extract(name string) ([][]float64, bool) {
	var get func(p Params) float64
	switch name {
	case "epsilon":
		get = func(p Params) float64 { return p.Epsilon }
	case "sigma":
		get = func(p Params) float64 { return p.Sigma }
	case "c1":
		get = func(p Params) float64 { return p.C1 }
	case "c2":
		get = func(p Params) float64 { return p.C2 }
	case "n1":
		get = func(p Params) float64 { return p.N1 }
	case "n2":
		get = func(p Params) float64 { return p.N2 }
	case "kstar":
		get = func(p Params) float64 { return p.KStar }
	case "phistar":
		get = func(p Params) float64 { return p.PhiStar }
	default:
		return nil, false
	}

	n := t.ntypes + 1
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 1; i <= t.ntypes; i++ {
		for j := 1; j <= t.ntypes; j++ {
			out[i][j] = get(t.params[t.index(i, j)])
		}
	}
	return out, true
}
