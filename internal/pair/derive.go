package pair

import (
	"math"
)

// InitOne derives the kernel coefficients of (i,j), mixing from the like
// pairs first when the pair was never set explicitly. The result is stored
// for both orders and also returned.
func (t *Table) InitOne(i, j int) (Derived, error) {
	if err := t.check("init", i, j); err != nil {
		return Derived{}, err
	}
	idx := t.index(i, j)
	p := t.params[idx]

	if !p.Set {
		if i == j {
			return Derived{}, configErr("init", i, j, "all pair coeffs are not set")
		}
		pi := t.params[t.index(i, i)]
		pj := t.params[t.index(j, j)]
		if !pi.Set || !pj.Set {
			return Derived{}, configErr("init", i, j, "all pair coeffs are not set")
		}
		mixed, err := mixPair(t.mixer, i, j, pi, pj)
		if err != nil {
			return Derived{}, err
		}
		p = mixed
		t.params[idx] = p
	}

	d, err := derive(i, j, p, t.settings)
	if err != nil {
		return Derived{}, err
	}
	t.derived[idx] = d
	return d, nil
}

func derive(i, j int, p Params, s Settings) (Derived, error) {
	for _, f := range []float64{p.C1, p.N1, p.C2, p.N2, p.KStar, p.PhiStar, p.Cutoff} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Derived{}, configErr("init", i, j, "non-finite coefficient %g", f)
		}
	}

	d := Derived{
		ForceCoeffA:  p.N1 * p.C1,
		ForceCoeffB:  p.N2 * p.C2,
		EnergyCoeffA: p.C1,
		EnergyCoeffB: p.C2,
		N1:           p.N1,
		N2:           p.N2,
		KStar:        p.KStar,
		PhiStar:      p.PhiStar,
		Cutoff:       p.Cutoff,
		CutSq:        p.Cutoff * p.Cutoff,
	}

	if s.Shift {
		if !(p.Cutoff > 0) {
			return Derived{}, configErr("init", i, j, "energy shift requires a positive cutoff, got %g", p.Cutoff)
		}
		offset := d.unshifted(p.Cutoff)
		if math.IsNaN(offset) || math.IsInf(offset, 0) {
			return Derived{}, configErr("init", i, j, "potential is singular at cutoff %g", p.Cutoff)
		}
		if !s.LegacyZeroOffset {
			d.EnergyOffset = offset
		}
	}
	return d, nil
}

// Init derives every pair i <= j and returns the largest cutoff. On error
// the table stays uninitialized.
func (t *Table) Init() (float64, error) {
	t.ready = false
	cutmax := 0.0
	for i := 1; i <= t.ntypes; i++ {
		for j := i; j <= t.ntypes; j++ {
			d, err := t.InitOne(i, j)
			if err != nil {
				return 0, err
			}
			cutmax = math.Max(cutmax, d.Cutoff)
		}
	}
	t.ready = true
	return cutmax, nil
}
