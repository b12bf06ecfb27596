package pair

import "math"

// Evaluate is the per pair kernel. It returns the force divided by r, ready
// to be multiplied by the displacement, and the shifted pair energy when
// wantEnergy is set. Pairs at or beyond the cutoff contribute nothing.
//
// The caller guarantees rsq > 0. A coincident pair propagates Inf/NaN.
func Evaluate(rsq float64, d *Derived, factor float64, wantEnergy bool) (fpair, evdwl float64) {
	if rsq >= d.CutSq {
		return 0, 0
	}
	r := math.Sqrt(rsq)
	sin, cos := math.Sincos(d.KStar*r + d.PhiStar)
	rn1 := math.Pow(r, d.N1)
	rn2 := math.Pow(r, d.N2)

	// d/dr of the oscillator is the product rule: power-law part times
	// cosine plus power law times the cosine's derivative.
	force1 := d.ForceCoeffA / (rn1 * r)
	force2 := d.ForceCoeffB / (rn2 * r) * cos
	force3 := d.EnergyCoeffB * d.KStar / rn2 * sin

	fpair = (force1 + force2 + force3) / r * factor
	if wantEnergy {
		evdwl = (d.EnergyCoeffA/rn1 + d.EnergyCoeffB/rn2*cos - d.EnergyOffset) * factor
	}
	return fpair, evdwl
}

// unshifted is V(r) without the cutoff offset.
func (d *Derived) unshifted(r float64) float64 {
	return d.EnergyCoeffA/math.Pow(r, d.N1) + d.EnergyCoeffB/math.Pow(r, d.N2)*math.Cos(d.KStar*r+d.PhiStar)
}

// Energy is the shifted potential at distance r, ignoring the cutoff.
func (d *Derived) Energy(r float64) float64 {
	return d.unshifted(r) - d.EnergyOffset
}

// Force is -dV/dr at distance r, ignoring the cutoff.
func (d *Derived) Force(r float64) float64 {
	sin, cos := math.Sincos(d.KStar*r + d.PhiStar)
	rn1 := math.Pow(r, d.N1)
	rn2 := math.Pow(r, d.N2)
	return d.ForceCoeffA/(rn1*r) + d.ForceCoeffB/(rn2*r)*cos + d.EnergyCoeffB*d.KStar/rn2*sin
}

// Curvature is d2V/dr2 at distance r, ignoring the cutoff.
func (d *Derived) Curvature(r float64) float64 {
	sin, cos := math.Sincos(d.KStar*r + d.PhiStar)
	k := d.KStar
	t1 := d.ForceCoeffA * (d.N1 + 1) / math.Pow(r, d.N1+2)
	osc := d.EnergyCoeffB / math.Pow(r, d.N2) *
		((d.N2*(d.N2+1)/(r*r)-k*k)*cos + 2*d.N2*k/r*sin)
	return t1 + osc
}

// Single evaluates one pair by type, for diagnostics and host queries that
// bypass the neighbor pass. fforce is force/r; both results carry factor.
func (t *Table) Single(itype, jtype int, rsq, factor float64) (fforce, energy float64, err error) {
	d, err := t.Derived(itype, jtype)
	if err != nil {
		return 0, 0, err
	}
	fforce, energy = Evaluate(rsq, &d, factor, true)
	return fforce, energy, nil
}

// BornMatrix returns dU/dr and d2U/dr2 for one pair, scaled by factor.
func (t *Table) BornMatrix(itype, jtype int, rsq, factor float64) (du, du2 float64, err error) {
	d, err := t.Derived(itype, jtype)
	if err != nil {
		return 0, 0, err
	}
	r := math.Sqrt(rsq)
	return -d.Force(r) * factor, d.Curvature(r) * factor, nil
}
