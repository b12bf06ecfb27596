package pair

import "math"

// Virial component order.
const (
	VXX = iota
	VYY
	VZZ
	VXY
	VXZ
	VYZ
)

// Tally is the global energy and virial reduction of one pass.
type Tally struct {
	Energy float64
	Virial [6]float64
}

func (t *Tally) add(o Tally) {
	t.Energy += o.Energy
	for k := range t.Virial {
		t.Virial[k] += o.Virial[k]
	}
}

// Check returns a NumericError for the first non-finite component.
func (t Tally) Check() error {
	if bad(t.Energy) {
		return &NumericError{Quantity: "pair energy", Value: t.Energy}
	}
	for k, v := range t.Virial {
		if bad(v) {
			return &NumericError{Quantity: virialNames[k], Value: v}
		}
	}
	return nil
}

var virialNames = [6]string{"virial xx", "virial yy", "virial zz", "virial xy", "virial xz", "virial yz"}

func bad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Accumulator applies pair forces to F. Atoms with index >= NLocal are
// ghosts: without Newton their force is owned by another domain and is not
// written, and their share of energy and virial is not tallied here.
type Accumulator struct {
	F      [][3]float64
	NLocal int
	Newton bool
	EFlag  bool
	VFlag  bool
	Tally  Tally
}

func NewAccumulator(f [][3]float64, nlocal int, newton bool) *Accumulator {
	return &Accumulator{F: f, NLocal: nlocal, Newton: newton, EFlag: true, VFlag: true}
}

// Zero clears forces and the tally before a pass.
func (a *Accumulator) Zero() {
	for i := range a.F {
		a.F[i] = [3]float64{}
	}
	a.Tally = Tally{}
}

// Add applies fpair*del to i and its negation to j, then tallies.
func (a *Accumulator) Add(i, j int, del [3]float64, fpair, evdwl float64) {
	fx := del[0] * fpair
	fy := del[1] * fpair
	fz := del[2] * fpair
	a.F[i][0] += fx
	a.F[i][1] += fy
	a.F[i][2] += fz
	if a.Newton || j < a.NLocal {
		a.F[j][0] -= fx
		a.F[j][1] -= fy
		a.F[j][2] -= fz
	}
	if a.EFlag || a.VFlag {
		a.tally(i, j, del, fpair, evdwl)
	}
}

func (a *Accumulator) tally(i, j int, del [3]float64, fpair, evdwl float64) {
	share := 1.0
	if !a.Newton {
		share = 0
		if i < a.NLocal {
			share += 0.5
		}
		if j < a.NLocal {
			share += 0.5
		}
	}
	if a.EFlag {
		a.Tally.Energy += share * evdwl
	}
	if a.VFlag {
		s := share * fpair
		a.Tally.Virial[VXX] += s * del[0] * del[0]
		a.Tally.Virial[VYY] += s * del[1] * del[1]
		a.Tally.Virial[VZZ] += s * del[2] * del[2]
		a.Tally.Virial[VXY] += s * del[0] * del[1]
		a.Tally.Virial[VXZ] += s * del[0] * del[2]
		a.Tally.Virial[VYZ] += s * del[1] * del[2]
	}
}

// CheckForces returns a NumericError for the first non-finite force.
func (a *Accumulator) CheckForces() error {
	for _, f := range a.F {
		for _, v := range f {
			if bad(v) {
				return &NumericError{Quantity: "force", Value: v}
			}
		}
	}
	return nil
}
