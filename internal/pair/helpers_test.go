package pair

import (
	"math"
	"math/rand"
	"testing"
)

func doublePower() Coeff {
	return Coeff{Epsilon: 1, Sigma: 1, C1: 1000, N1: 12, C2: -50, N2: 6}
}

func oscillatory() Coeff {
	c := doublePower()
	c.KStar = 0.5
	return c
}

func newDerived(t testing.TB, c Coeff, s Settings) Derived {
	t.Helper()
	tbl, err := NewTable(1, s)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	if err := tbl.SetCoeff(1, 1, c); err != nil {
		t.Fatalf("set coeff: %v", err)
	}
	if _, err := tbl.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	d, err := tbl.Derived(1, 1)
	if err != nil {
		t.Fatalf("derived: %v", err)
	}
	return d
}

func closeRel(a, b, rel, abs float64) bool {
	return math.Abs(a-b) <= abs+rel*math.Max(math.Abs(a), math.Abs(b))
}

// randomAtoms places n atoms in a cube with a minimum separation so no
// pair sits on the repulsive wall.
func randomAtoms(n, ntypes int, side, minSep float64, seed int64) *Atoms {
	rng := rand.New(rand.NewSource(seed))
	atoms := &Atoms{NLocal: n}
	for len(atoms.X) < n {
		p := [3]float64{rng.Float64() * side, rng.Float64() * side, rng.Float64() * side}
		ok := true
		for _, q := range atoms.X {
			dx, dy, dz := p[0]-q[0], p[1]-q[1], p[2]-q[2]
			if dx*dx+dy*dy+dz*dz < minSep*minSep {
				ok = false
				break
			}
		}
		if ok {
			atoms.X = append(atoms.X, p)
			atoms.Type = append(atoms.Type, 1+len(atoms.Type)%ntypes)
		}
	}
	return atoms
}

func halfList(atoms *Atoms, cut float64) *NeighborList {
	list := &NeighborList{}
	cutsq := cut * cut
	for i := range atoms.X {
		var jl []int
		for j := i + 1; j < len(atoms.X); j++ {
			dx := atoms.X[i][0] - atoms.X[j][0]
			dy := atoms.X[i][1] - atoms.X[j][1]
			dz := atoms.X[i][2] - atoms.X[j][2]
			if dx*dx+dy*dy+dz*dz < cutsq {
				jl = append(jl, j)
			}
		}
		list.ILocal = append(list.ILocal, i)
		list.Neighbors = append(list.Neighbors, jl)
	}
	return list
}
