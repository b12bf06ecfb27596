package md

import (
	"math"
	"math/rand"
)

// System is a set of atoms in a periodic cubic box of side Box.
type System struct {
	X    [][3]float64
	V    [][3]float64
	Type []int
	// Mass is indexed by type; index 0 is unused.
	Mass []float64
	Box  float64
}

func (s *System) Len() int { return len(s.X) }

// Lattice places n^3 atoms on a simple cubic lattice with the given spacing,
// assigns types cyclically and displaces each coordinate uniformly by up to
// jitter.
func Lattice(n int, spacing float64, ntypes int, jitter float64, seed int64) (*System, error) {
	if n < 1 {
		return nil, boundsErr("lattice size must be >= 1, got %d", n)
	}
	if !(spacing > 0) {
		return nil, boundsErr("lattice spacing must be positive, got %g", spacing)
	}
	if ntypes < 1 {
		return nil, boundsErr("ntypes must be >= 1, got %d", ntypes)
	}

	rng := rand.New(rand.NewSource(seed))
	total := n * n * n
	s := &System{
		X:    make([][3]float64, 0, total),
		V:    make([][3]float64, total),
		Type: make([]int, 0, total),
		Mass: make([]float64, ntypes+1),
		Box:  float64(n) * spacing,
	}
	for t := 1; t <= ntypes; t++ {
		s.Mass[t] = 1
	}

	for ix := 0; ix < n; ix++ {
		for iy := 0; iy < n; iy++ {
			for iz := 0; iz < n; iz++ {
				var x [3]float64
				for d, c := range [3]int{ix, iy, iz} {
					x[d] = (float64(c)+0.5)*spacing + jitter*(2*rng.Float64()-1)
				}
				s.X = append(s.X, s.wrap(x))
				s.Type = append(s.Type, len(s.Type)%ntypes+1)
			}
		}
	}
	return s, nil
}

func (s *System) wrap(x [3]float64) [3]float64 {
	for d := range x {
		x[d] -= s.Box * math.Floor(x[d]/s.Box)
	}
	return x
}

// Wrap folds every position back into [0, Box).
func (s *System) Wrap() {
	for i := range s.X {
		s.X[i] = s.wrap(s.X[i])
	}
}

// Thermalize draws velocities with per-component standard deviation
// sqrt(temp/m) and removes the center-of-mass drift.
func (s *System) Thermalize(temp float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	var p [3]float64
	var mtot float64
	for i := range s.V {
		m := s.Mass[s.Type[i]]
		sd := math.Sqrt(temp / m)
		for d := 0; d < 3; d++ {
			s.V[i][d] = sd * rng.NormFloat64()
			p[d] += m * s.V[i][d]
		}
		mtot += m
	}
	for i := range s.V {
		for d := 0; d < 3; d++ {
			s.V[i][d] -= p[d] / mtot
		}
	}
}

func (s *System) KineticEnergy() float64 {
	ke := 0.0
	for i, v := range s.V {
		ke += 0.5 * s.Mass[s.Type[i]] * (v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	}
	return ke
}

// Temperature in reduced units, 2 KE / (3 N).
func (s *System) Temperature() float64 {
	if len(s.X) == 0 {
		return 0
	}
	return 2 * s.KineticEnergy() / (3 * float64(len(s.X)))
}

func (s *System) Clone() *System {
	c := &System{
		X:    make([][3]float64, len(s.X)),
		V:    make([][3]float64, len(s.V)),
		Type: make([]int, len(s.Type)),
		Mass: make([]float64, len(s.Mass)),
		Box:  s.Box,
	}
	copy(c.X, s.X)
	copy(c.V, s.V)
	copy(c.Type, s.Type)
	copy(c.Mass, s.Mass)
	return c
}

func (s *System) IsValid() bool {
	for i := range s.X {
		for d := 0; d < 3; d++ {
			if bad(s.X[i][d]) || bad(s.V[i][d]) {
				return false
			}
		}
	}
	return true
}

func bad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
