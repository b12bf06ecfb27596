package pair

import (
	"errors"
	"math"
	"testing"
)

func TestAccumulator_NewtonPair(t *testing.T) {
	acc := NewAccumulator(make([][3]float64, 2), 2, true)
	del := [3]float64{1, 2, -2}

	acc.Add(0, 1, del, 0.5, -1.25)

	want := [3]float64{0.5, 1, -1}
	if acc.F[0] != want {
		t.Errorf("F[0] = %v, want %v", acc.F[0], want)
	}
	if acc.F[1] != [3]float64{-0.5, -1, 1} {
		t.Errorf("F[1] = %v, want opposite of F[0]", acc.F[1])
	}
	if acc.Tally.Energy != -1.25 {
		t.Errorf("energy = %g, want -1.25", acc.Tally.Energy)
	}
	wantV := [6]float64{0.5, 2, 2, 1, -1, -2}
	if acc.Tally.Virial != wantV {
		t.Errorf("virial = %v, want %v", acc.Tally.Virial, wantV)
	}
}

func TestAccumulator_GhostWithoutNewton(t *testing.T) {
	acc := NewAccumulator(make([][3]float64, 2), 1, false)
	del := [3]float64{1, 0, 0}

	acc.Add(0, 1, del, 2, 4)

	if acc.F[0] != [3]float64{2, 0, 0} {
		t.Errorf("F[0] = %v", acc.F[0])
	}
	if acc.F[1] != [3]float64{} {
		t.Errorf("ghost force should not be written without newton, got %v", acc.F[1])
	}
	if acc.Tally.Energy != 2 {
		t.Errorf("energy = %g, want half of 4", acc.Tally.Energy)
	}
	if acc.Tally.Virial[VXX] != 1 {
		t.Errorf("virial xx = %g, want half of 2", acc.Tally.Virial[VXX])
	}
}

func TestAccumulator_GhostWithNewton(t *testing.T) {
	acc := NewAccumulator(make([][3]float64, 2), 1, true)
	acc.Add(0, 1, [3]float64{0, 1, 0}, 3, 1)

	if acc.F[1] != [3]float64{0, -3, 0} {
		t.Errorf("ghost force should be written with newton, got %v", acc.F[1])
	}
	if acc.Tally.Energy != 1 {
		t.Errorf("energy = %g, want full tally with newton", acc.Tally.Energy)
	}
}

func TestAccumulator_FlagsAndZero(t *testing.T) {
	acc := NewAccumulator(make([][3]float64, 2), 2, true)
	acc.EFlag = false
	acc.VFlag = false
	acc.Add(0, 1, [3]float64{1, 1, 1}, 1, 9)

	if acc.Tally != (Tally{}) {
		t.Errorf("tally should be empty with flags off, got %+v", acc.Tally)
	}
	acc.Zero()
	if acc.F[0] != [3]float64{} || acc.F[1] != [3]float64{} {
		t.Error("Zero should clear forces")
	}
}

func TestTallyCheck(t *testing.T) {
	if err := (Tally{Energy: 1}).Check(); err != nil {
		t.Errorf("finite tally: %v", err)
	}

	tl := Tally{}
	tl.Virial[VYZ] = math.Inf(1)
	err := tl.Check()
	var nerr *NumericError
	if !errors.As(err, &nerr) || nerr.Quantity != "virial yz" {
		t.Errorf("expected virial yz numeric error, got %v", err)
	}
	if !errors.Is(err, ErrNumericDomain) {
		t.Error("numeric error should unwrap to ErrNumericDomain")
	}

	acc := NewAccumulator([][3]float64{{0, math.NaN(), 0}}, 1, true)
	if err := acc.CheckForces(); !errors.Is(err, ErrNumericDomain) {
		t.Errorf("expected numeric domain error, got %v", err)
	}
}
