package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/ljeopp/internal/pair"
)

func derived(t *testing.T, c pair.Coeff, s pair.Settings) pair.Derived {
	t.Helper()
	tbl, err := pair.NewTable(1, s)
	if err != nil {
		t.Fatal(err)
	}
	if err := tbl.SetCoeff(1, 1, c); err != nil {
		t.Fatal(err)
	}
	if _, err := tbl.Init(); err != nil {
		t.Fatal(err)
	}
	d, err := tbl.Derived(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestTabulate(t *testing.T) {
	d := derived(t, pair.Coeff{C1: 1000, N1: 12, C2: -50, N2: 6}, pair.Settings{Cutoff: 10})

	points, err := Tabulate(&d, 1.5, 3.5, 201)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 201 {
		t.Fatalf("expected 201 points, got %d", len(points))
	}
	if points[0].R != 1.5 || points[200].R != 3.5 {
		t.Errorf("range = [%g, %g]", points[0].R, points[200].R)
	}

	// r_min = 40^(1/6), V_min = -0.625
	well, ok := Minimum(points)
	if !ok {
		t.Fatal("no minimum")
	}
	if math.Abs(well.R-math.Pow(40, 1.0/6)) > 0.01 {
		t.Errorf("minimum at r=%g, want %g", well.R, math.Pow(40, 1.0/6))
	}
	if math.Abs(well.Energy+0.625) > 1e-3 {
		t.Errorf("well depth = %g, want -0.625", well.Energy)
	}
	if len(Energies(points)) != 201 || len(Forces(points)) != 201 {
		t.Error("column lengths mismatch")
	}
}

func TestTabulate_InvalidRange(t *testing.T) {
	d := derived(t, pair.Coeff{C1: 1, N1: 12, C2: -1, N2: 6}, pair.Settings{Cutoff: 5})
	tests := []struct {
		rmin, rmax float64
		n          int
	}{
		{1, 2, 1},
		{0, 2, 10},
		{2, 1, 10},
	}
	for _, tt := range tests {
		if _, err := Tabulate(&d, tt.rmin, tt.rmax, tt.n); err == nil {
			t.Errorf("Tabulate(%g, %g, %d): expected error", tt.rmin, tt.rmax, tt.n)
		}
	}
}

func TestCheckForces(t *testing.T) {
	d := derived(t, pair.Coeff{C1: 1000, N1: 12, C2: -50, N2: 6, KStar: 1.2, PhiStar: 0.4}, pair.Settings{Cutoff: 8, Shift: true})

	var radii []float64
	for r := 1.2; r < 7.9; r += 0.1 {
		radii = append(radii, r)
	}
	checks := CheckForces(&d, radii, 1e-6)
	if len(checks) != len(radii) {
		t.Fatalf("expected %d checks, got %d", len(radii), len(checks))
	}
	if e := MaxRelError(checks); e > 1e-5 {
		t.Errorf("max relative error = %g", e)
	}
	if MaxRelError(nil) != 0 {
		t.Error("empty check should report zero error")
	}
}

func TestDominantWaveNumber(t *testing.T) {
	tests := []struct {
		k, phi, tol float64
	}{
		{2, 0, 0.01},
		{2, 0.7, 0.01},
		{2.1, 0.3, 0.05},
	}
	for _, tt := range tests {
		d := derived(t, pair.Coeff{C1: 1000, N1: 12, C2: -50, N2: 6, KStar: tt.k, PhiStar: tt.phi}, pair.Settings{Cutoff: 40})
		k, err := DominantWaveNumber(&d, 2, 8*math.Pi, 1024)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(k-tt.k) > tt.tol {
			t.Errorf("k=%g phi=%g: estimated %g", tt.k, tt.phi, k)
		}
	}
}

func TestDominantWaveNumber_NoOscillation(t *testing.T) {
	d := derived(t, pair.Coeff{C1: 1000, N1: 12, C2: -50, N2: 6}, pair.Settings{Cutoff: 40})
	k, err := DominantWaveNumber(&d, 2, 8*math.Pi, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if k != 0 {
		t.Errorf("k = %g, want 0", k)
	}

	d = derived(t, pair.Coeff{C1: 1000, N1: 12}, pair.Settings{Cutoff: 40})
	if _, err := DominantWaveNumber(&d, 2, 8*math.Pi, 1024); err == nil {
		t.Error("expected error without an oscillatory term")
	}
}

func TestOscillation(t *testing.T) {
	d := derived(t, pair.Coeff{C1: 1000, N1: 12, C2: -50, N2: 6, KStar: 0.5, PhiStar: 0.2}, pair.Settings{Cutoff: 10, Shift: true})
	for _, r := range []float64{1.5, 3, 7} {
		want := -50 * math.Cos(0.5*r+0.2)
		if got := Oscillation(&d, r); math.Abs(got-want) > 1e-9 {
			t.Errorf("r=%g: %g, want %g", r, got, want)
		}
	}
}
