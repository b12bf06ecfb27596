package pair

import (
	"errors"
	"testing"
)

func TestNewTable_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		ntypes int
		s      Settings
	}{
		{"no types", 0, DefaultSettings()},
		{"zero cutoff", 1, Settings{Cutoff: 0}},
		{"negative cutoff", 1, Settings{Cutoff: -1}},
		{"unknown mix", 1, Settings{Cutoff: 1, Mix: MixMode(7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.ntypes, tt.s); !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected configuration error, got %v", err)
			}
		})
	}
}

func TestTable_OutOfRangeTypes(t *testing.T) {
	tbl, _ := NewTable(2, DefaultSettings())

	pairs := [][2]int{{0, 1}, {1, 3}, {3, 3}, {-1, 2}}
	for _, p := range pairs {
		if err := tbl.SetCoeff(p[0], p[1], doublePower()); !errors.Is(err, ErrConfiguration) {
			t.Errorf("SetCoeff%v: expected configuration error, got %v", p, err)
		}
		if _, err := tbl.Params(p[0], p[1]); !errors.Is(err, ErrConfiguration) {
			t.Errorf("Params%v: expected configuration error, got %v", p, err)
		}
	}
}

func TestTable_SymmetricStorage(t *testing.T) {
	tbl, _ := NewTable(3, DefaultSettings())
	c := doublePower()
	c.Cutoff = 4
	if err := tbl.SetCoeff(3, 1, c); err != nil {
		t.Fatalf("set coeff: %v", err)
	}

	a, _ := tbl.Params(1, 3)
	b, _ := tbl.Params(3, 1)
	if a != b || !a.Set || a.Cutoff != 4 {
		t.Errorf("Params(1,3)=%+v Params(3,1)=%+v", a, b)
	}
}

func TestTable_SetCoeffRange(t *testing.T) {
	tbl, _ := NewTable(3, DefaultSettings())

	n, err := tbl.SetCoeffRange(1, 3, 1, 3, doublePower())
	if err != nil {
		t.Fatalf("set range: %v", err)
	}
	if n != 6 {
		t.Errorf("expected 6 pairs, got %d", n)
	}

	if _, err := tbl.SetCoeffRange(3, 3, 1, 2, doublePower()); !errors.Is(err, ErrConfiguration) {
		t.Errorf("empty range: expected configuration error, got %v", err)
	}
}

func TestTable_SetCoeffRejectsBadValues(t *testing.T) {
	tbl, _ := NewTable(1, DefaultSettings())

	c := doublePower()
	c.Cutoff = -2
	if err := tbl.SetCoeff(1, 1, c); !errors.Is(err, ErrConfiguration) {
		t.Errorf("negative cutoff: expected configuration error, got %v", err)
	}
}

func TestTable_SetCutoffResetsExplicitPairs(t *testing.T) {
	tbl, _ := NewTable(2, Settings{Cutoff: 10})
	c := doublePower()
	c.Cutoff = 4
	tbl.SetCoeff(1, 1, c)

	if err := tbl.SetCutoff(7); err != nil {
		t.Fatalf("set cutoff: %v", err)
	}
	p, _ := tbl.Params(1, 1)
	if p.Cutoff != 7 {
		t.Errorf("explicit pair cutoff = %g, want 7", p.Cutoff)
	}
	unset, _ := tbl.Params(2, 2)
	if unset.Cutoff != 0 {
		t.Errorf("unset pair cutoff = %g, want 0", unset.Cutoff)
	}
	if err := tbl.SetCutoff(0); !errors.Is(err, ErrConfiguration) {
		t.Errorf("zero cutoff: expected configuration error, got %v", err)
	}
}

func TestTable_Reset(t *testing.T) {
	tbl, _ := NewTable(1, DefaultSettings())
	tbl.SetCoeff(1, 1, doublePower())
	tbl.Init()
	tbl.Reset()

	p, _ := tbl.Params(1, 1)
	if p.Set || tbl.Ready() {
		t.Error("reset should clear params and readiness")
	}
}

func TestExtract(t *testing.T) {
	tbl, _ := NewTable(2, DefaultSettings())
	tbl.SetCoeff(1, 2, Coeff{Epsilon: 0.5, Sigma: 1.1, C1: 7})

	eps, ok := tbl.Extract("epsilon")
	if !ok {
		t.Fatal("epsilon should be extractable")
	}
	if len(eps) != 3 || eps[1][2] != 0.5 || eps[2][1] != 0.5 {
		t.Errorf("unexpected epsilon matrix %v", eps)
	}
	c1, _ := tbl.Extract("c1")
	if c1[2][1] != 7 {
		t.Errorf("c1[2][1] = %g, want 7", c1[2][1])
	}
	if _, ok := tbl.Extract("lj1"); ok {
		t.Error("unknown name should not be extractable")
	}
}
