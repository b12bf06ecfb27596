package pair

import (
	"errors"
	"testing"
)

type plainIntegrator struct{}

func (plainIntegrator) Name() string { return "verlet" }

type respaIntegrator struct {
	inner, middle bool
}

func (r respaIntegrator) Name() string { return "respa" }
func (r respaIntegrator) InnerCutoff() ([2]float64, bool) {
	return [2]float64{2, 2.5}, r.inner
}
func (r respaIntegrator) MiddleCutoff() ([2]float64, bool) {
	return [2]float64{4, 4.5}, r.middle
}

func TestCheckIntegrator(t *testing.T) {
	if err := CheckIntegrator(plainIntegrator{}); err != nil {
		t.Errorf("plain integrator: %v", err)
	}
	if err := CheckIntegrator(respaIntegrator{}); err != nil {
		t.Errorf("respa without levels: %v", err)
	}
	if err := CheckIntegrator(respaIntegrator{inner: true}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("inner level: expected configuration error, got %v", err)
	}
	if err := CheckIntegrator(respaIntegrator{middle: true}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("middle level: expected configuration error, got %v", err)
	}
}
