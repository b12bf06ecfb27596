package md

import "math"

// Metric observes the energy of every sampled step.
type Metric interface {
	Name() string
	Observe(t, kinetic, potential float64)
	Value() float64
	Reset()
}

// MeanEnergy averages the total energy over the observed samples.
type MeanEnergy struct {
	total   float64
	samples int
}

func NewMeanEnergy() *MeanEnergy { return &MeanEnergy{} }

func (e *MeanEnergy) Name() string { return "mean_energy" }

func (e *MeanEnergy) Observe(t, kinetic, potential float64) {
	e.total += kinetic + potential
	e.samples++
}

func (e *MeanEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *MeanEnergy) Reset() {
	e.total = 0
	e.samples = 0
}

// EnergyDrift tracks the largest relative deviation of the total energy
// from its first sample.
type EnergyDrift struct {
	initialEnergy float64
	maxDrift      float64
	samples       int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(t, kinetic, potential float64) {
	energy := kinetic + potential
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
