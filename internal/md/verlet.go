package md

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/ljeopp/internal/pair"
)

type Config struct {
	Dt    float64
	Steps int
	// SampleEvery records energies every n steps; step 0 and the last
	// step are always recorded.
	SampleEvery   int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.002,
		Steps:         1000,
		SampleEvery:   10,
		ValidateState: true,
	}
}

func (c Config) validate() error {
	if !(c.Dt > 0) {
		return boundsErr("dt must be positive, got %g", c.Dt)
	}
	if c.Steps < 0 {
		return boundsErr("steps must be >= 0, got %d", c.Steps)
	}
	if c.SampleEvery < 0 {
		return boundsErr("sample interval must be >= 0, got %d", c.SampleEvery)
	}
	return nil
}

type Result struct {
	StepsTaken int
	Times      []float64
	Kinetic    []float64
	Potential  []float64
	Total      []float64
	Final      *Snapshot
	Metrics    map[string]float64
}

// EnergyStats returns the mean and standard deviation of the sampled total
// energy.
func (r *Result) EnergyStats() (mean, std float64) {
	switch len(r.Total) {
	case 0:
		return 0, 0
	case 1:
		return r.Total[0], 0
	}
	return stat.MeanStdDev(r.Total, nil)
}

// Verlet is a velocity-Verlet integrator over a ForceField.
type Verlet struct {
	metrics []Metric
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Name() string { return "verlet" }

func (v *Verlet) AddMetric(m Metric) { v.metrics = append(v.metrics, m) }

// Run advances sys in place for cfg.Steps steps.
func (v *Verlet) Run(ctx context.Context, ff *ForceField, sys *System, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := pair.CheckIntegrator(v); err != nil {
		return nil, err
	}
	for i, t := range sys.Type {
		if t >= len(sys.Mass) || !(sys.Mass[t] > 0) {
			return nil, boundsErr("atom %d: type %d has no positive mass", i, t)
		}
	}

	for _, m := range v.metrics {
		m.Reset()
	}
	result := &Result{Metrics: make(map[string]float64)}

	snap, err := ff.Compute(ctx, sys)
	if err != nil {
		return nil, &SimulationError{Step: 0, Wrapped: err}
	}

	record := func(step int, s *Snapshot) {
		t := float64(step) * cfg.Dt
		ke := sys.KineticEnergy()
		pe := s.Tally.Energy
		result.Times = append(result.Times, t)
		result.Kinetic = append(result.Kinetic, ke)
		result.Potential = append(result.Potential, pe)
		result.Total = append(result.Total, ke+pe)
		for _, m := range v.metrics {
			m.Observe(t, ke, pe)
		}
	}
	record(0, snap)

	halfDt := 0.5 * cfg.Dt
	for step := 1; step <= cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			result.Final = snap
			return result, ctx.Err()
		default:
		}

		for i := range sys.X {
			inv := halfDt / sys.Mass[sys.Type[i]]
			for d := 0; d < 3; d++ {
				sys.V[i][d] += inv * snap.Forces[i][d]
				sys.X[i][d] += cfg.Dt * sys.V[i][d]
			}
		}
		sys.Wrap()

		snap, err = ff.Compute(ctx, sys)
		if err != nil {
			return result, &SimulationError{Step: step, Time: float64(step) * cfg.Dt, Wrapped: err}
		}
		for i := range sys.V {
			inv := halfDt / sys.Mass[sys.Type[i]]
			for d := 0; d < 3; d++ {
				sys.V[i][d] += inv * snap.Forces[i][d]
			}
		}

		if cfg.ValidateState && !sys.IsValid() {
			return result, &SimulationError{Step: step, Time: float64(step) * cfg.Dt, Wrapped: ErrInvalidState}
		}
		result.StepsTaken++

		if step == cfg.Steps || (cfg.SampleEvery > 0 && step%cfg.SampleEvery == 0) {
			record(step, snap)
		}
	}

	result.Final = snap
	for _, m := range v.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

func (r *Result) String() string {
	mean, std := r.EnergyStats()
	return fmt.Sprintf("steps=%d samples=%d energy=%.6g±%.3g", r.StepsTaken, len(r.Total), mean, std)
}
