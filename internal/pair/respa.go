package pair

// Integrator is the host time integrator as seen at style init.
type Integrator interface {
	Name() string
}

// LevelCutoffs is implemented by multi-timescale integrators that split
// pair forces by distance. ok is false when the level is not in use.
type LevelCutoffs interface {
	InnerCutoff() (cut [2]float64, ok bool)
	MiddleCutoff() (cut [2]float64, ok bool)
}

// CheckIntegrator rejects integrators that would need split inner, middle
// or outer passes, which this style does not provide.
func CheckIntegrator(integ Integrator) error {
	lc, ok := integ.(LevelCutoffs)
	if !ok {
		return nil
	}
	if _, inner := lc.InnerCutoff(); inner {
		return configErr("init_style", 0, 0, "integrator %s requests inner/outer pair levels, which lj/eopp does not implement", integ.Name())
	}
	if _, middle := lc.MiddleCutoff(); middle {
		return configErr("init_style", 0, 0, "integrator %s requests a middle pair level, which lj/eopp does not implement", integ.Name())
	}
	return nil
}
