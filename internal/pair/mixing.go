package pair

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// MixMode selects the rule used to fill unset unlike pairs.
type MixMode int

const (
	MixGeometric MixMode = iota
	MixArithmetic
	MixSixthPower
)

var mixNames = map[MixMode]string{
	MixGeometric:  "geometric",
	MixArithmetic: "arithmetic",
	MixSixthPower: "sixthpower",
}

func (m MixMode) String() string {
	if name, ok := mixNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMixMode maps a configuration keyword to a MixMode.
func ParseMixMode(s string) (MixMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for mode, name := range mixNames {
		if name == key {
			return mode, nil
		}
	}
	return 0, configErr("mix", 0, 0, "unknown mixing mode %q (available: %v)", s, MixModes())
}

// MixModes lists the known mixing keywords in sorted order.
func MixModes() []string {
	names := make([]string, 0, len(mixNames))
	for _, name := range mixNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mixer combines like-pair scales into unlike-pair scales. The host owns
// the choice of rule; Table only calls through this interface.
type Mixer interface {
	MixEnergy(eps1, eps2, sig1, sig2 float64) float64
	MixDistance(sig1, sig2 float64) float64
}

type ruleMixer struct {
	mode MixMode
}

// NewMixer returns the mixer for one of the standard rules.
func NewMixer(mode MixMode) Mixer {
	return ruleMixer{mode: mode}
}

func (m ruleMixer) MixEnergy(eps1, eps2, sig1, sig2 float64) float64 {
	if m.mode == MixSixthPower {
		s13 := math.Pow(sig1, 3)
		s23 := math.Pow(sig2, 3)
		return 2.0 * math.Sqrt(eps1*eps2) * s13 * s23 / (s13*s13 + s23*s23)
	}
	return math.Sqrt(eps1 * eps2)
}

func (m ruleMixer) MixDistance(sig1, sig2 float64) float64 {
	switch m.mode {
	case MixArithmetic:
		return 0.5 * (sig1 + sig2)
	case MixSixthPower:
		return math.Pow(0.5*(math.Pow(sig1, 6)+math.Pow(sig2, 6)), 1.0/6.0)
	default:
		return math.Sqrt(sig1 * sig2)
	}
}

// mixPair fills the unlike pair (i,j) from the like pairs ii and jj.
// Amplitudes keep their common sign and mix on magnitude; exponents and the
// oscillator's wave number and phase use the arithmetic mean. The cutoff is
// the larger of the two like-pair cutoffs.
func mixPair(m Mixer, i, j int, pi, pj Params) (Params, error) {
	if rm, ok := m.(ruleMixer); ok && rm.mode == MixSixthPower && !(pi.Sigma > 0 && pj.Sigma > 0) {
		return Params{}, configErr("mix", i, j, "sixthpower mixing needs positive like-pair sigma, got %g and %g", pi.Sigma, pj.Sigma)
	}
	out := Params{
		Epsilon: m.MixEnergy(pi.Epsilon, pj.Epsilon, pi.Sigma, pj.Sigma),
		Sigma:   m.MixDistance(pi.Sigma, pj.Sigma),
		Cutoff:  math.Max(pi.Cutoff, pj.Cutoff),
		N1:      0.5 * (pi.N1 + pj.N1),
		N2:      0.5 * (pi.N2 + pj.N2),
		KStar:   0.5 * (pi.KStar + pj.KStar),
		PhiStar: 0.5 * (pi.PhiStar + pj.PhiStar),
	}

	var err error
	if out.C1, err = mixAmplitude(m, pi.C1, pj.C1, pi.Sigma, pj.Sigma); err != nil {
		return out, configErr("mix", i, j, "c1: %v", err)
	}
	if out.C2, err = mixAmplitude(m, pi.C2, pj.C2, pi.Sigma, pj.Sigma); err != nil {
		return out, configErr("mix", i, j, "c2: %v", err)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"epsilon", out.Epsilon}, {"sigma", out.Sigma}, {"c1", out.C1}, {"c2", out.C2}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return out, configErr("mix", i, j, "mixing rule gave non-finite %s from like-pair sigma %g and %g", f.name, pi.Sigma, pj.Sigma)
		}
	}
	return out, nil
}

var errOppositeSign = errors.New("cannot mix amplitudes of opposite sign")

func mixAmplitude(m Mixer, a, b, sig1, sig2 float64) (float64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if math.Signbit(a) != math.Signbit(b) {
		return 0, errOppositeSign
	}
	mag := m.MixEnergy(math.Abs(a), math.Abs(b), sig1, sig2)
	return math.Copysign(mag, a), nil
}
