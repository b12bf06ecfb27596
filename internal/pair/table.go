package pair

import (
	"math"
)

// Settings are the pair style's global options.
type Settings struct {
	Cutoff float64
	Shift  bool
	Mix    MixMode
	// LegacyZeroOffset reproduces the historical pair style, which computed
	// the cutoff offset and then discarded it.
	LegacyZeroOffset bool
}

func DefaultSettings() Settings {
	return Settings{Cutoff: 10.0, Mix: MixGeometric}
}

// Coeff is one pair_coeff line. A zero Cutoff means the global cutoff.
type Coeff struct {
	Epsilon float64
	Sigma   float64
	Cutoff  float64
	C1      float64
	N1      float64
	C2      float64
	N2      float64
	KStar   float64
	PhiStar float64
}

// Params are the stored raw coefficients of one type pair. Epsilon and
// Sigma are the legacy scales used only by mixing and the restart record.
type Params struct {
	Epsilon float64
	Sigma   float64
	Cutoff  float64
	C1      float64
	N1      float64
	C2      float64
	N2      float64
	KStar   float64
	PhiStar float64
	Set     bool
}

// Derived holds everything the kernel reads for one type pair.
type Derived struct {
	ForceCoeffA  float64 // n1*c1
	ForceCoeffB  float64 // n2*c2
	EnergyCoeffA float64 // c1
	EnergyCoeffB float64 // c2
	N1           float64
	N2           float64
	KStar        float64
	PhiStar      float64
	EnergyOffset float64
	Cutoff       float64
	CutSq        float64
}

// Table is the coefficient store for ntypes particle types. Only the
// canonical i <= j entry is stored; lookups normalize the order.
type Table struct {
	ntypes   int
	settings Settings
	mixer    Mixer
	params   []Params
	derived  []Derived
	ready    bool
}

func NewTable(ntypes int, s Settings) (*Table, error) {
	if ntypes < 1 {
		return nil, configErr("allocate", 0, 0, "need at least one atom type, got %d", ntypes)
	}
	if err := checkSettings(s); err != nil {
		return nil, err
	}
	return &Table{
		ntypes:   ntypes,
		settings: s,
		mixer:    NewMixer(s.Mix),
		params:   make([]Params, ntypes*ntypes),
		derived:  make([]Derived, ntypes*ntypes),
	}, nil
}

func checkSettings(s Settings) error {
	if !(s.Cutoff > 0) || math.IsInf(s.Cutoff, 0) {
		return configErr("settings", 0, 0, "global cutoff must be positive and finite, got %g", s.Cutoff)
	}
	if _, ok := mixNames[s.Mix]; !ok {
		return configErr("settings", 0, 0, "unknown mixing mode %d", int(s.Mix))
	}
	return nil
}

func (t *Table) NumTypes() int      { return t.ntypes }
func (t *Table) Settings() Settings { return t.settings }

// Ready reports whether derived coefficients are current.
func (t *Table) Ready() bool { return t.ready }

func (t *Table) index(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return (i-1)*t.ntypes + (j - 1)
}

func (t *Table) check(op string, i, j int) error {
	if i < 1 || i > t.ntypes || j < 1 || j > t.ntypes {
		return configErr(op, i, j, "atom type out of range [1,%d]", t.ntypes)
	}
	return nil
}

// SetCutoff changes the global cutoff. As with the pair_style
// command, every explicitly set pair is reset to the new global value.
func (t *Table) SetCutoff(cut float64) error {
	s := t.settings
	s.Cutoff = cut
	if err := checkSettings(s); err != nil {
		return err
	}
	t.settings = s
	for i := 1; i <= t.ntypes; i++ {
		for j := i; j <= t.ntypes; j++ {
			p := &t.params[t.index(i, j)]
			if p.Set {
				p.Cutoff = cut
			}
		}
	}
	t.ready = false
	return nil
}

func (t *Table) SetShift(shift bool) {
	t.settings.Shift = shift
	t.ready = false
}

func (t *Table) SetLegacyZeroOffset(legacy bool) {
	t.settings.LegacyZeroOffset = legacy
	t.ready = false
}

// SetMixMode selects one of the standard rules.
func (t *Table) SetMixMode(mode MixMode) error {
	s := t.settings
	s.Mix = mode
	if err := checkSettings(s); err != nil {
		return err
	}
	t.settings = s
	t.mixer = NewMixer(mode)
	t.ready = false
	return nil
}

// SetMixer injects a host-provided mixing rule.
func (t *Table) SetMixer(m Mixer) {
	t.mixer = m
	t.ready = false
}

// SetCoeff marks (i,j) as explicitly configured.
func (t *Table) SetCoeff(i, j int, c Coeff) error {
	if err := t.check("coeff", i, j); err != nil {
		return err
	}
	if err := checkCoeff(i, j, c); err != nil {
		return err
	}
	cut := c.Cutoff
	if cut == 0 {
		cut = t.settings.Cutoff
	}
	t.params[t.index(i, j)] = Params{
		Epsilon: c.Epsilon,
		Sigma:   c.Sigma,
		Cutoff:  cut,
		C1:      c.C1,
		N1:      c.N1,
		C2:      c.C2,
		N2:      c.N2,
		KStar:   c.KStar,
		PhiStar: c.PhiStar,
		Set:     true,
	}
	t.ready = false
	return nil
}

// SetCoeffRange applies c to every pair with ilo <= i <= ihi and
// max(jlo,i) <= j <= jhi and returns the number of pairs set.
func (t *Table) SetCoeffRange(ilo, ihi, jlo, jhi int, c Coeff) (int, error) {
	count := 0
	for i := ilo; i <= ihi; i++ {
		for j := max(jlo, i); j <= jhi; j++ {
			if err := t.SetCoeff(i, j, c); err != nil {
				return count, err
			}
			count++
		}
	}
	if count == 0 {
		return 0, configErr("coeff", 0, 0, "incorrect args for pair coefficients: types %d*%d %d*%d select no pair", ilo, ihi, jlo, jhi)
	}
	return count, nil
}

func checkCoeff(i, j int, c Coeff) error {
	vals := []struct {
		name string
		v    float64
	}{
		{"epsilon", c.Epsilon}, {"sigma", c.Sigma}, {"cutoff", c.Cutoff},
		{"c1", c.C1}, {"n1", c.N1}, {"c2", c.C2}, {"n2", c.N2},
		{"kstar", c.KStar}, {"phistar", c.PhiStar},
	}
	for _, f := range vals {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return configErr("coeff", i, j, "%s must be finite, got %g", f.name, f.v)
		}
	}
	if c.Cutoff < 0 {
		return configErr("coeff", i, j, "cutoff must not be negative, got %g", c.Cutoff)
	}
	return nil
}

// Params returns the raw coefficients of (i,j) in either order.
func (t *Table) Params(i, j int) (Params, error) {
	if err := t.check("params", i, j); err != nil {
		return Params{}, err
	}
	return t.params[t.index(i, j)], nil
}

// Derived returns the kernel coefficients of (i,j) in either order.
func (t *Table) Derived(i, j int) (Derived, error) {
	if err := t.check("derived", i, j); err != nil {
		return Derived{}, err
	}
	if !t.ready {
		return Derived{}, configErr("derived", i, j, "pair coefficients not initialized")
	}
	return t.derived[t.index(i, j)], nil
}

// at is the unchecked lookup used inside compute passes.
func (t *Table) at(i, j int) *Derived {
	return &t.derived[t.index(i, j)]
}

// Reset clears every pair back to unset.
func (t *Table) Reset() {
	for k := range t.params {
		t.params[k] = Params{}
		t.derived[k] = Derived{}
	}
	t.ready = false
}
