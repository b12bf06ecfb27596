package config

import "sort"

var Presets = map[string]*Config{
	"double_power": {
		NTypes: 1, Cutoff: 10, Mix: "geometric", Newton: true, Workers: DefaultWorkers,
		Coeffs: []CoeffConfig{
			{Types: []string{"1", "1"}, Epsilon: 1, Sigma: 1, C1: 1000, N1: 12, C2: -50, N2: 6},
		},
	},
	"oscillatory": {
		NTypes: 1, Cutoff: 10, Shift: true, Mix: "geometric", Newton: true, Workers: DefaultWorkers,
		Coeffs: []CoeffConfig{
			{Types: []string{"1", "1"}, Epsilon: 1, Sigma: 1, C1: 1000, N1: 12, C2: -50, N2: 6, KStar: 0.5},
		},
	},
	"friedel": {
		NTypes: 1, Cutoff: 12, Shift: true, Mix: "geometric", Newton: true, Workers: DefaultWorkers,
		Coeffs: []CoeffConfig{
			{Types: []string{"*", "*"}, Epsilon: 1, Sigma: 1, C1: 4, N1: 8, C2: 6, N2: 3, KStar: 2.2, PhiStar: 0.6},
		},
	},
	"binary": {
		NTypes: 2, Cutoff: 9, Shift: true, Mix: "arithmetic", Newton: true, Workers: DefaultWorkers,
		Coeffs: []CoeffConfig{
			{Types: []string{"1", "1"}, Epsilon: 1, Sigma: 1, C1: 1000, N1: 12, C2: -50, N2: 6, KStar: 0.5},
			{Types: []string{"2", "2"}, Epsilon: 0.8, Sigma: 1.1, Cutoff: 7, C1: 600, N1: 10, C2: -30, N2: 5, KStar: 0.9, PhiStar: 0.4},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Coeffs = make([]CoeffConfig, len(p.Coeffs))
	for i, c := range p.Coeffs {
		c.Types = append([]string(nil), c.Types...)
		cfg.Coeffs[i] = c
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
