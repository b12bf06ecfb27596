package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ljeopp/internal/pair"
)

const (
	DefaultNTypes  = 1
	DefaultCutoff  = 10.0
	DefaultMix     = "geometric"
	DefaultWorkers = 4
)

type Config struct {
	NTypes           int           `yaml:"ntypes"`
	Cutoff           float64       `yaml:"cutoff"`
	Shift            bool          `yaml:"shift"`
	Mix              string        `yaml:"mix"`
	LegacyZeroOffset bool          `yaml:"legacy_zero_offset"`
	Newton           bool          `yaml:"newton"`
	Workers          int           `yaml:"workers"`
	Coeffs           []CoeffConfig `yaml:"coeffs"`
}

// CoeffConfig is one pair_coeff entry. Types holds the i and j ranges.
type CoeffConfig struct {
	Types   []string `yaml:"types"`
	Epsilon float64  `yaml:"epsilon"`
	Sigma   float64  `yaml:"sigma"`
	Cutoff  float64  `yaml:"cutoff,omitempty"`
	C1      float64  `yaml:"c1"`
	N1      float64  `yaml:"n1"`
	C2      float64  `yaml:"c2"`
	N2      float64  `yaml:"n2"`
	KStar   float64  `yaml:"kstar"`
	PhiStar float64  `yaml:"phistar"`
}

func (c CoeffConfig) coeff() pair.Coeff {
	return pair.Coeff{
		Epsilon: c.Epsilon, Sigma: c.Sigma, Cutoff: c.Cutoff,
		C1: c.C1, N1: c.N1, C2: c.C2, N2: c.N2,
		KStar: c.KStar, PhiStar: c.PhiStar,
	}
}

func DefaultConfig() *Config {
	return &Config{
		NTypes:  DefaultNTypes,
		Cutoff:  DefaultCutoff,
		Mix:     DefaultMix,
		Newton:  true,
		Workers: DefaultWorkers,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bounds parses a type range against nmax: "N", "*", "N*", "*M" or "N*M".
func Bounds(s string, nmax int) (lo, hi int, err error) {
	s = strings.TrimSpace(s)
	bad := func() (int, int, error) {
		return 0, 0, &pair.ConfigError{Op: "coeff", Msg: fmt.Sprintf("invalid type range %q for %d types", s, nmax)}
	}

	star := strings.IndexByte(s, '*')
	if star < 0 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return bad()
		}
		lo, hi = n, n
	} else {
		lo, hi = 1, nmax
		if head := s[:star]; head != "" {
			if lo, err = strconv.Atoi(head); err != nil {
				return bad()
			}
		}
		if tail := s[star+1:]; tail != "" {
			if hi, err = strconv.Atoi(tail); err != nil {
				return bad()
			}
		}
	}
	if lo < 1 || hi > nmax || lo > hi {
		return bad()
	}
	return lo, hi, nil
}

func (c *Config) Settings() (pair.Settings, error) {
	mode, err := pair.ParseMixMode(c.Mix)
	if err != nil {
		return pair.Settings{}, err
	}
	return pair.Settings{
		Cutoff:           c.Cutoff,
		Shift:            c.Shift,
		Mix:              mode,
		LegacyZeroOffset: c.LegacyZeroOffset,
	}, nil
}

func (c *Config) Validate() error {
	if c.NTypes < 1 {
		return &pair.ConfigError{Op: "config", Msg: fmt.Sprintf("ntypes must be >= 1, got %d", c.NTypes)}
	}
	if !(c.Cutoff > 0) {
		return &pair.ConfigError{Op: "settings", Msg: fmt.Sprintf("global cutoff must be positive, got %g", c.Cutoff)}
	}
	if _, err := pair.ParseMixMode(c.Mix); err != nil {
		return err
	}
	if c.Workers < 0 {
		return &pair.ConfigError{Op: "config", Msg: fmt.Sprintf("workers must be >= 0, got %d", c.Workers)}
	}
	for n, cc := range c.Coeffs {
		if len(cc.Types) != 2 {
			return &pair.ConfigError{Op: "coeff", Msg: fmt.Sprintf("entry %d: types needs two ranges, got %d", n, len(cc.Types))}
		}
		ilo, _, err := Bounds(cc.Types[0], c.NTypes)
		if err != nil {
			return err
		}
		jlo, jhi, err := Bounds(cc.Types[1], c.NTypes)
		if err != nil {
			return err
		}
		if max(jlo, ilo) > jhi {
			return &pair.ConfigError{Op: "coeff", Msg: fmt.Sprintf("entry %d: ranges %s %s match no pair i <= j", n, cc.Types[0], cc.Types[1])}
		}
		if cc.Cutoff < 0 {
			return &pair.ConfigError{Op: "coeff", Msg: fmt.Sprintf("entry %d: cutoff must be >= 0, got %g", n, cc.Cutoff)}
		}
	}
	return nil
}

// Table builds a pair table with every coeff entry applied in order. The
// table still needs Init.
func (c *Config) Table() (*pair.Table, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := c.Settings()
	if err != nil {
		return nil, err
	}
	tbl, err := pair.NewTable(c.NTypes, s)
	if err != nil {
		return nil, err
	}
	for n, cc := range c.Coeffs {
		ilo, ihi, _ := Bounds(cc.Types[0], c.NTypes)
		jlo, jhi, _ := Bounds(cc.Types[1], c.NTypes)
		if _, err := tbl.SetCoeffRange(ilo, ihi, jlo, jhi, cc.coeff()); err != nil {
			return nil, fmt.Errorf("coeff entry %d: %w", n, err)
		}
	}
	return tbl, nil
}

func Apply(cfg *Config) (*pair.Table, error) {
	return cfg.Table()
}
