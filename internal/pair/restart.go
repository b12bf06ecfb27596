package pair

import (
	"encoding/binary"
	"fmt"
	"io"
)

// OffsetFlag values of the restart header.
const (
	offsetNone   int32 = 0
	offsetShift  int32 = 1
	offsetLegacy int32 = 2
)

// restartSettings mirrors the settings header of the restart record.
type restartSettings struct {
	Cutoff     float64
	OffsetFlag int32
	MixFlag    int32
	TailFlag   int32
}

// restartPair is written after the setflag of every set pair i <= j.
type restartPair struct {
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

var byteOrder = binary.LittleEndian

func offsetFlag(s Settings) int32 {
	switch {
	case !s.Shift:
		return offsetNone
	case s.LegacyZeroOffset:
		return offsetLegacy
	default:
		return offsetShift
	}
}

func boolFlag(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// WriteRestart writes the settings and every explicitly set pair. Derived
// coefficients and mixed pairs are not written; Init must run after
// ReadRestart.
func (t *Table) WriteRestart(w io.Writer) error {
	hdr := restartSettings{
		Cutoff:     t.settings.Cutoff,
		OffsetFlag: offsetFlag(t.settings),
		MixFlag:    int32(t.settings.Mix),
	}
	if err := binary.Write(w, byteOrder, hdr); err != nil {
		return fmt.Errorf("write restart settings: %w", err)
	}

	for i := 1; i <= t.ntypes; i++ {
		for j := i; j <= t.ntypes; j++ {
			p := t.params[t.index(i, j)]
			if err := binary.Write(w, byteOrder, boolFlag(p.Set)); err != nil {
				return fmt.Errorf("write restart setflag %d %d: %w", i, j, err)
			}
			if !p.Set {
				continue
			}
			rec := restartPair{
				Epsilon: p.Epsilon, Sigma: p.Sigma, Cutoff: p.Cutoff,
				C1: p.C1, N1: p.N1, C2: p.C2, N2: p.N2,
				KStar: p.KStar, PhiStar: p.PhiStar,
			}
			if err := binary.Write(w, byteOrder, rec); err != nil {
				return fmt.Errorf("write restart pair %d %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// ReadRestart rebuilds a table for ntypes types from a WriteRestart record.
// The returned table is not initialized.
func ReadRestart(r io.Reader, ntypes int) (*Table, error) {
	var hdr restartSettings
	if err := binary.Read(r, byteOrder, &hdr); err != nil {
		return nil, fmt.Errorf("read restart settings: %w", err)
	}
	if hdr.TailFlag != 0 {
		return nil, configErr("restart", 0, 0, "tail corrections are not supported")
	}
	if hdr.OffsetFlag < offsetNone || hdr.OffsetFlag > offsetLegacy {
		return nil, configErr("restart", 0, 0, "unknown offset flag %d", hdr.OffsetFlag)
	}

	t, err := NewTable(ntypes, Settings{
		Cutoff:           hdr.Cutoff,
		Shift:            hdr.OffsetFlag != offsetNone,
		Mix:              MixMode(hdr.MixFlag),
		LegacyZeroOffset: hdr.OffsetFlag == offsetLegacy,
	})
	if err != nil {
		return nil, err
	}

	for i := 1; i <= ntypes; i++ {
		for j := i; j <= ntypes; j++ {
			var set int32
			if err := binary.Read(r, byteOrder, &set); err != nil {
				return nil, fmt.Errorf("read restart setflag %d %d: %w", i, j, err)
			}
			if set == 0 {
				continue
			}
			var rec restartPair
			if err := binary.Read(r, byteOrder, &rec); err != nil {
				return nil, fmt.Errorf("read restart pair %d %d: %w", i, j, err)
			}
			t.params[t.index(i, j)] = Params{
				Epsilon: rec.Epsilon, Sigma: rec.Sigma, Cutoff: rec.Cutoff,
				C1: rec.C1, N1: rec.N1, C2: rec.C2, N2: rec.N2,
				KStar: rec.KStar, PhiStar: rec.PhiStar,
				Set: true,
			}
		}
	}
	return t, nil
}
