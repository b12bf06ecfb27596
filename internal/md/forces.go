package md

import (
	"context"
	"fmt"

	"github.com/san-kum/ljeopp/internal/pair"
)

// ForceField evaluates a pair table on a System.
type ForceField struct {
	table   *pair.Table
	cutoff  float64
	newton  bool
	workers int
	pool    *pair.ForcePool
}

// NewForceField initializes tbl and keeps its largest cutoff for list
// building. workers <= 1 runs the serial pass.
func NewForceField(tbl *pair.Table, newton bool, workers int) (*ForceField, error) {
	cutmax, err := tbl.Init()
	if err != nil {
		return nil, fmt.Errorf("init pair table: %w", err)
	}
	return &ForceField{table: tbl, cutoff: cutmax, newton: newton, workers: workers}, nil
}

func (ff *ForceField) Table() *pair.Table { return ff.table }
func (ff *ForceField) Cutoff() float64    { return ff.cutoff }
func (ff *ForceField) Newton() bool       { return ff.newton }
func (ff *ForceField) Workers() int       { return ff.workers }

// Snapshot is the result of one force evaluation.
type Snapshot struct {
	Forces [][3]float64
	Tally  pair.Tally
	Pairs  int
	Ghosts int
}

// Compute runs one neighbor build and force pass over sys.
func (ff *ForceField) Compute(ctx context.Context, sys *System) (*Snapshot, error) {
	for i, t := range sys.Type {
		if t < 1 || t > ff.table.NumTypes() {
			return nil, boundsErr("atom %d has type %d outside 1..%d", i, t, ff.table.NumTypes())
		}
	}
	frame, err := sys.Frame(ff.cutoff)
	if err != nil {
		return nil, err
	}
	list := frame.HalfList(ff.cutoff, ff.newton)

	f := make([][3]float64, len(frame.Atoms.X))
	acc := pair.NewAccumulator(f, frame.Atoms.NLocal, ff.newton)

	if ff.workers > 1 {
		if ff.pool == nil || ff.pool.Size() != len(f) {
			ff.pool = pair.NewForcePool(len(f))
		}
		err = ff.table.ComputeParallel(ctx, &frame.Atoms, list, acc, ff.workers, ff.pool)
	} else {
		err = ff.table.Compute(&frame.Atoms, list, acc)
	}
	if err != nil {
		return nil, err
	}

	if ff.newton {
		f = frame.ReverseComm(f)
	} else {
		f = f[:frame.Atoms.NLocal]
	}
	for i := range f {
		for d := 0; d < 3; d++ {
			if bad(f[i][d]) {
				return nil, &pair.NumericError{Quantity: "force", Value: f[i][d]}
			}
		}
	}
	if err := acc.Tally.Check(); err != nil {
		return nil, err
	}

	return &Snapshot{
		Forces: f,
		Tally:  acc.Tally,
		Pairs:  list.NumPairs(),
		Ghosts: len(frame.Ghosts),
	}, nil
}

// Pressure returns the instantaneous pressure from the kinetic energy and
// the virial trace.
func Pressure(sys *System, tally pair.Tally) float64 {
	vol := sys.Box * sys.Box * sys.Box
	trace := tally.Virial[pair.VXX] + tally.Virial[pair.VYY] + tally.Virial[pair.VZZ]
	return (2*sys.KineticEnergy() + trace) / (3 * vol)
}
