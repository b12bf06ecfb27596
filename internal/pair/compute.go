package pair

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Atoms is the host's particle view for one pass. Indices >= NLocal are
// ghost copies owned by another domain.
type Atoms struct {
	X      [][3]float64
	Type   []int
	NLocal int
}

// NeighborList pairs each atom in ILocal with its neighbors. Factors, when
// non-nil, carries the special-bond weight of every neighbor entry; a nil
// list means full interaction for all pairs.
type NeighborList struct {
	ILocal    []int
	Neighbors [][]int
	Factors   [][]float64
}

// NumPairs counts neighbor entries.
func (l *NeighborList) NumPairs() int {
	n := 0
	for _, jl := range l.Neighbors {
		n += len(jl)
	}
	return n
}

const (
	minChunk  = 64
	ctxStride = 256
)

func (t *Table) validate(atoms *Atoms, list *NeighborList, acc *Accumulator) error {
	if !t.ready {
		return configErr("compute", 0, 0, "pair coefficients not initialized")
	}
	if len(atoms.Type) != len(atoms.X) {
		return configErr("compute", 0, 0, "%d positions but %d types", len(atoms.X), len(atoms.Type))
	}
	if len(acc.F) < len(atoms.X) {
		return configErr("compute", 0, 0, "force buffer holds %d atoms, need %d", len(acc.F), len(atoms.X))
	}
	if len(list.Neighbors) != len(list.ILocal) {
		return configErr("compute", 0, 0, "neighbor list has %d rows for %d atoms", len(list.Neighbors), len(list.ILocal))
	}
	if list.Factors != nil {
		if len(list.Factors) != len(list.Neighbors) {
			return configErr("compute", 0, 0, "special factors have %d rows for %d atoms", len(list.Factors), len(list.Neighbors))
		}
		for ii := range list.Factors {
			if len(list.Factors[ii]) != len(list.Neighbors[ii]) {
				return configErr("compute", 0, 0, "special factors row %d has %d entries, want %d", ii, len(list.Factors[ii]), len(list.Neighbors[ii]))
			}
		}
	}
	for k, typ := range atoms.Type {
		if typ < 1 || typ > t.ntypes {
			return configErr("compute", 0, 0, "atom %d has type %d outside [1,%d]", k, typ, t.ntypes)
		}
	}
	return nil
}

// Compute runs one serial pass over list, adding into acc. The caller
// zeroes acc between timesteps.
func (t *Table) Compute(atoms *Atoms, list *NeighborList, acc *Accumulator) error {
	if err := t.validate(atoms, list, acc); err != nil {
		return err
	}
	t.pass(atoms, list, 0, len(list.ILocal), acc)
	return nil
}

func (t *Table) pass(atoms *Atoms, list *NeighborList, start, end int, acc *Accumulator) {
	x := atoms.X
	typ := atoms.Type
	wantEnergy := acc.EFlag

	for ii := start; ii < end; ii++ {
		i := list.ILocal[ii]
		xi := x[i]
		itype := typ[i]
		var factors []float64
		if list.Factors != nil {
			factors = list.Factors[ii]
		}

		for jj, j := range list.Neighbors[ii] {
			factor := 1.0
			if factors != nil {
				factor = factors[jj]
			}
			del := [3]float64{xi[0] - x[j][0], xi[1] - x[j][1], xi[2] - x[j][2]}
			rsq := del[0]*del[0] + del[1]*del[1] + del[2]*del[2]
			d := t.at(itype, typ[j])
			if rsq >= d.CutSq {
				continue
			}
			fpair, evdwl := Evaluate(rsq, d, factor, wantEnergy)
			acc.Add(i, j, del, fpair, evdwl)
		}
	}
}

// ComputeParallel splits ILocal into contiguous chunks, one per worker.
// Each worker accumulates into a private buffer from pool; buffers are
// reduced into acc after every worker finished. A canceled ctx aborts the
// whole pass and leaves acc untouched. pool may be nil.
func (t *Table) ComputeParallel(ctx context.Context, atoms *Atoms, list *NeighborList, acc *Accumulator, workers int, pool *ForcePool) error {
	if err := t.validate(atoms, list, acc); err != nil {
		return err
	}
	n := len(list.ILocal)
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.pass(atoms, list, 0, n, acc)
		return nil
	}
	if pool == nil || pool.Size() != len(acc.F) {
		pool = NewForcePool(len(acc.F))
	}

	parts := make([]*Accumulator, 0, workers)
	defer func() {
		for _, p := range parts {
			pool.Put(p.F)
		}
	}()

	chunkSize := (n + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		part := &Accumulator{
			F:      pool.Get(),
			NLocal: acc.NLocal,
			Newton: acc.Newton,
			EFlag:  acc.EFlag,
			VFlag:  acc.VFlag,
		}
		parts = append(parts, part)

		g.Go(func() error {
			for s := start; s < end; s += ctxStride {
				if err := gctx.Err(); err != nil {
					return err
				}
				t.pass(atoms, list, s, min(s+ctxStride, end), part)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range parts {
		for i, f := range p.F {
			acc.F[i][0] += f[0]
			acc.F[i][1] += f[1]
			acc.F[i][2] += f[2]
		}
		acc.Tally.add(p.Tally)
	}
	return nil
}
