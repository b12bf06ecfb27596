// Package pair implements the LJ-EOPP pair style: a two-term radial
// potential with an oscillatory tail,
//
//	V(r) = c1/r^n1 + c2/r^n2 * cos(k*r + phi)
//
// The package is split along the phases of a force evaluation:
//
//   - [Table]: per type pair coefficients, 1-indexed and symmetric
//   - [Table.Init]: derives force/energy prefactors and energy offsets
//   - [Evaluate]: the per pair kernel returning force/r and energy
//   - [Accumulator]: applies pair forces and tallies energy and virial
//   - [Table.Compute], [Table.ComputeParallel]: one pass over a neighbor list
//
// # Phases
//
// A Table is mutable during setup (SetCoeff, SetCutoff, ReadRestart) and must
// be initialized with Init before any compute pass. Setters invalidate the
// derived coefficients; Compute refuses to run on a stale table.
//
//	tbl, _ := pair.NewTable(1, pair.DefaultSettings())
//	tbl.SetCoeff(1, 1, pair.Coeff{C1: 1000, N1: 12, C2: -50, N2: 6})
//	tbl.Init()
//	err := tbl.Compute(atoms, list, acc)
//
// Non-finite forces or energies are not trapped in the hot loop; use
// [Tally.Check] after a pass.
package pair
