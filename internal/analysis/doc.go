// Package analysis tabulates a derived pair potential and checks it.
//
//   - [Tabulate]: energy, force and curvature on a radial grid
//   - [CheckForces]: central finite difference of the energy against the
//     analytic force
//   - [DominantWaveNumber]: spectrum estimate of the oscillation wave number
//     of the cosine term
//
// # Spectrum
//
// The cosine term is isolated by removing the repulsive power law and
// undoing the 1/r^n2 envelope before the transform:
//
//	k, err := analysis.DominantWaveNumber(&d, 2, 8*math.Pi, 1024)
package analysis
