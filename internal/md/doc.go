// Package md is a small molecular-dynamics host for the pair style: a
// periodic particle system with ghost images, brute-force neighbor lists,
// a force field that drives pair.Table, and a velocity-Verlet integrator
// with energy monitoring.
package md
