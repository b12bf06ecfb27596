package md

import (
	"github.com/san-kum/ljeopp/internal/pair"
)

// Image is a ghost copy of local atom Owner displaced by Shift box lengths.
type Image struct {
	Owner int
	Shift [3]int
}

// Frame is the local atoms of a System followed by the ghost images that
// lie within one cutoff of the box.
type Frame struct {
	Atoms  pair.Atoms
	Ghosts []Image
}

// Frame builds local atoms and ghosts for interactions up to cut. The box
// must be at least cut wide so that one layer of images suffices.
func (s *System) Frame(cut float64) (*Frame, error) {
	if !(cut > 0) {
		return nil, boundsErr("ghost cutoff must be positive, got %g", cut)
	}
	if cut > s.Box {
		return nil, boundsErr("cutoff %g exceeds box length %g", cut, s.Box)
	}

	n := len(s.X)
	f := &Frame{
		Atoms: pair.Atoms{
			X:      make([][3]float64, n, 2*n),
			Type:   make([]int, n, 2*n),
			NLocal: n,
		},
	}
	copy(f.Atoms.X, s.X)
	copy(f.Atoms.Type, s.Type)

	for i, x := range s.X {
		for sx := -1; sx <= 1; sx++ {
			for sy := -1; sy <= 1; sy++ {
				for sz := -1; sz <= 1; sz++ {
					shift := [3]int{sx, sy, sz}
					if shift == [3]int{} {
						continue
					}
					var img [3]float64
					inside := true
					for d := 0; d < 3; d++ {
						img[d] = x[d] + float64(shift[d])*s.Box
						if img[d] < -cut || img[d] >= s.Box+cut {
							inside = false
							break
						}
					}
					if !inside {
						continue
					}
					f.Atoms.X = append(f.Atoms.X, img)
					f.Atoms.Type = append(f.Atoms.Type, s.Type[i])
					f.Ghosts = append(f.Ghosts, Image{Owner: i, Shift: shift})
				}
			}
		}
	}
	return f, nil
}

// positive reports whether shift is lexicographically greater than zero.
func positive(shift [3]int) bool {
	for _, c := range shift {
		if c != 0 {
			return c > 0
		}
	}
	return false
}

// HalfList lists every pair closer than cut. Local pairs appear once with
// i < j. With newton each periodic pair appears exactly once, through the
// ghost with a positive shift; without newton every local atom lists all
// of its ghost partners.
func (f *Frame) HalfList(cut float64, newton bool) *pair.NeighborList {
	nlocal := f.Atoms.NLocal
	x := f.Atoms.X
	cutsq := cut * cut
	list := &pair.NeighborList{
		ILocal:    make([]int, nlocal),
		Neighbors: make([][]int, nlocal),
	}

	for i := 0; i < nlocal; i++ {
		list.ILocal[i] = i
		var neigh []int
		for j := i + 1; j < len(x); j++ {
			if j >= nlocal && newton && !positive(f.Ghosts[j-nlocal].Shift) {
				continue
			}
			if distSq(x[i], x[j]) < cutsq {
				neigh = append(neigh, j)
			}
		}
		list.Neighbors[i] = neigh
	}
	return list
}

// ReverseComm adds the ghost forces of F onto their owners and returns the
// local part of F.
func (f *Frame) ReverseComm(F [][3]float64) [][3]float64 {
	nlocal := f.Atoms.NLocal
	for g, img := range f.Ghosts {
		fg := F[nlocal+g]
		F[img.Owner][0] += fg[0]
		F[img.Owner][1] += fg[1]
		F[img.Owner][2] += fg[2]
	}
	return F[:nlocal]
}

func distSq(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}
