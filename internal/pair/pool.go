package pair

import "sync"

// ForcePool recycles per-worker force buffers between parallel passes.
type ForcePool struct {
	pool sync.Pool
	size int
}

func NewForcePool(n int) *ForcePool {
	return &ForcePool{
		size: n,
		pool: sync.Pool{
			New: func() interface{} {
				return make([][3]float64, n)
			},
		},
	}
}

func (p *ForcePool) Size() int { return p.size }

// Get returns a zeroed buffer of Size atoms.
func (p *ForcePool) Get() [][3]float64 {
	return p.pool.Get().([][3]float64)
}

func (p *ForcePool) Put(f [][3]float64) {
	if len(f) == p.size {
		for i := range f {
			f[i] = [3]float64{}
		}
		p.pool.Put(f)
	}
}
