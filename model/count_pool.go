package model

import "sync"

// CountPool recycles neighbour-count buffers. Counts live for exactly one
// generation, so a simulation can hand its buffer back once the rule step has
// consumed it.
type CountPool struct {
	pool sync.Pool
}

func NewCountPool() *CountPool {
	return &CountPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &NeighborCount{}
			},
		},
	}
}

// get retrieves a buffer sized for a width x height grid
func (p *CountPool) get(width, height int) *NeighborCount {
	n := p.pool.Get().(*NeighborCount)
	size := width * height
	if cap(n.counts) < size {
		n.counts = make([]uint8, size)
	}
	n.counts = n.counts[:size]
	n.width = width
	n.height = height
	return n
}

// Put returns a buffer to the pool. Putting to a nil pool is a no-op.
func (p *CountPool) Put(n NeighborCount) {
	if p == nil || n.counts == nil {
		return
	}
	p.pool.Put(&n)
}

// CountNeighborsPooled behaves like CountNeighbors but draws its buffer from
// pool. The result must not be used after it has been Put back. A nil pool
// allocates a fresh buffer.
func CountNeighborsPooled(g *Grid, policy BoundaryPolicy, pool *CountPool) (NeighborCount, error) {
	if pool == nil {
		return CountNeighbors(g, policy)
	}
	n := pool.get(g.width, g.height)
	if err := countInto(g, policy, *n); err != nil {
		pool.Put(*n)
		return NeighborCount{}, err
	}
	return *n, nil
}
