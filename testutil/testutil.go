package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/supermatrix/sparse"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Compressed generates a random compressed-column matrix. Each entry is
// nonzero with probability density; values are in [-1, 1) and never zero.
// Row indices are strictly increasing within each column.
func (r *RNG) Compressed(rows, cols int, density float64) *sparse.Compressed {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &sparse.Compressed{
		Rows:    rows,
		Columns: cols,
		Format:  sparse.Column,
		Values:  []float64{},
		Indices: []int{},
		Offsets: make([]int, cols+1),
	}
	for j := range cols {
		for i := range rows {
			if r.rand.Float64() >= density {
				continue
			}
			v := r.rand.Float64()*2 - 1
			if v == 0 {
				v = 1
			}
			c.Values = append(c.Values, v)
			c.Indices = append(c.Indices, i)
		}
		c.Offsets[j+1] = len(c.Values)
	}
	c.Nonzeros = len(c.Values)
	return c
}

// Banded returns an n×n compressed-column matrix with nonzeros on the
// diagonals |i-j| <= bandwidth. Value at (i, j) is 1 + i + j*n.
func Banded(n, bandwidth int) *sparse.Compressed {
	c := &sparse.Compressed{
		Rows:    n,
		Columns: n,
		Format:  sparse.Column,
		Values:  []float64{},
		Indices: []int{},
		Offsets: make([]int, n+1),
	}
	for j := range n {
		for i := max(0, j-bandwidth); i <= min(n-1, j+bandwidth); i++ {
			c.Values = append(c.Values, float64(1+i+j*n))
			c.Indices = append(c.Indices, i)
		}
		c.Offsets[j+1] = len(c.Values)
	}
	c.Nonzeros = len(c.Values)
	return c
}

// Entry is one stored element of a matrix.
type Entry struct {
	Row, Col int
	Value    float64
}

// Entries lists the stored elements of c sorted by (Col, Row).
func Entries(c *sparse.Compressed) []Entry {
	out := make([]Entry, 0, c.Nonzeros)
	for j := 0; j < c.MajorLen(); j++ {
		for k := c.Offsets[j]; k < c.Offsets[j+1]; k++ {
			e := Entry{Row: c.Indices[k], Col: j, Value: c.Values[k]}
			if c.Format == sparse.Row {
				e.Row, e.Col = j, c.Indices[k]
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Col != out[b].Col {
			return out[a].Col < out[b].Col
		}
		return out[a].Row < out[b].Row
	})
	return out
}
