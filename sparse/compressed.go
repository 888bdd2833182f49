package sparse

import "fmt"

// Major selects the compressed dimension.
type Major uint8

const (
	// Column is compressed-column (CSC): Offsets has Columns+1 entries and
	// Indices holds row numbers.
	Column Major = iota
	// Row is compressed-row (CSR): Offsets has Rows+1 entries and Indices
	// holds column numbers.
	Row
)

func (m Major) String() string {
	switch m {
	case Column:
		return "column"
	case Row:
		return "row"
	default:
		return fmt.Sprintf("Major(%d)", uint8(m))
	}
}

// Compressed is a compressed sparse matrix.
//
// For the major index j, the nonzeros are Values[Offsets[j]:Offsets[j+1]]
// and their minor positions are the parallel Indices entries.
type Compressed struct {
	Rows     int
	Columns  int
	Nonzeros int
	Format   Major
	Values   []float64
	Indices  []int
	Offsets  []int
}

// MajorLen returns the length of the compressed dimension.
func (c *Compressed) MajorLen() int {
	if c.Format == Row {
		return c.Rows
	}
	return c.Columns
}

// MinorLen returns the length of the dimension the indices point into.
func (c *Compressed) MinorLen() int {
	if c.Format == Row {
		return c.Columns
	}
	return c.Rows
}

// Validate checks the structural invariants.
func (c *Compressed) Validate() error {
	if c.Format != Column && c.Format != Row {
		return fmt.Errorf("%w: %s", ErrFormat, c.Format)
	}
	if c.Rows < 0 || c.Columns < 0 || c.Nonzeros < 0 {
		return fmt.Errorf("%w: %dx%d with %d nonzeros", ErrShape, c.Rows, c.Columns, c.Nonzeros)
	}
	if len(c.Values) != c.Nonzeros || len(c.Indices) != c.Nonzeros {
		return fmt.Errorf("%w: %d values and %d indices for %d nonzeros", ErrLength, len(c.Values), len(c.Indices), c.Nonzeros)
	}
	major := c.MajorLen()
	if len(c.Offsets) != major+1 {
		return fmt.Errorf("%w: %d offsets for major dimension %d", ErrLength, len(c.Offsets), major)
	}
	if c.Offsets[0] != 0 {
		return fmt.Errorf("%w: first offset is %d", ErrOffsets, c.Offsets[0])
	}
	if c.Offsets[major] != c.Nonzeros {
		return fmt.Errorf("%w: last offset is %d, want %d", ErrOffsets, c.Offsets[major], c.Nonzeros)
	}
	for j := 0; j < major; j++ {
		if c.Offsets[j+1] < c.Offsets[j] {
			return fmt.Errorf("%w: offset %d decreases", ErrOffsets, j+1)
		}
	}
	minor := c.MinorLen()
	for k, i := range c.Indices {
		if i < 0 || i >= minor {
			return fmt.Errorf("%w: index %d at position %d, minor dimension %d", ErrIndex, i, k, minor)
		}
	}
	return nil
}

// At returns the element at (row, col). Duplicate entries are summed.
// It returns ErrIndex for positions outside the matrix.
func (c *Compressed) At(row, col int) (float64, error) {
	if row < 0 || row >= c.Rows || col < 0 || col >= c.Columns {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrIndex, row, col, c.Rows, c.Columns)
	}
	j, i := col, row
	if c.Format == Row {
		j, i = row, col
	}
	var sum float64
	for k := c.Offsets[j]; k < c.Offsets[j+1]; k++ {
		if c.Indices[k] == i {
			sum += c.Values[k]
		}
	}
	return sum, nil
}

// Dense expands the matrix into row slices.
func (c *Compressed) Dense() [][]float64 {
	out := make([][]float64, c.Rows)
	for r := range out {
		out[r] = make([]float64, c.Columns)
	}
	for j := 0; j < c.MajorLen(); j++ {
		for k := c.Offsets[j]; k < c.Offsets[j+1]; k++ {
			if c.Format == Row {
				out[j][c.Indices[k]] += c.Values[k]
			} else {
				out[c.Indices[k]][j] += c.Values[k]
			}
		}
	}
	return out
}

// Transpose returns the transpose, re-compressed in the same Format.
// Within each major slot the minor indices come out sorted.
func (c *Compressed) Transpose() *Compressed {
	t := &Compressed{
		Rows:     c.Columns,
		Columns:  c.Rows,
		Nonzeros: c.Nonzeros,
		Format:   c.Format,
		Values:   make([]float64, c.Nonzeros),
		Indices:  make([]int, c.Nonzeros),
		Offsets:  make([]int, c.MinorLen()+1),
	}

	// Count entries per minor index, then prefix-sum into offsets.
	for _, i := range c.Indices {
		t.Offsets[i+1]++
	}
	for i := 1; i < len(t.Offsets); i++ {
		t.Offsets[i] += t.Offsets[i-1]
	}

	next := make([]int, len(t.Offsets)-1)
	copy(next, t.Offsets)
	for j := 0; j < c.MajorLen(); j++ {
		for k := c.Offsets[j]; k < c.Offsets[j+1]; k++ {
			i := c.Indices[k]
			p := next[i]
			t.Indices[p] = j
			t.Values[p] = c.Values[k]
			next[i]++
		}
	}
	return t
}

// Clone returns a deep copy.
func (c *Compressed) Clone() *Compressed {
	out := *c
	out.Values = append([]float64(nil), c.Values...)
	out.Indices = append([]int(nil), c.Indices...)
	out.Offsets = append([]int(nil), c.Offsets...)
	return &out
}
