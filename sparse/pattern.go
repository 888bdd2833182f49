package sparse

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Pattern returns the sparsity pattern as a bitmap of linear positions.
// Position p encodes (row, col) as col*Rows + row regardless of Format,
// so two matrices with the same nonzero structure have equal patterns.
func (c *Compressed) Pattern() *roaring64.Bitmap {
	bm := roaring64.New()
	rows := uint64(c.Rows)
	for j := 0; j < c.MajorLen(); j++ {
		for k := c.Offsets[j]; k < c.Offsets[j+1]; k++ {
			row, col := uint64(c.Indices[k]), uint64(j)
			if c.Format == Row {
				row, col = col, row
			}
			bm.Add(col*rows + row)
		}
	}
	bm.RunOptimize()
	return bm
}

// SamePattern reports whether a and b have the same shape and nonzero structure.
func SamePattern(a, b *Compressed) bool {
	if a.Rows != b.Rows || a.Columns != b.Columns {
		return false
	}
	return a.Pattern().Equals(b.Pattern())
}
