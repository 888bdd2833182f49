package conv

import (
	"fmt"
	"math"
)

// IntToInt32 converts int to int32 safely.
// Native index buffers use int32 (SuperLU's default int_t).
func IntToInt32(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// IntsToInt32s narrows every element of src into dst.
// dst must be at least as long as src. The position of the first
// offending element is reported on failure.
func IntsToInt32s(dst []int32, src []int) error {
	if len(dst) < len(src) {
		return fmt.Errorf("short destination: %d < %d", len(dst), len(src))
	}
	for i, v := range src {
		n, err := IntToInt32(v)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		dst[i] = n
	}
	return nil
}
