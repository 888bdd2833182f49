package native

import "unsafe"

// Float64s views n float64 values starting at p.
// The result aliases foreign memory and is valid only while the owner lives.
func Float64s(p unsafe.Pointer, n int) []float64 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*float64)(p), n)
}

// Int32s views n int32 values starting at p.
// The result aliases foreign memory and is valid only while the owner lives.
func Int32s(p *int32, n int) []int32 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}
