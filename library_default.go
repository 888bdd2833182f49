//go:build !superlu || !cgo

package supermatrix

import (
	"github.com/hupe1980/supermatrix/native"
	"github.com/hupe1980/supermatrix/native/offheap"
)

// DefaultLibrary returns the library used when no WithLibrary option is
// given. Without the "superlu" build tag this is offheap.Default.
func DefaultLibrary() native.Library {
	return offheap.Default
}
