//go:build superlu && cgo

package supermatrix

import (
	"github.com/hupe1980/supermatrix/native"
	"github.com/hupe1980/supermatrix/native/superlu"
)

// DefaultLibrary returns the library used when no WithLibrary option is
// given. With the "superlu" build tag this is the linked SuperLU.
func DefaultLibrary() native.Library {
	return superlu.Library{}
}
