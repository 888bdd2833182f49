package supermatrix_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/supermatrix"
	"github.com/hupe1980/supermatrix/native"
	"github.com/hupe1980/supermatrix/native/offheap"
)

// Example_convert adopts a compressed-column matrix and copies it into Go
// memory.
func Example_convert() {
	lib := offheap.New()

	// [[1 0 0]
	//  [0 0 3]
	//  [0 2 4]]
	raw, err := lib.CreateCompCol(3, 3,
		[]float64{1, 2, 3, 4},
		[]int{0, 2, 1, 2},
		[]int{0, 1, 2, 4},
		native.General,
	)
	if err != nil {
		log.Fatal(err)
	}

	m := supermatrix.Adopt(raw, supermatrix.WithLibrary(lib))
	defer m.Close()

	c, err := supermatrix.ToCompressed(m)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c.Offsets, c.Indices, c.Values)
	// Output: [0 1 2 4] [0 2 1 2] [1 2 3 4]
}

// Example_notApplicable shows the outcome for layouts without a conversion.
func Example_notApplicable() {
	lib := offheap.New()

	raw, err := lib.CreateDense(2, 2, []float64{1, 2, 3, 4}, native.General)
	if err != nil {
		log.Fatal(err)
	}

	c, err := supermatrix.ConvertAndClose(supermatrix.Adopt(raw, supermatrix.WithLibrary(lib)))
	fmt.Println(c == nil, errors.Is(err, supermatrix.ErrNotApplicable), lib.Live())
	// Output: true true 0
}

// Example_release hands the record back to the caller.
func Example_release() {
	lib := offheap.New()

	raw, err := lib.CreateDense(1, 1, []float64{42}, native.General)
	if err != nil {
		log.Fatal(err)
	}

	m := supermatrix.Adopt(raw, supermatrix.WithLibrary(lib))
	released, err := m.Release()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(released.Stype, m.Live())

	// The caller owns the record again and frees it through a new handle.
	_ = supermatrix.Adopt(released, supermatrix.WithLibrary(lib)).Close()
	fmt.Println(lib.Live())
	// Output:
	// DN false
	// 0
}
