package native

import "unsafe"

// SuperMatrix is the foreign matrix record.
//
// Its layout matches SuperLU's C struct with the default 32-bit int_t, so a
// *SuperMatrix can be handed to the C library unchanged. Store points to one
// of the *format structs below, selected by Stype.
type SuperMatrix struct {
	Stype StorageType
	Dtype NumericType
	Mtype MatrixType
	Nrow  int32
	Ncol  int32
	Store unsafe.Pointer
}

// NCformat is compressed-column storage.
type NCformat struct {
	Nnz    int32
	Nzval  unsafe.Pointer // Nnz elements of Dtype
	Rowind *int32         // Nnz row indices
	Colptr *int32         // Ncol+1 column offsets
}

// NCPformat is compressed-column storage whose columns start and end at
// arbitrary positions. Nzval and Rowind are borrowed from the unpermuted
// matrix and are not freed with it.
type NCPformat struct {
	Nnz    int32
	Nzval  unsafe.Pointer
	Rowind *int32
	Colbeg *int32 // Ncol column starts
	Colend *int32 // Ncol column ends (exclusive)
}

// NRformat is compressed-row storage.
type NRformat struct {
	Nnz    int32
	Nzval  unsafe.Pointer
	Colind *int32 // Nnz column indices
	Rowptr *int32 // Nrow+1 row offsets
}

// SCformat is supernodal storage, shared by the SC, SCP and SR layouts as
// far as deallocation is concerned.
type SCformat struct {
	Nnz          int32
	Nsuper       int32
	Nzval        unsafe.Pointer
	NzvalColptr  *int32
	Rowind       *int32
	RowindColptr *int32
	ColToSup     *int32
	SupToCol     *int32
}

// DNformat is column-major dense storage with leading dimension Lda.
type DNformat struct {
	Lda   int32
	Nzval unsafe.Pointer
}
