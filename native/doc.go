// Package native describes the foreign matrix record exchanged with SuperLU.
//
// SuperMatrix is a tagged union: the StorageType tag selects the layout of
// the opaque Store pointer (NCformat, NCPformat, NRformat, SCformat or
// DNformat). The Storage method performs the tag-guarded cast and returns a
// closed set of typed views:
//
//	switch s := raw.Storage().(type) {
//	case native.CompCol:
//	    _ = s.Store.Nnz
//	case native.Unknown:
//	    // no layout for s.Tag
//	}
//
// Library is the set of deallocation routines of the foreign library. Two
// implementations ship with this module: native/offheap (pure Go, memory
// outside the Go heap) and native/superlu (cgo, build tag "superlu").
package native
