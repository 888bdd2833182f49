// Package superlu binds native.Library to a linked SuperLU through cgo.
//
// The binding is compiled only with the "superlu" build tag and cgo enabled:
//
//	go build -tags superlu ./...
//
// SuperLU must be built with its default 32-bit int_t so that C records and
// native.SuperMatrix share a layout.
package superlu
