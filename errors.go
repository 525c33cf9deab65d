package llist

import "errors"

var (
	// ErrNilArgument reports a nil list or element reference, or a
	// zero length element.
	ErrNilArgument = errors.New("llist: nil argument")

	// ErrAllocation reports that the element copy could not be
	// allocated. The failed operation leaves the list unchanged.
	ErrAllocation = errors.New("llist: allocation failed")
)
