package book

import "errors"

var (
	// ErrDuplicateOrderID is returned by AddOrder when id is already resident.
	ErrDuplicateOrderID = errors.New("order id is already resident")
	// ErrUnknownOrderID is returned by operations addressing an id that is
	// not resident (or was never added).
	ErrUnknownOrderID = errors.New("order id is not resident")
	// ErrInvalidOrderID is returned when callers pass the reserved 0 id.
	ErrInvalidOrderID = errors.New("order id 0 is reserved")
	// ErrStockLocateOutOfRange is returned by the book manager when a
	// stock locate exceeds MaxSymbols.
	ErrStockLocateOutOfRange = errors.New("stock locate exceeds maximum symbol table size")
)
