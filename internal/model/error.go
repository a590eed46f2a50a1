package model

import "errors"

var (
	ErrDataUnavailable  = errors.New("catalog data unavailable")
	ErrMalformedTable   = errors.New("malformed table")
	ErrCapacityExceeded = errors.New("compare capacity exceeded")
	ErrInvalidCapacity  = errors.New("invalid compare capacity")
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidKey       = errors.New("invalid item key")
	ErrInvalidTerm      = errors.New("invalid rental term")
	ErrInvalidArgument  = errors.New("invalid argument")
)
