package pricing

import "errors"

var (
	ErrInvalidCapacity     = errors.New("tier capacity must be positive")
	ErrNegativeBasePrice   = errors.New("tier base price must not be negative")
	ErrInvalidThreshold    = errors.New("threshold percentage must be in [1,100]")
	ErrInvalidIncrease     = errors.New("price increase percentage must be in [1,200]")
	ErrNegativeBookings    = errors.New("booked count must not be negative")
	ErrUnknownTierCategory = errors.New("unknown tier category")
)
