package salondata

import "errors"

// Sentinel errors for generation failures
var (
	// Config errors: the caller handed us an impossible spec.
	// All of these surface before any random draw happens.
	ErrCustomerCount   = errors.New("customer count must be positive")
	ErrAgeBounds       = errors.New("minimum age exceeds maximum age")
	ErrWhitespaceProb  = errors.New("whitespace probability outside [0,1]")
	ErrOrdersPerDay    = errors.New("orders per day must be positive")
	ErrDateBounds      = errors.New("start date exceeds end date")
	ErrEmptyCatalog    = errors.New("hairstyle catalog is empty")
	ErrTooFewCustomers = errors.New("fewer customers than orders per day")

	// Consistency errors: an internal invariant broke. Not a user input
	// problem; unreachable unless the builders themselves are buggy.
	ErrUnknownCustomer = errors.New("order references unknown customer")
)
