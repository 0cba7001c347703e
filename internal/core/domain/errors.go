package domain

import "errors"

var (
	// ErrInvalidRequest marks a request missing a required field.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound marks an unknown click, campaign or publisher reference.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate marks a conversion that already exists for a click. The
	// conversion endpoint surfaces it as success per the idempotency
	// contract; it is an error only internally.
	ErrDuplicate = errors.New("conversion already recorded")
	// ErrNoDestination marks a campaign with no usable destination URL.
	ErrNoDestination = errors.New("campaign has no destination URL")
)
