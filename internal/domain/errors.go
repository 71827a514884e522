package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrInactiveLocation = errors.New("location inactive or unknown")
	ErrNoDishes         = errors.New("no orderable dishes")
	ErrProviderFailure  = errors.New("provider failure")
)
