package blackjack

import "errors"

var (
	// ErrInvalidDeckState is returned when a shoe would go negative or above its composition.
	// During an evaluation it means a remove/restore pair went missing.
	ErrInvalidDeckState = errors.New("invalid deck state")

	// ErrInvalidInput is returned for ranks outside 1..10 or a non-positive deck count.
	ErrInvalidInput = errors.New("invalid input")
)
