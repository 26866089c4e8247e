package domain

import "errors"

// Catalog errors
var (
	ErrCatalogUnavailable  = errors.New("catalog unavailable")
	ErrInsufficientCatalog = errors.New("catalog has fewer entities than distinct picks required")
	ErrUnknownCatalog      = errors.New("unknown catalog kind")
)

// Game errors
var (
	ErrMalformedState   = errors.New("malformed persisted state")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrModeNotGuessable = errors.New("mode does not accept guesses")
	ErrUnknownGuess     = errors.New("guess does not match any catalog entry")
	ErrEmptyGuess       = errors.New("guess is empty")
)
