package ticket

import "errors"

var (
	// ErrTemplateUnavailable marks template fetch/decode failures so
	// callers can decide fallback policy explicitly; the renderer never
	// falls back to the default design on its own.
	ErrTemplateUnavailable = errors.New("ticket template unavailable")

	ErrNoTemplateURL = errors.New("no template URL supplied")
)
