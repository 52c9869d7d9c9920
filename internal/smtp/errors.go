package smtp

import "errors"

// ErrNotConfigured is returned when username or password are absent.
// Send operations report it as a structured failure instead of
// crashing the request-handling flow.
var ErrNotConfigured = errors.New("SMTP not configured")
