package fare

import "errors"

// ErrInvalidInput marks a caller bug: negative distance, a zero pickup time,
// or an unrecognized enum value. Retrying the same request cannot succeed.
var ErrInvalidInput = errors.New("fare: invalid input")

// ErrUnsupportedConfig marks a broken fare configuration. It is a startup
// error, not a per-request one.
var ErrUnsupportedConfig = errors.New("fare: unsupported configuration")
