package credential

import "errors"

var (
	// ErrNotFound is returned by Storage implementations when a key is absent.
	ErrNotFound = errors.New("credential: key not found")

	// ErrUnsupportedFormat is returned by FileStorage for unknown file extensions.
	ErrUnsupportedFormat = errors.New("credential: unsupported credentials file format")
)
