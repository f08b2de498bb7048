// Package errors defines sentinel errors used across multiple packages.
package errors

import "errors"

// ErrInvalidInput is returned when a value falls outside the domain a formatter accepts.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidScreens is returned when a breakpoint layout is built without any screens.
var ErrInvalidScreens = errors.New("invalid screens")

// ErrInvalidLength is returned when a width threshold cannot be parsed.
var ErrInvalidLength = errors.New("invalid length")

// ErrClipboardUnsupported is returned when no clipboard backend is available.
var ErrClipboardUnsupported = errors.New("clipboard unsupported")
