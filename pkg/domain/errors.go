package domain

import "errors"

// ErrUnknownField is returned when an input names a field the form does not track.
var ErrUnknownField = errors.New("unknown field")

// ErrUnknownMode is returned by ParseModeStrict when the text names no coolant.
var ErrUnknownMode = errors.New("unknown mode")
