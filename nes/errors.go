package nes

import "errors"

// Sentinel errors callers can match with errors.Is.
var (
	ErrMalformedROM      = errors.New("nes: malformed rom image")
	ErrUnsupportedMapper = errors.New("nes: unsupported mapper")
)
