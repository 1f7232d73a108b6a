// Package common defines shared constants and sentinel errors used across
// the shipguard tools. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Transformer errors.
	ErrorNotADirectory = errors.New("not a directory")
	ErrUnknownEngine   = errors.New("unknown obfuscator engine")

	// Session errors.
	ErrNoSession       = errors.New("no session")
	ErrCorruptedRecord = errors.New("corrupted session record")
	ErrInvalidKey      = errors.New("invalid session key")

	// Storage driver errors.
	ErrUnknownDriver = errors.New("unknown storage driver")
)
