package common

const (
	// SessionStorageKey is the storage key holding the encrypted credential record.
	SessionStorageKey = "user"

	// SaltStorageKey is the storage key holding the key-derivation salt.
	SaltStorageKey = "salt"

	// DefaultAssetsDir is the bundle directory relative to the build root.
	DefaultAssetsDir = "static/js"
)
