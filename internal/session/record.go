// Package session keeps the authenticated user's credential record in memory
// and mirrors every change into session storage as ciphertext.
//
// The Store notifies subscribed hooks on every mutation; the Persister is the
// hook that encrypts the record (or removes it when the record becomes
// absent). Restore reads the stored ciphertext back and fails open: any
// decode, decrypt or parse problem yields "no session" rather than an error.
package session

// Record is the credential record of an authenticated session.
type Record struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Clone returns a copy of r, or nil for a nil record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
