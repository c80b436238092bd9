// Package storage keeps uploaded document binaries on the local
// filesystem, keyed by names the service layer generates. Metadata lives
// in the database; this package only moves bytes.
package storage

import "io"

// Store is the binary side of the document store. LocalStore is the only
// implementation; the interface exists so service tests can substitute a
// failing store.
type Store interface {
	// Save writes src under name and returns the number of bytes written.
	Save(name string, src io.Reader) (int64, error)
	// Remove deletes the named binary. A binary that is already absent is
	// not an error.
	Remove(name string) error
	// Path returns the on-disk path for name, for streaming responses.
	Path(name string) string
}
