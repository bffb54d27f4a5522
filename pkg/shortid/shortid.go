// Package shortid generates short URL-safe string identifiers for accounts,
// aggregates, and sub-entities. Ids are statistically unique; no global
// uniqueness check is performed; database constraints catch the (acceptably
// rare) collision.
package shortid

import "crypto/rand"

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	length   = 9
)

// New returns a fresh 9-character id over a 64-character URL-safe alphabet
// (~54 bits of entropy).
func New() string {
	buf := make([]byte, length)
	// rand.Read never fails on supported platforms (it panics instead).
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
