// Package common holds small helpers shared across layers.
package common

// WipeByteArray overwrites the slice contents with zeroes. Use it to scrub
// passwords from memory once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
