// Package memzero wipes key material and decrypted buffers once they are no
// longer needed.
package memzero

import "runtime"

// Zero overwrites every slice in bufs with zeros.
//
//go:noinline
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
		// Keep b live until the write is done so it is not elided.
		runtime.KeepAlive(b)
	}
}
