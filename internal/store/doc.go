// Package store provides file-based persistence for member progression data.
//
// JSONFile implements domain.MemberDocument, serialising the whole member
// table as one two-space indented JSON object. Writes go to a temp file in the
// same directory which is then renamed over the target, so a reader never
// observes a half-written document.
//
// The package also seals table snapshots with a passphrase (scrypt key
// derivation, ChaCha20-Poly1305) for the CLI export and import commands.
package store
