package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"levelkeeper/internal/domain"
	"levelkeeper/internal/util/memzero"
)

const (
	// The current supported version of the sealed snapshot format.
	snapshotFormatVersion = 1

	snapshotSaltSize = 16
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// snapshot has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted snapshot")
	// ErrEmptyPassphrase is returned when sealing or opening without a passphrase.
	ErrEmptyPassphrase = errors.New("passphrase required")
)

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// SealSnapshot encrypts t under a key derived from passphrase.
func SealSnapshot(passphrase string, t domain.Table) ([]byte, error) {
	N, r, p := scryptParamsDefault()
	return sealSnapshot(passphrase, t, N, r, p)
}

func sealSnapshot(passphrase string, t domain.Table, N, r, p int) ([]byte, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if t == nil {
		t = domain.Table{}
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)

	var salt [snapshotSaltSize]byte
	if _, err := rand.Read(salt[:] /* #nosec G404 */); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.MarshalIndent(sealed{
		V:      snapshotFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	}, "", "  ")
}

// OpenSnapshot decrypts a blob produced by SealSnapshot.
func OpenSnapshot(passphrase string, b []byte) (domain.Table, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.V > snapshotFormatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.V)
	}

	key, err := scrypt.Key([]byte(passphrase), s.Salt, s.N, s.R, s.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], s.Cipher, s.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	defer memzero.Zero(pt)

	t := domain.Table{}
	if err := json.Unmarshal(pt, &t); err != nil {
		return nil, fmt.Errorf("decode snapshot table: %w", err)
	}
	return t, nil
}

// WriteSnapshot seals t and writes it to path.
func WriteSnapshot(path, passphrase string, t domain.Table) error {
	b, err := SealSnapshot(passphrase, t)
	if err != nil {
		return err
	}
	return writeFile(path, b, 0o600)
}

// ReadSnapshot reads and opens the sealed snapshot at path.
func ReadSnapshot(path, passphrase string) (domain.Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return OpenSnapshot(passphrase, b)
}
