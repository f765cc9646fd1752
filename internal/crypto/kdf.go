package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	// KeyFileExt is the extension every key file must carry
	KeyFileExt = ".ewt"

	scryptKeyLen = 32
	saltLen      = 32
	nonceLen     = 12
)

// ErrWrongPassword is returned when the key file cannot be opened with the given password.
var ErrWrongPassword = errors.New("invalid password")

// scrypt cost parameters. N=2^18 needs ~256MB RAM and 0.5-2s per derivation,
// which still fits mobile per-app memory limits.
var (
	scryptN = 1 << 18
	scryptR = 8
	scryptP = 1
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// newGCM derives the file key from password and salt and wraps it in AES-GCM
func newGCM(password, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

// additionalData binds the plaintext header to the ciphertext,
// so editing the stored address or network breaks decryption.
func additionalData(network, address string) []byte {
	return []byte(network + "|" + address)
}

// SetScryptCost overrides the scrypt N parameter and returns a func restoring
// the previous value. Files are only readable with the N they were written with.
func SetScryptCost(n int) (restore func()) {
	prev := scryptN
	scryptN = n
	return func() { scryptN = prev }
}
