package elrond

import (
	"crypto/ed25519"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// SignatureLength is the size of an Ed25519 signature.
const SignatureLength = ed25519.SignatureSize

// Sign signs message with an Ed25519 private key. Ed25519 (RFC 8032) derives
// its nonce from the key and the message, so the result is deterministic,
// which is what Elrond validators expect.
//
// A structurally invalid key is a programming error: Account never holds
// one, so Sign panics instead of returning an error.
func Sign(message []byte, secret solana.PrivateKey) [SignatureLength]byte {
	if len(secret) != ed25519.PrivateKeySize {
		panic(fmt.Sprintf("elrond: %v: private key has %d bytes, expected %d", ErrSigning, len(secret), ed25519.PrivateKeySize))
	}
	sig, err := secret.Sign(message)
	if err != nil {
		panic(fmt.Sprintf("elrond: %v: %v", ErrSigning, err))
	}
	return sig
}

// Verify checks an Ed25519 signature over message.
func Verify(pubKey [PublicKeyLength]byte, message, signature []byte) bool {
	if len(signature) != SignatureLength {
		return false
	}
	return ed25519.Verify(pubKey[:], message, signature)
}
