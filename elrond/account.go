package elrond

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// SecretKeyLength is the size of an Elrond secret key (an Ed25519 seed).
const SecretKeyLength = ed25519.SeedSize

// Account is an Ed25519 keypair and the address derived from it.
// The public key and address always follow from the secret; nothing can set
// them independently.
type Account struct {
	secret  solana.PrivateKey // seed || public key
	public  solana.PublicKey
	address Address
}

// GenerateAccount creates an account from a cryptographically random seed.
func GenerateAccount() *Account {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		// crypto/rand failing leaves nothing sensible to do
		panic(fmt.Sprintf("elrond: generating key: %v", err))
	}
	return newAccount(key)
}

// AccountFromSeed imports an account from its 32-byte secret key.
func AccountFromSeed(seed []byte) (*Account, error) {
	if len(seed) != SecretKeyLength {
		return nil, fmt.Errorf("%w: secret key has %d bytes, expected %d", ErrInvalidKey, len(seed), SecretKeyLength)
	}
	return newAccount(solana.PrivateKey(ed25519.NewKeyFromSeed(seed))), nil
}

// AccountFromString imports an account from the hex form of its secret key,
// as produced by Account.String.
func AccountFromString(secretHex string) (*Account, error) {
	seed, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode hex string: %v", ErrInvalidKey, err)
	}
	defer clear(seed)
	return AccountFromSeed(seed)
}

func newAccount(key solana.PrivateKey) *Account {
	public := key.PublicKey()
	return &Account{
		secret:  key,
		public:  public,
		address: AddressFromPublicKey([PublicKeyLength]byte(public)),
	}
}

// Secret returns a copy of the 32-byte secret key.
// Caller should clear it after use.
func (a *Account) Secret() []byte {
	out := make([]byte, SecretKeyLength)
	copy(out, a.secret[:SecretKeyLength])
	return out
}

// PublicKey returns the Ed25519 public key.
func (a *Account) PublicKey() [PublicKeyLength]byte {
	return [PublicKeyLength]byte(a.public)
}

// Address returns the bech32 address of the account.
func (a *Account) Address() Address {
	return a.address
}

// String returns the hex secret key; AccountFromString restores the account
// from it. Treat the result as sensitive.
func (a *Account) String() string {
	return hex.EncodeToString(a.secret[:SecretKeyLength])
}

// Sign signs an arbitrary message with the account key.
func (a *Account) Sign(message []byte) [SignatureLength]byte {
	return Sign(message, a.secret)
}

// Wipe zeroes the key material. The account must not be used afterwards.
func (a *Account) Wipe() {
	clear(a.secret)
}
