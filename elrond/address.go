package elrond

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// AddressHRP is the human-readable part of every Elrond address.
	AddressHRP = "erd"

	// PublicKeyLength is the size of an Ed25519 public key, which is also
	// the raw form of an address.
	PublicKeyLength = 32

	// addressLength is len("erd1") + 52 data chars + 6 checksum chars.
	addressLength = 62
)

// AddressCodec converts between raw public keys and their display form.
type AddressCodec interface {
	Decode(address string) ([PublicKeyLength]byte, error)
	Encode(pubKey [PublicKeyLength]byte) string
}

// Bech32Codec is the BIP-173 codec Elrond uses for addresses.
type Bech32Codec struct {
	HRP string
}

// DefaultCodec decodes and encodes "erd1..." addresses.
var DefaultCodec AddressCodec = Bech32Codec{HRP: AddressHRP}

// Decode validates a bech32 address and returns the public key it carries.
// Only lower-case input is accepted so that Encode(Decode(s)) == s.
func (c Bech32Codec) Decode(address string) ([PublicKeyLength]byte, error) {
	var pub [PublicKeyLength]byte

	if len(address) != addressLength {
		return pub, fmt.Errorf("%w: %q has length %d, expected %d", ErrInvalidAddress, address, len(address), addressLength)
	}
	if strings.ToLower(address) != address {
		return pub, fmt.Errorf("%w: %q is not lower case", ErrInvalidAddress, address)
	}

	hrp, data, version, err := bech32.DecodeGeneric(address)
	if err != nil {
		return pub, fmt.Errorf("%w: could not decode %q: %v", ErrInvalidAddress, address, err)
	}
	if version != bech32.Version0 {
		return pub, fmt.Errorf("%w: %q is not bech32 (bech32m checksum)", ErrInvalidAddress, address)
	}
	if hrp != c.HRP {
		return pub, fmt.Errorf("%w: %q has prefix %q, expected %q", ErrInvalidAddress, address, hrp, c.HRP)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return pub, fmt.Errorf("%w: could not convert base32 data of %q: %v", ErrInvalidAddress, address, err)
	}
	if len(raw) != PublicKeyLength {
		return pub, fmt.Errorf("%w: %q holds %d bytes, expected %d", ErrInvalidAddress, address, len(raw), PublicKeyLength)
	}

	copy(pub[:], raw)
	return pub, nil
}

// Encode renders a public key as a bech32 address.
func (c Bech32Codec) Encode(pubKey [PublicKeyLength]byte) string {
	conv, err := bech32.ConvertBits(pubKey[:], 8, 5, true)
	if err != nil {
		// 8 -> 5 with padding cannot fail
		panic(fmt.Sprintf("elrond: converting public key to base32: %v", err))
	}
	s, err := bech32.Encode(c.HRP, conv)
	if err != nil {
		panic(fmt.Sprintf("elrond: bech32 encoding with hrp %q: %v", c.HRP, err))
	}
	return s
}

// Address is a validated account address. The zero value is not a valid
// address; use NewAddress or AddressFromPublicKey.
type Address struct {
	bech32 string
	pubKey [PublicKeyLength]byte
}

// NewAddress validates s with the default codec.
func NewAddress(s string) (Address, error) {
	return NewAddressWithCodec(s, DefaultCodec)
}

// NewAddressWithCodec validates s with codec and keeps the input string as
// the display form.
func NewAddressWithCodec(s string, codec AddressCodec) (Address, error) {
	pub, err := codec.Decode(s)
	if err != nil {
		return Address{}, err
	}
	return Address{bech32: s, pubKey: pub}, nil
}

// AddressFromPublicKey derives the "erd1..." address of a public key.
func AddressFromPublicKey(pubKey [PublicKeyLength]byte) Address {
	return Address{bech32: DefaultCodec.Encode(pubKey), pubKey: pubKey}
}

// PublicKey returns the raw public key behind the address.
func (a Address) PublicKey() [PublicKeyLength]byte {
	return a.pubKey
}

// IsZero reports whether a was never initialized.
func (a Address) IsZero() bool {
	return a.bech32 == ""
}

func (a Address) String() string {
	return a.bech32
}

// Equal compares the underlying public keys.
func (a Address) Equal(b Address) bool {
	return a.pubKey == b.pubKey && !a.IsZero() && !b.IsZero()
}
