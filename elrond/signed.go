package elrond

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SignedTransaction pairs a transaction with the sender's signature over its
// canonical bytes. It has no mutators: changing anything means building and
// signing a new UnsignedTransaction.
type SignedTransaction struct {
	tx        *UnsignedTransaction
	signature [SignatureLength]byte
}

// Unsigned returns the transaction that was signed.
func (s *SignedTransaction) Unsigned() *UnsignedTransaction { return s.tx }

// Nonce returns the sender nonce.
func (s *SignedTransaction) Nonce() uint64 { return s.tx.nonce }

// Value returns the amount in smallest units.
func (s *SignedTransaction) Value() string { return s.tx.value }

// Receiver returns the destination address.
func (s *SignedTransaction) Receiver() Address { return s.tx.receiver }

// Sender returns the signing address.
func (s *SignedTransaction) Sender() Address { return s.tx.sender }

// GasPrice returns the price per gas unit.
func (s *SignedTransaction) GasPrice() uint64 { return s.tx.gasPrice }

// GasLimit returns the maximum gas the transaction may consume.
func (s *SignedTransaction) GasLimit() uint64 { return s.tx.gasLimit }

// Data returns a copy of the payload; nil for plain transfers.
func (s *SignedTransaction) Data() []byte { return s.tx.Data() }

// ChainID returns the chain the transaction is valid on.
func (s *SignedTransaction) ChainID() string { return s.tx.chainID }

// Version returns the transaction format version.
func (s *SignedTransaction) Version() uint32 { return s.tx.version }

// Signature returns the raw 64-byte signature.
func (s *SignedTransaction) Signature() [SignatureLength]byte { return s.signature }

// SignatureHex returns the signature the way it travels on the wire.
func (s *SignedTransaction) SignatureHex() string {
	return hex.EncodeToString(s.signature[:])
}

// CanonicalBytes returns the payload the signature covers.
func (s *SignedTransaction) CanonicalBytes() []byte {
	return s.tx.CanonicalBytes()
}

// Verify checks the signature against the sender's public key.
func (s *SignedTransaction) Verify() bool {
	return Verify(s.tx.sender.PublicKey(), s.tx.CanonicalBytes(), s.signature[:])
}

// MarshalJSON renders the body of a send-transaction request: the canonical
// fields followed by the hex signature.
func (s *SignedTransaction) MarshalJSON() ([]byte, error) {
	ftx := s.tx.frontend()
	ftx.Signature = s.SignatureHex()
	return marshalFrontend(ftx), nil
}

// ParseSignedTransaction reads a transaction produced by MarshalJSON, e.g.
// one signed offline and carried to an online machine. Fields are validated
// the same way NewUnsignedTransaction does, except for gas minimums which
// depend on a network the payload does not name, and the signature must
// verify against the sender.
func ParseSignedTransaction(data []byte) (*SignedTransaction, error) {
	var ftx frontendTransaction
	if err := json.Unmarshal(data, &ftx); err != nil {
		return nil, fmt.Errorf("%w: could not decode signed transaction: %v", ErrInvalidTransaction, err)
	}

	if err := validateAmount(ftx.Value); err != nil {
		return nil, err
	}
	receiver, err := NewAddress(ftx.Receiver)
	if err != nil {
		return nil, fmt.Errorf("%w: receiver: %w", ErrInvalidTransaction, err)
	}
	sender, err := NewAddress(ftx.Sender)
	if err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrInvalidTransaction, err)
	}
	if ftx.ChainID == "" {
		return nil, fmt.Errorf("%w: missing chain ID", ErrInvalidTransaction)
	}

	sig, err := hex.DecodeString(ftx.Signature)
	if err != nil || len(sig) != SignatureLength {
		return nil, fmt.Errorf("%w: signature must be %d hex-encoded bytes", ErrInvalidTransaction, SignatureLength)
	}

	signed := &SignedTransaction{
		tx: &UnsignedTransaction{
			nonce:    ftx.Nonce,
			value:    ftx.Value,
			receiver: receiver,
			sender:   sender,
			gasPrice: ftx.GasPrice,
			gasLimit: ftx.GasLimit,
			data:     ftx.Data,
			chainID:  ftx.ChainID,
			version:  ftx.Version,
		},
	}
	copy(signed.signature[:], sig)

	if !signed.Verify() {
		return nil, fmt.Errorf("%w: signature does not match sender %s", ErrInvalidTransaction, sender)
	}
	return signed, nil
}
