package elrond

import (
	"fmt"
	"math/big"
)

// UnsignedTransaction is a validated transfer waiting to be signed.
// Every field is checked by NewUnsignedTransaction and none can change
// afterwards; a different transfer needs a new value.
type UnsignedTransaction struct {
	nonce    uint64
	value    string
	receiver Address
	sender   Address
	gasPrice uint64
	gasLimit uint64
	data     []byte
	chainID  string
	version  uint32
}

type txOptions struct {
	gasPrice *uint64
	gasLimit *uint64
	data     []byte
	codec    AddressCodec
}

// TxOption overrides a default of NewUnsignedTransaction.
type TxOption func(*txOptions)

// WithGasPrice sets the gas price. It must not be below the network minimum.
func WithGasPrice(gasPrice uint64) TxOption {
	return func(o *txOptions) { o.gasPrice = &gasPrice }
}

// WithGasLimit sets the gas limit. It must not be below the minimum for the
// transaction's data length.
func WithGasLimit(gasLimit uint64) TxOption {
	return func(o *txOptions) { o.gasLimit = &gasLimit }
}

// WithData attaches a payload, e.g. a transfer note or a contract call.
func WithData(data []byte) TxOption {
	return func(o *txOptions) {
		o.data = append([]byte(nil), data...)
	}
}

// WithAddressCodec validates receiver and sender with codec instead of
// DefaultCodec.
func WithAddressCodec(codec AddressCodec) TxOption {
	return func(o *txOptions) { o.codec = codec }
}

// NewUnsignedTransaction validates all inputs and builds a transaction.
// amount is the value in the smallest denomination (10^-18 eGLD) as a plain
// base-10 integer string. Any violation fails with ErrInvalidTransaction;
// nothing is clamped or corrected.
func NewUnsignedTransaction(nonce uint64, amount, receiver, sender string, network Network, opts ...TxOption) (*UnsignedTransaction, error) {
	o := txOptions{codec: DefaultCodec}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	receiverAddr, err := NewAddressWithCodec(receiver, o.codec)
	if err != nil {
		return nil, fmt.Errorf("%w: receiver: %w", ErrInvalidTransaction, err)
	}
	senderAddr, err := NewAddressWithCodec(sender, o.codec)
	if err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrInvalidTransaction, err)
	}

	if !network.isValid() {
		return nil, fmt.Errorf("%w: network has no chain ID", ErrInvalidTransaction)
	}

	gasPrice := network.MinGasPrice()
	if o.gasPrice != nil {
		if *o.gasPrice < gasPrice {
			return nil, fmt.Errorf("%w: gas price %d is below network minimum %d", ErrInvalidTransaction, *o.gasPrice, gasPrice)
		}
		gasPrice = *o.gasPrice
	}

	gasLimit := network.MinGasLimit(len(o.data))
	if o.gasLimit != nil {
		if *o.gasLimit < gasLimit {
			return nil, fmt.Errorf("%w: gas limit %d is below minimum %d for %d data bytes", ErrInvalidTransaction, *o.gasLimit, gasLimit, len(o.data))
		}
		gasLimit = *o.gasLimit
	}

	return &UnsignedTransaction{
		nonce:    nonce,
		value:    amount,
		receiver: receiverAddr,
		sender:   senderAddr,
		gasPrice: gasPrice,
		gasLimit: gasLimit,
		data:     o.data,
		chainID:  network.ChainID(),
		version:  network.Version(),
	}, nil
}

// validateAmount accepts only canonical non-negative integers: digits, no
// sign, no decimal point, no leading zero except for "0" itself.
func validateAmount(amount string) error {
	if amount == "" {
		return fmt.Errorf("%w: empty amount", ErrInvalidTransaction)
	}
	for i := 0; i < len(amount); i++ {
		if amount[i] < '0' || amount[i] > '9' {
			return fmt.Errorf("%w: amount %q is not a non-negative integer", ErrInvalidTransaction, amount)
		}
	}
	if len(amount) > 1 && amount[0] == '0' {
		return fmt.Errorf("%w: amount %q has a leading zero", ErrInvalidTransaction, amount)
	}
	return nil
}

// Sign produces the signed form of tx. account must own the sender address,
// otherwise ErrWrongSigner is returned. Sign does not touch the network.
func (tx *UnsignedTransaction) Sign(account *Account) (*SignedTransaction, error) {
	if account == nil || !account.Address().Equal(tx.sender) {
		signer := "<nil>"
		if account != nil {
			signer = account.Address().String()
		}
		return nil, fmt.Errorf("%w: sender is %s, account is %s", ErrWrongSigner, tx.sender, signer)
	}

	sig := account.Sign(tx.CanonicalBytes())
	return &SignedTransaction{tx: tx, signature: sig}, nil
}

// Nonce returns the sender nonce.
func (tx *UnsignedTransaction) Nonce() uint64 { return tx.nonce }

// Value returns the amount in smallest units.
func (tx *UnsignedTransaction) Value() string { return tx.value }

// Receiver returns the destination address.
func (tx *UnsignedTransaction) Receiver() Address { return tx.receiver }

// Sender returns the address that must sign.
func (tx *UnsignedTransaction) Sender() Address { return tx.sender }

// GasPrice returns the price per gas unit.
func (tx *UnsignedTransaction) GasPrice() uint64 { return tx.gasPrice }

// GasLimit returns the maximum gas the transaction may consume.
func (tx *UnsignedTransaction) GasLimit() uint64 { return tx.gasLimit }

// ChainID returns the chain the transaction is valid on.
func (tx *UnsignedTransaction) ChainID() string { return tx.chainID }

// Version returns the transaction format version.
func (tx *UnsignedTransaction) Version() uint32 { return tx.version }

// Data returns a copy of the payload; nil for plain transfers.
func (tx *UnsignedTransaction) Data() []byte {
	if len(tx.data) == 0 {
		return nil
	}
	return append([]byte(nil), tx.data...)
}

// MaxFee is gasLimit * gasPrice, the most the sender can be charged.
func (tx *UnsignedTransaction) MaxFee() *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(tx.gasLimit), new(big.Int).SetUint64(tx.gasPrice))
}

// MaxCost is value + MaxFee, the balance the sender needs for the transfer.
func (tx *UnsignedTransaction) MaxCost() *big.Int {
	value, _ := new(big.Int).SetString(tx.value, 10) // validated at construction
	return value.Add(value, tx.MaxFee())
}
