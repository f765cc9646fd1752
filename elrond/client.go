package elrond

import "context"

// TransactionHash is the hex hash a gateway assigns to an accepted transaction.
type TransactionHash string

// Client is what the wallet needs from a gateway. Implementations wrap their
// failures in ErrClient; callers do not retry.
type Client interface {
	GetAddressNonce(ctx context.Context, address string) (uint64, error)
	PostSignedTransaction(ctx context.Context, tx *SignedTransaction) (TransactionHash, error)
}
