// Package elrond builds, serializes and signs value-transfer transactions for
// the Elrond (MultiversX) network.
//
// A transaction goes through three states:
//
//	Built     NewUnsignedTransaction validated every field
//	Signed    (*UnsignedTransaction).Sign produced a *SignedTransaction
//	Submitted a Client accepted the signed transaction and returned its hash
//
// Invalid input never produces a Built value. Both transaction types are
// immutable, so they can be shared between goroutines freely.
//
// # Canonical bytes
//
// The bytes that get signed are compact JSON with a fixed key order:
//
//	{"nonce":5,"value":"1000000000000000000","receiver":"erd1...","sender":"erd1...",
//	 "gasPrice":1000000000,"gasLimit":50000,"chainID":"1","version":1}
//
// Numbers are JSON integers, the value is a decimal string, data is base64
// and is left out entirely when empty. Gateways rebuild exactly this payload
// from the submitted fields before checking the Ed25519 signature, so any
// deviation ends up as an "invalid signature" rejection.
//
// # Example
//
//	account, err := elrond.AccountFromString(secretHex)
//	if err != nil {
//	    return err
//	}
//	nonce, err := client.GetAddressNonce(ctx, account.Address().String())
//	if err != nil {
//	    return err
//	}
//	tx, err := elrond.NewUnsignedTransaction(nonce, "1000000000000000000",
//	    "erd16jats393r8rnut88yhvu5wvxxje57qzlj3tqk7n6jnf7f6cxs4uqfeh65k",
//	    account.Address().String(), elrond.MainNet)
//	if err != nil {
//	    return err
//	}
//	signed, err := tx.Sign(account)
//	if err != nil {
//	    return err
//	}
//	hash, err := client.PostSignedTransaction(ctx, signed)
package elrond
