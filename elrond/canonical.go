package elrond

import (
	"encoding/json"
	"fmt"
)

// frontendTransaction is the JSON layout gateways accept and rebuild before
// verifying a signature. encoding/json emits struct fields in declaration
// order, so this declaration is the canonical key order. Data is a []byte and
// therefore base64; omitempty drops it for plain transfers.
type frontendTransaction struct {
	Nonce     uint64 `json:"nonce"`
	Value     string `json:"value"`
	Receiver  string `json:"receiver"`
	Sender    string `json:"sender"`
	GasPrice  uint64 `json:"gasPrice"`
	GasLimit  uint64 `json:"gasLimit"`
	Data      []byte `json:"data,omitempty"`
	ChainID   string `json:"chainID"`
	Version   uint32 `json:"version"`
	Signature string `json:"signature,omitempty"`
}

func (tx *UnsignedTransaction) frontend() frontendTransaction {
	return frontendTransaction{
		Nonce:    tx.nonce,
		Value:    tx.value,
		Receiver: tx.receiver.String(),
		Sender:   tx.sender.String(),
		GasPrice: tx.gasPrice,
		GasLimit: tx.gasLimit,
		Data:     tx.data,
		ChainID:  tx.chainID,
		Version:  tx.version,
	}
}

// CanonicalBytes returns the exact byte sequence that is signed. Same
// transaction, same bytes.
func (tx *UnsignedTransaction) CanonicalBytes() []byte {
	return marshalFrontend(tx.frontend())
}

// MarshalJSON renders the unsigned transaction in canonical form.
func (tx *UnsignedTransaction) MarshalJSON() ([]byte, error) {
	return tx.CanonicalBytes(), nil
}

func marshalFrontend(ftx frontendTransaction) []byte {
	out, err := json.Marshal(ftx)
	if err != nil {
		// only strings, integers and a byte slice: cannot fail
		panic(fmt.Sprintf("elrond: marshaling transaction: %v", err))
	}
	return out
}
