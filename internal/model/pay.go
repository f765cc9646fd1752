package model

// PayRequest represents request for POST /elrond/pay.
// Amount is in eGLD ("0.25"); Data is an optional plain text memo.
type PayRequest struct {
	ToAddress string `json:"toAddress"`
	Amount    string `json:"amount"`
	Data      string `json:"data,omitempty"`
}

// PayResponse represents response for POST /elrond/pay
type PayResponse struct {
	TxHash   string `json:"txHash"`
	Nonce    uint64 `json:"nonce"`
	GasLimit uint64 `json:"gasLimit"`
	MaxFee   string `json:"maxFee"` // eGLD
}
