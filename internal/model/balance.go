package model

// BalanceResponse represents response for GET /elrond/balance
type BalanceResponse struct {
	Address     string `json:"address"`
	Network     string `json:"network"`
	EGLD        string `json:"egld"`
	Denominated string `json:"denominated"`
	Nonce       uint64 `json:"nonce"`
	Rate        string `json:"rate,omitempty"`
	USD         string `json:"egld_amount_in_usd,omitempty"`
}
