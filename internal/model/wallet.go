package model

// KeyFile represents the .ewt key file structure.
// Network and Address stay readable without the password.
type KeyFile struct {
	Network    string `json:"network"`
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	Seed      []byte `json:"seed"` // 32-byte Ed25519 seed (base64 in JSON)
	CreatedAt string `json:"createdAt"`
}
