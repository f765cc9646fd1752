package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

const (
	CodeInvalidRequest = "invalid_request"
	CodeWalletExists   = "wallet_exists"
	CodeWrongPassword  = "wrong_password"
	CodeCooldown       = "cooldown"
	CodeInsufficient   = "insufficient_funds"
	CodeGateway        = "gateway_error"
	CodeInternal       = "internal_error"
)
