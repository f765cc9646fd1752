package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/crypto"
	"github.com/AlexZinkM/elrond-wallet/internal/logger"
	"github.com/AlexZinkM/elrond-wallet/internal/model"
	"github.com/AlexZinkM/elrond-wallet/wallet"

	"go.uber.org/zap"
)

const maxRequestBody = 1 << 16

// PasswordFunc returns a fresh copy of the wallet password; the handler clears it after use.
type PasswordFunc func() ([]byte, error)

// ElrondHandler serves the wallet use cases over HTTP
type ElrondHandler struct {
	wallet   *wallet.Service
	password PasswordFunc
}

// NewElrondHandler creates a new ElrondHandler
func NewElrondHandler(w *wallet.Service, password PasswordFunc) (*ElrondHandler, error) {
	if w == nil {
		return nil, errors.New("wallet service is nil")
	}
	if w.FilePath() == "" {
		return nil, errors.New("ELROND_FILE_PATH not set")
	}
	if password == nil {
		return nil, errors.New("password source is nil")
	}
	return &ElrondHandler{wallet: w, password: password}, nil
}

// Generate handles POST /elrond/generate
// @Summary      Generate new wallet
// @Description  Generates a new Elrond account and saves it to the encrypted .ewt key file
// @Tags         elrond
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /elrond/generate [post]
func (h *ElrondHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := h.password()
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeInvalidRequest, err)
		return
	}
	defer clear(passwordBytes)

	address, err := h.wallet.GenerateWallet(passwordBytes)
	if err != nil {
		writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
		Network: h.wallet.Network().String(),
	})
}

// GetBalance handles GET /elrond/balance
// @Summary      Get wallet balance (USD = eGLD * rate)
// @Description  Gets eGLD balance and next nonce of the wallet address with the eGLD/USD rate
// @Tags         elrond
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /elrond/balance [get]
func (h *ElrondHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	balance, err := h.wallet.GetBalance(r.Context())
	if err != nil {
		writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// Pay handles POST /elrond/pay
// @Summary      Send eGLD
// @Description  Signs and submits an eGLD transfer to the specified address
// @Tags         elrond
// @Accept       json
// @Produce      json
// @Param        request  body      model.PayRequest  true  "Payment data"
// @Success      200      {object}  model.PayResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /elrond/pay [post]
func (h *ElrondHandler) Pay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.PayRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.CodeInvalidRequest, err)
		return
	}
	if req.ToAddress == "" || req.Amount == "" {
		writeError(w, http.StatusBadRequest, model.CodeInvalidRequest, errors.New("toAddress and amount are required"))
		return
	}

	passwordBytes, err := h.password()
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeInvalidRequest, err)
		return
	}
	defer clear(passwordBytes)

	payResp, err := h.wallet.PayEGLD(r.Context(), passwordBytes, req)
	if err != nil {
		writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payResp)
}

// TransactionHistory handles GET /elrond/transactions
// @Summary      Get wallet transaction history
// @Description  Lists transactions of the wallet address, newest first. DEBIT = received, CREDIT = sent
// @Tags         elrond
// @Produce      json
// @Param        type       query     string  false  "DEBIT or CREDIT"
// @Param        txHash     query     string  false  "Transaction hash"
// @Param        from       query     string  false  "From date (YYYY-MM-DD)"
// @Param        to         query     string  false  "To date (YYYY-MM-DD), inclusive"
// @Param        minAmount  query     string  false  "Minimum amount in eGLD"
// @Param        maxAmount  query     string  false  "Maximum amount in eGLD"
// @Success      200        {object}  model.LogResponse
// @Failure      400        {object}  model.ErrorResponse
// @Failure      502        {object}  model.ErrorResponse
// @Router       /elrond/transactions [get]
func (h *ElrondHandler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseLogRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.CodeInvalidRequest, err)
		return
	}

	resp, err := h.wallet.Transactions(r.Context(), req)
	if err != nil {
		writeWalletError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseLogRequest reads and validates the history filters from the query string
func parseLogRequest(r *http.Request) (*model.LogRequest, error) {
	const dateLayout = "2006-01-02"
	query := r.URL.Query()
	var req model.LogRequest

	if fromStr := query.Get("from"); fromStr != "" {
		t, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return nil, errors.New("invalid from date: use YYYY-MM-DD (e.g. 2006-01-02)")
		}
		req.From = &t
	}
	if toStr := query.Get("to"); toStr != "" {
		t, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return nil, errors.New("invalid to date: use YYYY-MM-DD (e.g. 2006-01-02)")
		}
		// End of day so filter is inclusive
		t = t.Add(24*time.Hour - time.Nanosecond)
		req.To = &t
	}
	if typeStr := query.Get("type"); typeStr != "" {
		txType := model.TransactionType(typeStr)
		req.Type = &txType
	}
	if txHash := query.Get("txHash"); txHash != "" {
		req.TxHash = &txHash
	}
	if minAmount := query.Get("minAmount"); minAmount != "" {
		req.MinAmount = &minAmount
	}
	if maxAmount := query.Get("maxAmount"); maxAmount != "" {
		req.MaxAmount = &maxAmount
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// writeWalletError maps use case errors to HTTP status codes
func writeWalletError(w http.ResponseWriter, err error) {
	switch {
	case wallet.IsFileExistsError(err):
		writeError(w, http.StatusConflict, model.CodeWalletExists, err)
	case errors.Is(err, crypto.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, model.CodeWrongPassword, err)
	case errors.Is(err, wallet.ErrCooldown):
		writeError(w, http.StatusTooManyRequests, model.CodeCooldown, err)
	case errors.Is(err, wallet.ErrInsufficientFunds):
		writeError(w, http.StatusBadRequest, model.CodeInsufficient, err)
	case errors.Is(err, elrond.ErrClient):
		writeError(w, http.StatusBadGateway, model.CodeGateway, err)
	case errors.Is(err, elrond.ErrInvalidAddress), errors.Is(err, elrond.ErrInvalidTransaction):
		writeError(w, http.StatusBadRequest, model.CodeInvalidRequest, err)
	default:
		logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, model.CodeInternal, err)
	}
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}
