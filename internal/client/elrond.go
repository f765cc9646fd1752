package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultGatewayURL = "https://gateway.multiversx.com"

	gatewayTimeout = 15 * time.Second
	maxErrorBody   = 1 << 10
)

// ElrondClient talks to a gateway (proxy) REST API.
type ElrondClient struct {
	baseURL string
	client  *http.Client
}

var _ elrond.Client = (*ElrondClient)(nil)

// NewElrondClient creates a client for the gateway at baseURL.
func NewElrondClient(baseURL string) *ElrondClient {
	if baseURL == "" {
		baseURL = DefaultGatewayURL
	}
	return &ElrondClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: gatewayTimeout,
		},
	}
}

// gatewayResponse is the envelope every gateway endpoint answers with.
type gatewayResponse struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

// GetAddressNonce gets the next nonce to use for address
func (c *ElrondClient) GetAddressNonce(ctx context.Context, address string) (uint64, error) {
	addr, err := elrond.NewAddress(address)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", elrond.ErrClient, err)
	}

	var data struct {
		Nonce *uint64 `json:"nonce"`
	}
	if err := c.request(ctx, http.MethodGet, "address/"+url.PathEscape(addr.String())+"/nonce", nil, &data); err != nil {
		return 0, err
	}
	if data.Nonce == nil {
		return 0, fmt.Errorf("%w: response does not contain 'nonce' field", elrond.ErrClient)
	}

	return *data.Nonce, nil
}

// GetAddressBalance gets the balance of address in smallest units
func (c *ElrondClient) GetAddressBalance(ctx context.Context, address string) (elrond.CurrencyAmount, error) {
	addr, err := elrond.NewAddress(address)
	if err != nil {
		return elrond.CurrencyAmount{}, fmt.Errorf("%w: %w", elrond.ErrClient, err)
	}

	var data struct {
		Balance *string `json:"balance"`
	}
	if err := c.request(ctx, http.MethodGet, "address/"+url.PathEscape(addr.String())+"/balance", nil, &data); err != nil {
		return elrond.CurrencyAmount{}, err
	}
	if data.Balance == nil {
		return elrond.CurrencyAmount{}, fmt.Errorf("%w: response does not contain 'balance' field", elrond.ErrClient)
	}

	balance, err := elrond.CurrencyAmountFromDenominated(*data.Balance)
	if err != nil {
		return elrond.CurrencyAmount{}, fmt.Errorf("%w: 'balance' is not an integer: %q", elrond.ErrClient, *data.Balance)
	}
	return balance, nil
}

// PostSignedTransaction submits a signed transaction and returns its hash
func (c *ElrondClient) PostSignedTransaction(ctx context.Context, tx *elrond.SignedTransaction) (elrond.TransactionHash, error) {
	body, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal transaction: %v", elrond.ErrClient, err)
	}

	var data struct {
		TxHash string `json:"txHash"`
	}
	if err := c.request(ctx, http.MethodPost, "transaction/send", body, &data); err != nil {
		return "", err
	}
	if data.TxHash == "" {
		return "", fmt.Errorf("%w: response does not contain 'txHash' field", elrond.ErrClient)
	}

	logger.Info("transaction submitted",
		zap.String("txHash", data.TxHash),
		zap.String("sender", tx.Sender().String()),
		zap.Uint64("nonce", tx.Nonce()),
	)
	return elrond.TransactionHash(data.TxHash), nil
}

// AddressTransaction is one entry of an address's transaction history as the gateway reports it.
// Value and Fee are in smallest units, Timestamp in unix seconds.
type AddressTransaction struct {
	Hash      string `json:"hash"`
	Nonce     uint64 `json:"nonce"`
	Round     uint64 `json:"round"`
	Value     string `json:"value"`
	Receiver  string `json:"receiver"`
	Sender    string `json:"sender"`
	GasPrice  uint64 `json:"gasPrice"`
	GasLimit  uint64 `json:"gasLimit"`
	Fee       string `json:"fee"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
}

// GetAddressTransactions gets the recent transactions sent from or to address
func (c *ElrondClient) GetAddressTransactions(ctx context.Context, address string) ([]AddressTransaction, error) {
	addr, err := elrond.NewAddress(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", elrond.ErrClient, err)
	}

	var data struct {
		Transactions *[]AddressTransaction `json:"transactions"`
	}
	if err := c.request(ctx, http.MethodGet, "address/"+url.PathEscape(addr.String())+"/transactions", nil, &data); err != nil {
		return nil, err
	}
	if data.Transactions == nil {
		return nil, fmt.Errorf("%w: response does not contain 'transactions' field", elrond.ErrClient)
	}

	for _, tx := range *data.Transactions {
		if _, err := elrond.CurrencyAmountFromDenominated(tx.Value); err != nil {
			return nil, fmt.Errorf("%w: transaction %s: 'value' is not an integer: %q", elrond.ErrClient, tx.Hash, tx.Value)
		}
	}

	return *data.Transactions, nil
}

// request sends a request and unpacks the 'data' object of the response into out
func (c *ElrondClient) request(ctx context.Context, method, path string, body []byte, out any) error {
	fullURL := c.baseURL + "/" + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", elrond.ErrClient, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("gateway request", zap.String("method", method), zap.String("url", fullURL))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", elrond.ErrClient, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: error code %d, data='%s'", elrond.ErrClient, resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var envelope gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: could not decode response to JSON: %v", elrond.ErrClient, err)
	}
	if envelope.Error != "" {
		return fmt.Errorf("%w: gateway error (%s): %s", elrond.ErrClient, envelope.Code, envelope.Error)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return fmt.Errorf("%w: response does not contain 'data' field", elrond.ErrClient)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: 'data' has unexpected shape: %v", elrond.ErrClient, err)
	}

	return nil
}
