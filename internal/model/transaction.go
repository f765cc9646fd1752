package model

import (
	"fmt"
	"time"

	"github.com/AlexZinkM/elrond-wallet/internal/common"
)

// TransactionType transaction type relative to the wallet address
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"  // received
	TransactionTypeCredit TransactionType = "CREDIT" // sent
)

// Transaction represents a transaction
type Transaction struct {
	Type        TransactionType `json:"type"`
	TxHash      string          `json:"txHash"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Amount      string          `json:"amount"` // eGLD
	OurFeeEGLD  string          `json:"ourFeeEGLD"`
	Nonce       uint64          `json:"nonce"`
	Timestamp   time.Time       `json:"timestamp"`
	BlockNumber uint64          `json:"blockNumber"` // round
	Status      string          `json:"status"`
}

// LogResponse represents response for GET /elrond/transactions
type LogResponse struct {
	Address         string        `json:"address"`
	TotalIncomeEGLD string        `json:"total_income_EGLD"`
	TotalSpentEGLD  string        `json:"total_spent_EGLD"`
	Transactions    []Transaction `json:"transactions"`
}

// LogRequest represents filter parameters for GET /elrond/transactions.
// MinAmount and MaxAmount are in eGLD.
type LogRequest struct {
	Type      *TransactionType
	TxHash    *string
	From      *time.Time
	To        *time.Time
	MinAmount *string
	MaxAmount *string
}

// Validate validates LogRequest filter parameters.
func (r *LogRequest) Validate() error {
	if r.Type != nil && *r.Type != TransactionTypeDebit && *r.Type != TransactionTypeCredit {
		return fmt.Errorf("type must be DEBIT or CREDIT")
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return fmt.Errorf("to date must be after or equal to from date")
	}

	minAmount, err := r.MinDenominated()
	if err != nil {
		return err
	}
	maxAmount, err := r.MaxDenominated()
	if err != nil {
		return err
	}
	if minAmount != "" && maxAmount != "" {
		cmp, err := common.CompareAmounts(minAmount, maxAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		if cmp == 1 {
			return fmt.Errorf("minAmount must be less than or equal to maxAmount")
		}
	}
	return nil
}

// MinDenominated returns MinAmount in smallest units, or "" if unset
func (r *LogRequest) MinDenominated() (string, error) {
	return denominatedFilter("minAmount", r.MinAmount)
}

// MaxDenominated returns MaxAmount in smallest units, or "" if unset
func (r *LogRequest) MaxDenominated() (string, error) {
	return denominatedFilter("maxAmount", r.MaxAmount)
}

func denominatedFilter(name string, egld *string) (string, error) {
	if egld == nil {
		return "", nil
	}
	d, err := common.EGLDToDenominated(*egld)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
