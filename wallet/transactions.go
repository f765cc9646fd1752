package wallet

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/AlexZinkM/elrond-wallet/internal/client"
	"github.com/AlexZinkM/elrond-wallet/internal/common"
	"github.com/AlexZinkM/elrond-wallet/internal/model"

	"github.com/shopspring/decimal"
)

// Transactions gets wallet transactions with filtering, newest first.
// DEBIT is value received by the key file address, CREDIT is value it sent.
func (s *Service) Transactions(ctx context.Context, req *model.LogRequest) (*model.LogResponse, error) {
	if req == nil {
		req = &model.LogRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	minAmount, _ := req.MinDenominated()
	maxAmount, _ := req.MaxDenominated()

	keyFile, err := s.readKeyFile()
	if err != nil {
		return nil, err
	}
	address := keyFile.Address

	history, err := s.gateway.GetAddressTransactions(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	result := make([]model.Transaction, 0, len(history))
	totalIncome, totalSpent := decimal.Zero, decimal.Zero
	for _, tx := range history {
		var txType model.TransactionType
		switch address {
		case tx.Sender:
			txType = model.TransactionTypeCredit
		case tx.Receiver:
			txType = model.TransactionTypeDebit
		default:
			continue
		}

		if req.Type != nil && *req.Type != txType {
			continue
		}
		if req.TxHash != nil && *req.TxHash != tx.Hash {
			continue
		}

		timestamp := time.Unix(tx.Timestamp, 0).UTC()
		if req.From != nil && timestamp.Before(*req.From) {
			continue
		}
		if req.To != nil && timestamp.After(*req.To) {
			continue
		}

		// integer comparison in smallest units
		if minAmount != "" {
			cmp, err := common.CompareAmounts(tx.Value, minAmount)
			if err != nil {
				return nil, fmt.Errorf("failed to compare min amount: %w", err)
			}
			if cmp < 0 {
				continue
			}
		}
		if maxAmount != "" {
			cmp, err := common.CompareAmounts(tx.Value, maxAmount)
			if err != nil {
				return nil, fmt.Errorf("failed to compare max amount: %w", err)
			}
			if cmp > 0 {
				continue
			}
		}

		amount, err := common.DenominatedToEGLD(tx.Value)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.Hash, err)
		}
		fee, err := ourFee(txType, tx)
		if err != nil {
			return nil, err
		}

		result = append(result, model.Transaction{
			Type:        txType,
			TxHash:      tx.Hash,
			From:        tx.Sender,
			To:          tx.Receiver,
			Amount:      amount,
			OurFeeEGLD:  fee,
			Nonce:       tx.Nonce,
			Timestamp:   timestamp,
			BlockNumber: tx.Round,
			Status:      tx.Status,
		})

		// failed and invalid transactions moved no value
		if tx.Status == "fail" || tx.Status == "invalid" {
			continue
		}
		value := decimal.RequireFromString(amount)
		if txType == model.TransactionTypeDebit {
			totalIncome = totalIncome.Add(value)
		} else {
			totalSpent = totalSpent.Add(value)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return &model.LogResponse{
		Address:         address,
		TotalIncomeEGLD: totalIncome.String(),
		TotalSpentEGLD:  totalSpent.String(),
		Transactions:    result,
	}, nil
}

// ourFee is the fee in eGLD the wallet paid; received transactions cost us nothing
func ourFee(txType model.TransactionType, tx client.AddressTransaction) (string, error) {
	if txType != model.TransactionTypeCredit || tx.Fee == "" {
		return "0", nil
	}
	fee, err := common.DenominatedToEGLD(tx.Fee)
	if err != nil {
		return "", fmt.Errorf("transaction %s: invalid fee: %w", tx.Hash, err)
	}
	return fee, nil
}
