package wallet

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/common"
	"github.com/AlexZinkM/elrond-wallet/internal/logger"
	"github.com/AlexZinkM/elrond-wallet/internal/model"

	"go.uber.org/zap"
)

// PayEGLD sends amount eGLD to req.ToAddress from the key file account.
// One payment at a time; after a successful one the next waits for the cooldown.
// password must be []byte for security (caller should zero it after use)
func (s *Service) PayEGLD(ctx context.Context, password []byte, req model.PayRequest) (*model.PayResponse, error) {
	if _, err := elrond.NewAddress(req.ToAddress); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}

	amount, err := elrond.ParseCurrencyAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	s.payMutex.Lock()
	defer s.payMutex.Unlock()

	if !s.lastPayTime.IsZero() {
		if elapsed := s.now().Sub(s.lastPayTime); elapsed < s.cooldown {
			remaining := s.cooldown - elapsed
			return nil, fmt.Errorf("%w, please wait %v", ErrCooldown, remaining.Round(time.Second))
		}
	}

	account, err := s.LoadAccount(password)
	if err != nil {
		return nil, err
	}
	defer account.Wipe()

	sender := account.Address().String()

	nonce, err := s.gateway.GetAddressNonce(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	var opts []elrond.TxOption
	if req.Data != "" {
		opts = append(opts, elrond.WithData([]byte(req.Data)))
	}

	tx, err := elrond.NewUnsignedTransaction(nonce, amount.Denominated(), req.ToAddress, sender, s.network, opts...)
	if err != nil {
		return nil, err
	}

	balance, err := s.gateway.GetAddressBalance(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("failed to check balance: %w", err)
	}

	if err := checkFunds(balance, tx); err != nil {
		return nil, err
	}

	signed, err := tx.Sign(account)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	txHash, err := s.gateway.PostSignedTransaction(ctx, signed)
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	s.lastPayTime = s.now()

	feeEGLD, _ := common.DenominatedToEGLD(tx.MaxFee().String())
	logger.Info("payment sent",
		zap.String("txHash", string(txHash)),
		zap.String("to", req.ToAddress),
		zap.String("amount", amount.String()),
		zap.Uint64("nonce", nonce),
	)

	return &model.PayResponse{
		TxHash:   string(txHash),
		Nonce:    nonce,
		GasLimit: tx.GasLimit(),
		MaxFee:   feeEGLD,
	}, nil
}

// checkFunds requires balance to cover value plus the worst case fee
func checkFunds(balance elrond.CurrencyAmount, tx *elrond.UnsignedTransaction) error {
	cmp, err := common.CompareAmounts(balance.Denominated(), tx.MaxCost().String())
	if err != nil {
		return fmt.Errorf("failed to check balance: %w", err)
	}
	if cmp >= 0 {
		return nil
	}

	have, _ := new(big.Int).SetString(balance.Denominated(), 10)
	maxFee := tx.MaxFee()
	fee, _ := common.DenominatedToEGLD(maxFee.String())
	maxSend := "0"
	if spendable := new(big.Int).Sub(have, maxFee); spendable.Sign() > 0 {
		maxSend, _ = common.DenominatedToEGLD(spendable.String())
	}
	return fmt.Errorf("%w: have %s eGLD, transaction fee up to %s eGLD, max you can send: %s eGLD",
		ErrInsufficientFunds, balance.String(), fee, maxSend)
}
