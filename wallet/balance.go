package wallet

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/elrond-wallet/internal/logger"
	"github.com/AlexZinkM/elrond-wallet/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetBalance gets wallet balance and nonce, plus the USD value when a rate source is set
func (s *Service) GetBalance(ctx context.Context) (*model.BalanceResponse, error) {
	keyFile, err := s.readKeyFile()
	if err != nil {
		return nil, err
	}
	address := keyFile.Address

	balance, err := s.gateway.GetAddressBalance(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	nonce, err := s.gateway.GetAddressNonce(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	resp := &model.BalanceResponse{
		Address:     address,
		Network:     s.network.String(),
		EGLD:        balance.String(),
		Denominated: balance.Denominated(),
		Nonce:       nonce,
	}

	if s.rates == nil {
		return resp, nil
	}

	// the rate is informational, a price API outage must not hide the balance
	rate, err := s.rates.GetEGLDtoUSDrate(ctx)
	if err != nil {
		logger.Warn("failed to get eGLD rate", zap.Error(err))
		return resp, nil
	}

	egld, err := decimal.NewFromString(resp.EGLD)
	if err != nil {
		return nil, fmt.Errorf("failed to convert balance: %w", err)
	}
	resp.Rate = rate.String()
	resp.USD = egld.Mul(rate).StringFixed(2)

	return resp, nil
}
