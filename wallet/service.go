// Package wallet implements the use cases of the local key file wallet:
// create a key file, look up its balance and history, and pay eGLD from it.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/client"
	"github.com/AlexZinkM/elrond-wallet/internal/crypto"
	"github.com/AlexZinkM/elrond-wallet/internal/model"

	"github.com/shopspring/decimal"
)

var (
	ErrCooldown          = errors.New("cooldown active")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrNetworkMismatch   = errors.New("key file belongs to another network")
)

// Gateway is the part of the node API the wallet uses.
type Gateway interface {
	elrond.Client
	GetAddressBalance(ctx context.Context, address string) (elrond.CurrencyAmount, error)
	GetAddressTransactions(ctx context.Context, address string) ([]client.AddressTransaction, error)
}

// RateSource quotes eGLD in USD. Optional.
type RateSource interface {
	GetEGLDtoUSDrate(ctx context.Context) (decimal.Decimal, error)
}

// Service holds one key file and the network it is used on
type Service struct {
	filePath string
	network  elrond.Network
	gateway  Gateway
	rates    RateSource
	cooldown time.Duration

	payMutex    sync.Mutex
	lastPayTime time.Time
	now         func() time.Time
}

// NewService creates a wallet service. rates may be nil.
func NewService(filePath string, network elrond.Network, gateway Gateway, rates RateSource, cooldown time.Duration) *Service {
	return &Service{
		filePath: filePath,
		network:  network,
		gateway:  gateway,
		rates:    rates,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// FilePath returns the key file location
func (s *Service) FilePath() string { return s.filePath }

// Network returns the network the service builds transactions for
func (s *Service) Network() elrond.Network { return s.network }

// Address reads the wallet address from the key file header
func (s *Service) Address() (elrond.Address, error) {
	keyFile, err := s.readKeyFile()
	if err != nil {
		return elrond.Address{}, err
	}
	return elrond.NewAddress(keyFile.Address)
}

func (s *Service) readKeyFile() (*model.KeyFile, error) {
	keyFile, err := crypto.ReadKeyFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet address: %w", err)
	}
	if keyFile.Network != s.network.ChainID() {
		return nil, fmt.Errorf("%w: file chain %q, configured %q", ErrNetworkMismatch, keyFile.Network, s.network.ChainID())
	}
	return keyFile, nil
}

// LoadAccount decrypts the key file and checks the seed matches the stored address.
// Caller must Wipe the account after use.
// password must be []byte for security (caller should zero it after use)
func (s *Service) LoadAccount(password []byte) (*elrond.Account, error) {
	keyFile, walletData, err := crypto.DecryptWallet(s.filePath, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}
	defer clear(walletData.Seed)

	if keyFile.Network != s.network.ChainID() {
		return nil, fmt.Errorf("%w: file chain %q, configured %q", ErrNetworkMismatch, keyFile.Network, s.network.ChainID())
	}

	account, err := elrond.AccountFromSeed(walletData.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to load key: %w", err)
	}

	if account.Address().String() != keyFile.Address {
		account.Wipe()
		return nil, fmt.Errorf("private key does not match address %s", keyFile.Address)
	}

	return account, nil
}
