package wallet

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/client"
	"github.com/AlexZinkM/elrond-wallet/internal/crypto"
	"github.com/AlexZinkM/elrond-wallet/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReceiver = "erd16jats393r8rnut88yhvu5wvxxje57qzlj3tqk7n6jnf7f6cxs4uqfeh65k"

var testPassword = []byte("correct horse battery staple")

func TestMain(m *testing.M) {
	restore := crypto.SetScryptCost(1 << 10)
	code := m.Run()
	restore()
	os.Exit(code)
}

type fakeGateway struct {
	mu      sync.Mutex
	nonce   uint64
	balance string
	postErr error
	posted  []*elrond.SignedTransaction
	history []client.AddressTransaction
}

func (g *fakeGateway) GetAddressNonce(ctx context.Context, address string) (uint64, error) {
	return g.nonce, nil
}

func (g *fakeGateway) GetAddressBalance(ctx context.Context, address string) (elrond.CurrencyAmount, error) {
	return elrond.CurrencyAmountFromDenominated(g.balance)
}

func (g *fakeGateway) GetAddressTransactions(ctx context.Context, address string) ([]client.AddressTransaction, error) {
	return g.history, nil
}

func (g *fakeGateway) PostSignedTransaction(ctx context.Context, tx *elrond.SignedTransaction) (elrond.TransactionHash, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.postErr != nil {
		return "", g.postErr
	}
	g.posted = append(g.posted, tx)
	return "hash-1", nil
}

type fakeRates struct {
	rate decimal.Decimal
	err  error
}

func (r fakeRates) GetEGLDtoUSDrate(ctx context.Context) (decimal.Decimal, error) {
	return r.rate, r.err
}

func newTestService(t *testing.T, gateway Gateway, rates RateSource) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallet"+crypto.KeyFileExt)
	s := NewService(path, elrond.DevNet, gateway, rates, 4*time.Minute)
	_, err := s.GenerateWallet(testPassword)
	require.NoError(t, err)
	return s
}

func TestGenerateWallet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet"+crypto.KeyFileExt)
	s := NewService(path, elrond.DevNet, &fakeGateway{}, nil, 0)

	address, err := s.GenerateWallet(testPassword)
	require.NoError(t, err)
	assert.Len(t, address, 62)

	stored, err := s.Address()
	require.NoError(t, err)
	assert.Equal(t, address, stored.String())

	keyFile, err := crypto.ReadKeyFile(path)
	require.NoError(t, err)
	assert.Equal(t, "D", keyFile.Network)
	assert.NotEmpty(t, keyFile.QR)

	account, err := s.LoadAccount(testPassword)
	require.NoError(t, err)
	defer account.Wipe()
	assert.Equal(t, address, account.Address().String())

	_, err = s.GenerateWallet(testPassword)
	assert.True(t, IsFileExistsError(err))
}

func TestGenerateWalletWrongExtension(t *testing.T) {
	s := NewService(filepath.Join(t.TempDir(), "wallet.json"), elrond.DevNet, &fakeGateway{}, nil, 0)
	_, err := s.GenerateWallet(testPassword)
	assert.Error(t, err)
	assert.False(t, IsFileExistsError(err))
}

func TestLoadAccountErrors(t *testing.T) {
	s := newTestService(t, &fakeGateway{}, nil)

	_, err := s.LoadAccount([]byte("nope"))
	assert.ErrorIs(t, err, crypto.ErrWrongPassword)

	other := NewService(s.FilePath(), elrond.MainNet, &fakeGateway{}, nil, 0)
	_, err = other.LoadAccount(testPassword)
	assert.ErrorIs(t, err, ErrNetworkMismatch)

	_, err = other.Address()
	assert.ErrorIs(t, err, ErrNetworkMismatch)
}

func TestGetBalance(t *testing.T) {
	gateway := &fakeGateway{nonce: 3, balance: "2500000000000000000"}
	s := newTestService(t, gateway, fakeRates{rate: decimal.RequireFromString("31.47")})

	resp, err := s.GetBalance(context.Background())
	require.NoError(t, err)

	address, err := s.Address()
	require.NoError(t, err)
	assert.Equal(t, &model.BalanceResponse{
		Address:     address.String(),
		Network:     "devnet",
		EGLD:        "2.5",
		Denominated: "2500000000000000000",
		Nonce:       3,
		Rate:        "31.47",
		USD:         "78.68",
	}, resp)
}

func TestGetBalanceWithoutRate(t *testing.T) {
	gateway := &fakeGateway{balance: "1"}

	for _, rates := range []RateSource{nil, fakeRates{err: errors.New("rate limited")}} {
		s := newTestService(t, gateway, rates)

		resp, err := s.GetBalance(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "0.000000000000000001", resp.EGLD)
		assert.Empty(t, resp.Rate)
		assert.Empty(t, resp.USD)
	}
}

func TestPayEGLD(t *testing.T) {
	gateway := &fakeGateway{nonce: 7, balance: "1000000000000000000"}
	s := newTestService(t, gateway, nil)

	resp, err := s.PayEGLD(context.Background(), testPassword, model.PayRequest{
		ToAddress: testReceiver,
		Amount:    "0.5",
		Data:      "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, &model.PayResponse{
		TxHash:   "hash-1",
		Nonce:    7,
		GasLimit: 53_000,
		MaxFee:   "0.000053",
	}, resp)

	require.Len(t, gateway.posted, 1)
	tx := gateway.posted[0]
	assert.Equal(t, "500000000000000000", tx.Value())
	assert.Equal(t, testReceiver, tx.Receiver().String())
	assert.Equal(t, "D", tx.ChainID())
	assert.Equal(t, []byte("hi"), tx.Data())
	assert.True(t, tx.Verify())

	address, err := s.Address()
	require.NoError(t, err)
	assert.True(t, address.Equal(tx.Sender()))
}

func TestPayEGLDCooldown(t *testing.T) {
	gateway := &fakeGateway{balance: "1000000000000000000"}
	s := newTestService(t, gateway, nil)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	req := model.PayRequest{ToAddress: testReceiver, Amount: "0.1"}

	_, err := s.PayEGLD(context.Background(), testPassword, req)
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	_, err = s.PayEGLD(context.Background(), testPassword, req)
	assert.ErrorIs(t, err, ErrCooldown)

	clock = clock.Add(3 * time.Minute)
	_, err = s.PayEGLD(context.Background(), testPassword, req)
	require.NoError(t, err)

	assert.Len(t, gateway.posted, 2)
}

func TestPayEGLDFailedSendDoesNotStartCooldown(t *testing.T) {
	gateway := &fakeGateway{balance: "1000000000000000000", postErr: elrond.ErrClient}
	s := newTestService(t, gateway, nil)

	req := model.PayRequest{ToAddress: testReceiver, Amount: "0.1"}

	_, err := s.PayEGLD(context.Background(), testPassword, req)
	assert.ErrorIs(t, err, elrond.ErrClient)

	gateway.postErr = nil
	_, err = s.PayEGLD(context.Background(), testPassword, req)
	assert.NoError(t, err)
}

func TestPayEGLDRejects(t *testing.T) {
	tests := []struct {
		name     string
		balance  string
		req      model.PayRequest
		password []byte
		want     error
	}{
		{
			name:     "bad recipient",
			balance:  "1000000000000000000",
			req:      model.PayRequest{ToAddress: "erd1nope", Amount: "1"},
			password: testPassword,
			want:     elrond.ErrInvalidAddress,
		},
		{
			name:     "bad amount",
			balance:  "1000000000000000000",
			req:      model.PayRequest{ToAddress: testReceiver, Amount: "-1"},
			password: testPassword,
			want:     elrond.ErrInvalidTransaction,
		},
		{
			name:     "no room for the fee",
			balance:  "1000000000000000000",
			req:      model.PayRequest{ToAddress: testReceiver, Amount: "1"},
			password: testPassword,
			want:     ErrInsufficientFunds,
		},
		{
			name:     "wrong password",
			balance:  "1000000000000000000",
			req:      model.PayRequest{ToAddress: testReceiver, Amount: "0.1"},
			password: []byte("guess"),
			want:     crypto.ErrWrongPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &fakeGateway{balance: tt.balance}
			s := newTestService(t, gateway, nil)

			resp, err := s.PayEGLD(context.Background(), tt.password, tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, gateway.posted)
		})
	}
}

func TestInsufficientFundsMessage(t *testing.T) {
	gateway := &fakeGateway{balance: "1000000000000000000"}
	s := newTestService(t, gateway, nil)

	_, err := s.PayEGLD(context.Background(), testPassword, model.PayRequest{ToAddress: testReceiver, Amount: "1"})
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "max you can send: 0.99995 eGLD")
}
