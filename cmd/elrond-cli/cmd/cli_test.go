package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexZinkM/elrond-wallet/elrond"
	"github.com/AlexZinkM/elrond-wallet/internal/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecretHex = "a4b36a5d97176618b5a7fcc9228d2fd98ee2f14ddd3d6462ae03e40eb487d15b"
	testAddress   = "erd146apxa83wr7paz3gsg07dhcpg98ascjtpg9p8l8g5rpmg6chhchq9ccvmc"
	testReceiver  = "erd16jats393r8rnut88yhvu5wvxxje57qzlj3tqk7n6jnf7f6cxs4uqfeh65k"
)

func TestMain(m *testing.M) {
	restore := crypto.SetScryptCost(1 << 10)
	code := m.Run()
	restore()
	os.Exit(code)
}

// typePasswords answers the next password prompts in order
func typePasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := readPassword
	readPassword = func(prompt string) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("unexpected password prompt: " + prompt)
		}
		answer := []byte(answers[0])
		answers = answers[1:]
		return answer, nil
	}
	t.Cleanup(func() { readPassword = orig })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func fakeGateway(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/address/" + testAddress + "/nonce":
			_, _ = io.WriteString(w, `{"data":{"nonce":12},"error":"","code":"successful"}`)
		case "/address/" + testAddress + "/balance":
			_, _ = io.WriteString(w, `{"data":{"balance":"1250000000000000000"},"error":"","code":"successful"}`)
		case "/transaction/send":
			_, _ = io.WriteString(w, `{"data":{"txHash":"beef"},"error":"","code":"successful"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAddressFromSecret(t *testing.T) {
	out, err := run(t, "address", "--secret", testSecretHex)
	require.NoError(t, err)
	assert.Equal(t, testAddress, out)

	_, err = run(t, "address", "--secret", "zz")
	assert.ErrorIs(t, err, elrond.ErrInvalidKey)
}

func TestNonceAndBalance(t *testing.T) {
	srv := fakeGateway(t)

	out, err := run(t, "nonce", testAddress, "--gateway", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "12", out)

	out, err = run(t, "balance", testAddress, "--gateway", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "1.25 eGLD", out)

	out, err = run(t, "balance", testAddress, "--gateway", srv.URL, "--denominated")
	require.NoError(t, err)
	assert.Equal(t, "1250000000000000000", out)
}

func TestSend(t *testing.T) {
	srv := fakeGateway(t)

	account, err := elrond.AccountFromString(testSecretHex)
	require.NoError(t, err)
	tx, err := elrond.NewUnsignedTransaction(12, "1000", testReceiver, testAddress, elrond.DevNet)
	require.NoError(t, err)
	signed, err := tx.Sign(account)
	require.NoError(t, err)

	data, err := json.Marshal(signed)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "signed.json")
	require.NoError(t, os.WriteFile(path, data, 0600))

	out, err := run(t, "send", "-i", path, "--network", "devnet", "--gateway", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "beef", out)

	_, err = run(t, "send", "-i", path, "--network", "mainnet", "--gateway", srv.URL)
	assert.Error(t, err)
}

func TestSendRejectsTamperedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"nonce":1}`), 0600))

	_, err := run(t, "send", "-i", path, "--network", "devnet")
	assert.ErrorIs(t, err, elrond.ErrInvalidTransaction)
}

func newKeyFile(t *testing.T, password string) (keyFile, address string) {
	t.Helper()
	keyFile = filepath.Join(t.TempDir(), "wallet"+crypto.KeyFileExt)

	typePasswords(t, password, password)
	out, err := run(t, "new", "--key", keyFile, "--network", "devnet")
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "Address: "); ok {
			address = rest
		}
	}
	require.True(t, strings.HasPrefix(address, "erd1"), out)
	return keyFile, address
}

func TestNew(t *testing.T) {
	keyFile, address := newKeyFile(t, "pw")

	kf, err := crypto.ReadKeyFile(keyFile)
	require.NoError(t, err)
	assert.Equal(t, "D", kf.Network)
	assert.Equal(t, address, kf.Address)

	typePasswords(t, "pw", "pw")
	_, err = run(t, "new", "--key", keyFile, "--network", "devnet")
	assert.Error(t, err)
}

func TestNewPasswordsDoNotMatch(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "wallet"+crypto.KeyFileExt)

	typePasswords(t, "one", "two")
	_, err := run(t, "new", "--key", keyFile, "--network", "devnet")
	assert.EqualError(t, err, "passwords do not match")
	assert.NoFileExists(t, keyFile)
}

func TestSignWithExplicitNonce(t *testing.T) {
	keyFile, address := newKeyFile(t, "pw")
	output := filepath.Join(t.TempDir(), "signed.json")

	typePasswords(t, "pw")
	_, err := run(t, "sign", "--key", keyFile, "--to", testReceiver, "--amount", "0.1",
		"--nonce", "5", "--data", "hello", "--network", "devnet", "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	signed, err := elrond.ParseSignedTransaction(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), signed.Nonce())
	assert.Equal(t, "100000000000000000", signed.Value())
	assert.Equal(t, address, signed.Sender().String())
	assert.Equal(t, testReceiver, signed.Receiver().String())
	assert.Equal(t, "D", signed.ChainID())
	assert.Equal(t, []byte("hello"), signed.Data())
	assert.Equal(t, uint64(50_000+1_500*5), signed.GasLimit())
	assert.True(t, signed.Verify())
}

func TestSignWrongPassword(t *testing.T) {
	keyFile, _ := newKeyFile(t, "pw")

	typePasswords(t, "not-pw")
	_, err := run(t, "sign", "--key", keyFile, "--to", testReceiver, "--amount", "0.1",
		"--nonce", "1", "--network", "devnet")
	assert.ErrorIs(t, err, crypto.ErrWrongPassword)
}
