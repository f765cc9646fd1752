package elrond

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecretHex = "a4b36a5d97176618b5a7fcc9228d2fd98ee2f14ddd3d6462ae03e40eb487d15b"
	testPubKeyHex = "aeba1374f170fc1e8a28821fe6df01414fd8624b0a0a13fce8a0c3b46b17be2e"
	testAddress   = "erd146apxa83wr7paz3gsg07dhcpg98ascjtpg9p8l8g5rpmg6chhchq9ccvmc"

	// public key of seed 0x00..0x1f
	otherAddress = "erd1qwss00lnecgtu8tsm5vwwj7qn9n7f43snwjs6hcamjrxgyj4xxuquc0gv0"

	testReceiver       = "erd16jats393r8rnut88yhvu5wvxxje57qzlj3tqk7n6jnf7f6cxs4uqfeh65k"
	testReceiverPubHex = "d4bab844b119c73e2ce725d9ca398634b34f005f94560b7a7a94d3e4eb068578"
)

func testAccount(t *testing.T) *Account {
	t.Helper()
	account, err := AccountFromString(testSecretHex)
	require.NoError(t, err)
	return account
}

func otherAccount(t *testing.T) *Account {
	t.Helper()
	seed := make([]byte, SecretKeyLength)
	for i := range seed {
		seed[i] = byte(i)
	}
	account, err := AccountFromSeed(seed)
	require.NoError(t, err)
	return account
}

func TestAccountFromString(t *testing.T) {
	account := testAccount(t)

	pub := account.PublicKey()
	assert.Equal(t, testPubKeyHex, hex.EncodeToString(pub[:]))
	assert.Equal(t, testAddress, account.Address().String())
	assert.Equal(t, testSecretHex, account.String())
	assert.Equal(t, otherAddress, otherAccount(t).Address().String())
}

func TestAccountFromStringInvalid(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"not hex", strings.Repeat("zz", 32)},
		{"odd length", testSecretHex[:63]},
		{"too short", testSecretHex[:62]},
		{"too long", testSecretHex + "00"},
		{"expanded 64-byte key", testSecretHex + testPubKeyHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := AccountFromString(tt.secret)
			assert.Nil(t, account)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestGenerateAndReloadAccount(t *testing.T) {
	account := GenerateAccount()

	copied, err := AccountFromString(account.String())
	require.NoError(t, err)

	assert.Equal(t, account.Secret(), copied.Secret())
	assert.Equal(t, account.PublicKey(), copied.PublicKey())
	assert.Equal(t, account.Address().String(), copied.Address().String())

	assert.NotEqual(t, account.Address().String(), GenerateAccount().Address().String())
}

func TestAccountSecretIsCopy(t *testing.T) {
	account := testAccount(t)

	secret := account.Secret()
	clear(secret)

	assert.Equal(t, testSecretHex, account.String())
}

func TestAccountSign(t *testing.T) {
	account := testAccount(t)

	sig := account.Sign([]byte("dummy data"))
	assert.Equal(t,
		"a25d1b1e24cd9299396e0c6e191b80a8e4f54e19c495955f13d6c168e5784dd642f540938333851fb1abcaa6d13f327ac2341607ad2fbb941dfdeeb6c4fcd803",
		hex.EncodeToString(sig[:]))
	assert.True(t, Verify(account.PublicKey(), []byte("dummy data"), sig[:]))
	assert.False(t, Verify(account.PublicKey(), []byte("other data"), sig[:]))
	assert.False(t, Verify(account.PublicKey(), []byte("dummy data"), sig[:32]))
}

func TestAccountWipe(t *testing.T) {
	account := GenerateAccount()
	account.Wipe()

	assert.Equal(t, strings.Repeat("00", SecretKeyLength), account.String())
}
