package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlexZinkM/elrond-wallet/elrond"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: Password is prompted at runtime and stored in memory - use GetElrondPasswordBytes()
type Config struct {
	Port             string `envconfig:"PORT" default:"8080"`
	PayCooldown      int    `envconfig:"PAY_COOLDOWN_MINUTES" default:"4"`
	ElrondFilePath   string `envconfig:"ELROND_FILE_PATH" required:"true"`
	ElrondGatewayURL string `envconfig:"ELROND_GATEWAY_URL" default:"https://gateway.multiversx.com"`
	ElrondNetwork    string `envconfig:"ELROND_NETWORK" default:"mainnet"`
	CoinGeckoURL     string `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3"`
	LogEnv           string `envconfig:"LOG_ENV" default:"development"`

	network elrond.Network
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}

	if strings.TrimSpace(c.ElrondFilePath) == "" {
		return errors.New("failed to process config: ELROND_FILE_PATH is empty")
	}

	network, err := elrond.ParseNetwork(c.ElrondNetwork)
	if err != nil {
		return fmt.Errorf("failed to process config: ELROND_NETWORK: %w", err)
	}
	if c.PayCooldown < 0 {
		return errors.New("failed to process config: PAY_COOLDOWN_MINUTES must not be negative")
	}
	c.network = network

	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetPayCooldown returns the pause enforced between two payments
func GetPayCooldown() time.Duration {
	return time.Duration(Get().PayCooldown) * time.Minute
}

// GetElrondFilePath returns path to the .ewt key file
func GetElrondFilePath() string {
	return Get().ElrondFilePath
}

// GetElrondGatewayURL returns the gateway REST URL
func GetElrondGatewayURL() string {
	return Get().ElrondGatewayURL
}

// GetElrondNetwork returns the network transactions are built for
func GetElrondNetwork() elrond.Network {
	return Get().network
}

// GetCoinGeckoURL returns the price API URL
func GetCoinGeckoURL() string {
	return Get().CoinGeckoURL
}

// GetLogEnv returns "production" or "development"
func GetLogEnv() string {
	return Get().LogEnv
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassword() error {
	raw, err := ReadPassword("Enter wallet password: ")
	if err != nil {
		return err
	}
	SetPassword(raw)
	clear(raw)
	return nil
}

// ReadPassword reads a non-empty password from the terminal without echo.
// Caller must zero the returned slice after use.
func ReadPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// SetPassword stores a copy of password in memory
func SetPassword(password []byte) {
	clear(passwordBytes)
	passwordBytes = make([]byte, len(password))
	copy(passwordBytes, password)
}

// GetElrondPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetElrondPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
