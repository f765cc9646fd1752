package elrond

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

const (
	// TransactionVersion is the transaction protocol version signed by this package.
	TransactionVersion uint32 = 1

	defaultMinGasPrice    uint64 = 1_000_000_000
	defaultMinGasLimit    uint64 = 50_000
	defaultGasPerDataByte uint64 = 1_500
)

// Network identifies the chain a transaction targets and the gas policy that
// goes with it. The chain ID is part of the signed payload, so a transaction
// built for one network is rejected by every other.
//
// Use MainNet, TestNet, DevNet or CustomNetwork; the zero value is invalid.
type Network struct {
	name           string
	chainID        string
	minGasPrice    uint64
	minGasLimit    uint64
	gasPerDataByte uint64
}

var (
	MainNet = Network{
		name:           "mainnet",
		chainID:        "1",
		minGasPrice:    defaultMinGasPrice,
		minGasLimit:    defaultMinGasLimit,
		gasPerDataByte: defaultGasPerDataByte,
	}
	TestNet = Network{
		name:           "testnet",
		chainID:        "T",
		minGasPrice:    defaultMinGasPrice,
		minGasLimit:    defaultMinGasLimit,
		gasPerDataByte: defaultGasPerDataByte,
	}
	DevNet = Network{
		name:           "devnet",
		chainID:        "D",
		minGasPrice:    defaultMinGasPrice,
		minGasLimit:    defaultMinGasLimit,
		gasPerDataByte: defaultGasPerDataByte,
	}
)

// CustomNetwork describes a chain other than the public ones, e.g. a local
// testnet. The base gas limit stays at the protocol's 50000.
func CustomNetwork(chainID string, minGasPrice, gasPerDataByte uint64) Network {
	return Network{
		name:           "custom",
		chainID:        chainID,
		minGasPrice:    minGasPrice,
		minGasLimit:    defaultMinGasLimit,
		gasPerDataByte: gasPerDataByte,
	}
}

// ParseNetwork maps "mainnet", "testnet" and "devnet" to their networks.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mainnet", "main":
		return MainNet, nil
	case "testnet", "test":
		return TestNet, nil
	case "devnet", "dev":
		return DevNet, nil
	default:
		return Network{}, fmt.Errorf("unknown network %q (expected mainnet, testnet or devnet)", name)
	}
}

// ChainID returns the identifier that goes into the signed payload.
func (n Network) ChainID() string { return n.chainID }

// MinGasPrice returns the lowest gas price the network accepts.
func (n Network) MinGasPrice() uint64 { return n.minGasPrice }

// MinGasLimit returns the lowest gas limit for a transaction carrying
// dataLen bytes of data. It saturates at math.MaxUint64 instead of wrapping;
// a negative dataLen counts as no data.
func (n Network) MinGasLimit(dataLen int) uint64 {
	if dataLen < 0 {
		dataLen = 0
	}
	hi, perData := bits.Mul64(n.gasPerDataByte, uint64(dataLen))
	if hi != 0 {
		return math.MaxUint64
	}
	limit, carry := bits.Add64(n.minGasLimit, perData, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return limit
}

// Version returns the transaction version used on this network.
func (n Network) Version() uint32 { return TransactionVersion }

func (n Network) String() string {
	if n.name == "custom" {
		return fmt.Sprintf("custom(%s)", n.chainID)
	}
	return n.name
}

func (n Network) isValid() bool {
	return n.chainID != ""
}
