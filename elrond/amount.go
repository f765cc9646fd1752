package elrond

import (
	"fmt"

	"github.com/AlexZinkM/elrond-wallet/internal/common"
)

// CurrencyAmount is an eGLD amount held in the smallest denomination,
// 1 eGLD = 10^18 units.
type CurrencyAmount struct {
	denominated string
}

// ParseCurrencyAmount reads a human amount such as "2" or "0.001" eGLD.
func ParseCurrencyAmount(egld string) (CurrencyAmount, error) {
	denominated, err := common.EGLDToDenominated(egld)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("%w: amount %q: %v", ErrInvalidTransaction, egld, err)
	}
	return CurrencyAmount{denominated: denominated}, nil
}

// CurrencyAmountFromDenominated wraps an amount already in smallest units,
// e.g. a balance returned by a gateway.
func CurrencyAmountFromDenominated(denominated string) (CurrencyAmount, error) {
	if err := validateAmount(denominated); err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{denominated: denominated}, nil
}

// Denominated returns the amount in smallest units, the form
// NewUnsignedTransaction expects.
func (a CurrencyAmount) Denominated() string {
	if a.denominated == "" {
		return "0"
	}
	return a.denominated
}

// String returns the amount in eGLD.
func (a CurrencyAmount) String() string {
	s, err := common.DenominatedToEGLD(a.Denominated())
	if err != nil {
		// denominated is validated by both constructors
		panic(fmt.Sprintf("elrond: corrupted amount %q: %v", a.denominated, err))
	}
	return s
}
