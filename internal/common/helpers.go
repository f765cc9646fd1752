package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	EGLDDecimals = 18 // 1 eGLD = 10^18 smallest units
)

// EGLDToDenominated converts a human eGLD amount ("0.001") to the smallest
// denomination ("1000000000000000") without float precision loss.
// Amounts with more than 18 fractional digits are rejected, not truncated.
func EGLDToDenominated(egld string) (string, error) {
	return parseWithDecimals(egld, EGLDDecimals)
}

// DenominatedToEGLD converts smallest units back to a human eGLD amount.
// Example: DenominatedToEGLD("100000000000000") = "0.0001"
func DenominatedToEGLD(denominated string) (string, error) {
	d, err := parseInteger(denominated)
	if err != nil {
		return "", err
	}
	return d.Shift(-EGLDDecimals).String(), nil
}

// CompareAmounts compares two smallest-denomination integer strings.
// Returns: -1 if a < b, 0 if a == b, 1 if a > b, and error if parsing fails
func CompareAmounts(a, b string) (int, error) {
	aVal, err := parseInteger(a)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := parseInteger(b)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	return aVal.Cmp(bVal), nil
}

// parseWithDecimals converts decimal string to integer string by shifting the decimal point
// Example: parseWithDecimals("0.024981836", 9) = "24981836"
func parseWithDecimals(s string, decimals int32) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty string")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("invalid decimal format: %w", err)
	}
	if d.IsNegative() {
		return "", fmt.Errorf("amount must not be negative")
	}

	shifted := d.Shift(decimals)
	if !shifted.IsInteger() {
		return "", fmt.Errorf("amount has more than %d decimals", decimals)
	}
	return shifted.BigInt().String(), nil
}

func parseInteger(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid integer format: %w", err)
	}
	if !d.IsInteger() || d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%q is not a non-negative integer", s)
	}
	return d, nil
}
