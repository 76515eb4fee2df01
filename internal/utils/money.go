package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundMoney rounds to 2 decimal places (currency minor unit).
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ParsePrice parses a stored price value that may carry currency noise
// ("$ 1,250.00", "1250"). Empty input is a valid zero. A non-numeric value
// returns an error so the caller can log the bad catalog row; callers fall
// back to 0 explicitly, never silently.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	replacer := strings.NewReplacer("$", "", ",", "", " ", "")
	s = replacer.Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price value %q", s)
	}
	return v, nil
}
