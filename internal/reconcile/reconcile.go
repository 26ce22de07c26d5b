// Package reconcile implements the reality check for account balances:
// validating and normalizing user-entered balance values according to the
// account kind and computing the difference against the recorded balance.
package reconcile

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountKind classifies how balance input for an account is parsed.
//
// Decimal-capable accounts (typically bank accounts) accept up to two
// decimal places with "," or "." as decimal separator. Integer-only
// accounts (cash wallets and the like) accept digits exclusively.
type AccountKind string

const (
	KindDecimal AccountKind = "decimal"
	KindInteger AccountKind = "integer"
)

// Valid reports whether the kind is a known account kind.
func (k AccountKind) Valid() bool {
	return k == KindDecimal || k == KindInteger
}

var (
	ErrValueInvalid    = errors.New("the balance is not a valid value for this account")
	ErrTooManyDecimals = errors.New("the balance can have at most two decimal places")
	ErrValueTooLarge   = errors.New("the balance exceeds the maximum supported value")
)

// maxValue is the magnitude ceiling for entered balances: 999 billion.
var maxValue = decimal.NewFromInt(999_999_999_999)

// Parse validates and normalizes a user-entered balance.
//
// Integer-only accounts accept digits exclusively; any other character
// rejects the value. Decimal-capable accounts strip everything outside
// digits, "." and ",". A comma, when present, is the decimal separator
// and takes priority over dots, which are then thousands separators. A
// lone dot is the decimal separator when at most two digits follow it,
// otherwise it separates thousands and is removed.
//
// A rejected value leaves the caller's previous value in place; Parse
// never returns a partial result alongside an error.
func Parse(kind AccountKind, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrValueInvalid
	}

	var normalized string
	var err error

	switch kind {
	case KindInteger:
		normalized, err = normalizeInteger(raw)
	default:
		normalized, err = normalizeDecimal(raw)
	}
	if err != nil {
		return decimal.Zero, err
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, ErrValueInvalid
	}

	if value.GreaterThan(maxValue) {
		return decimal.Zero, ErrValueTooLarge
	}

	return value, nil
}

// Difference returns how far the real balance deviates from the recorded
// one. A positive result is a surplus, a negative one a shortfall.
func Difference(recorded, real decimal.Decimal) decimal.Decimal {
	return real.Sub(recorded)
}

func normalizeInteger(raw string) (string, error) {
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", ErrValueInvalid
		}
	}

	return raw, nil
}

func normalizeDecimal(raw string) (string, error) {
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			return r
		}
		return -1
	}, raw)

	if clean == "" || clean == "." || clean == "," {
		return "", ErrValueInvalid
	}

	if comma := strings.LastIndex(clean, ","); comma != -1 {
		// The comma is the decimal separator, every dot separates
		// thousands.
		if strings.Count(clean, ",") > 1 {
			return "", ErrValueInvalid
		}
		if len(clean)-comma-1 > 2 {
			return "", ErrTooManyDecimals
		}

		normalized := strings.ReplaceAll(clean, ".", "")
		return strings.Replace(normalized, ",", ".", 1), nil
	}

	if dot := strings.LastIndex(clean, "."); dot != -1 {
		after := clean[dot+1:]
		if len(after) <= 2 {
			// Decimal separator; any dot before it separates thousands
			return strings.ReplaceAll(clean[:dot], ".", "") + "." + after, nil
		}

		// Thousands separators only
		return strings.ReplaceAll(clean, ".", ""), nil
	}

	return clean, nil
}
