package validation

import (
	"context"
	"math"
	"strconv"
	"strings"
)

// Number is the set of built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NonNegative reports an error for values below zero.
func NonNegative[N Number](opts ...RuleOption) Rule[N] {
	cfg := newRuleConfig(TextNegative, opts)
	return RuleFunc[N](func(_ context.Context, pc *PropertyContext[N]) error {
		if pc.Value < 0 {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

// Decimal limits the total number of significant digits and the number of
// decimal places. Zero maxDigits or negative decimalPlaces disables that check.
func Decimal[N ~float32 | ~float64](maxDigits, decimalPlaces int) Rule[N] {
	return RuleFunc[N](func(_ context.Context, pc *PropertyContext[N]) error {
		v := float64(pc.Value)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			pc.CreateError(TextInvalid)
			return nil
		}
		integer, fraction := splitDigits(v)
		if maxDigits > 0 && len(integer)+len(fraction) > maxDigits {
			pc.CreateError(TextMaxDigits, maxDigits)
			return nil
		}
		if decimalPlaces >= 0 && len(fraction) > decimalPlaces {
			pc.CreateError(TextDecimalPlaces, decimalPlaces)
		}
		return nil
	})
}

// splitDigits returns the significant integer and fraction digits of v in
// its shortest decimal representation.
func splitDigits(v float64) (integer, fraction string) {
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	integer, fraction, _ = strings.Cut(s, ".")
	integer = strings.TrimLeft(integer, "0")
	return integer, fraction
}
