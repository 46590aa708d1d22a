// Package subtle provides the low-level primitives behind the uniaz codec:
// base-N digit conversion and the disorder cipher. Most users should use the
// high-level Codec in the parent package instead.
package subtle

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDigitOutOfRange is returned when a digit value is not below the radix.
// Reaching it through the public Codec indicates a defect in digit
// generation, not bad input.
var ErrDigitOutOfRange = errors.New("digit out of range")

// ToDigits converts a non-negative value to its base-radix digit sequence,
// most-significant digit first. The result is canonical and minimal: no
// leading zero digits, except that zero itself is the single digit [0].
// FromDigits(ToDigits(v, r), r) == v for every non-negative v. Digits are
// uint32, wide enough for any alphabet indexable by distinct runes.
func ToDigits(value *big.Int, radix int) []uint32 {
	if value.Sign() == 0 {
		return []uint32{0}
	}

	radixBig := big.NewInt(int64(radix))
	temp := new(big.Int).Set(value)

	// BitLen/log2(radix) bounds the digit count; exact length falls out of
	// the peel loop.
	digits := make([]uint32, 0, value.BitLen())
	for temp.Sign() > 0 {
		var remainder big.Int
		temp.DivMod(temp, radixBig, &remainder)
		digits = append(digits, uint32(remainder.Int64()))
	}

	// Peeling yields least-significant first; reverse in place.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// FromDigits evaluates a base-radix digit sequence, most-significant digit
// first. It returns ErrDigitOutOfRange if any digit is >= radix. The result
// is arbitrary precision so long inputs cannot wrap before the caller
// range-checks the value.
func FromDigits(digits []uint32, radix int) (*big.Int, error) {
	result := big.NewInt(0)
	radixBig := big.NewInt(int64(radix))

	for i, digit := range digits {
		if int64(digit) >= int64(radix) {
			return nil, fmt.Errorf("%w: digit %d at position %d, radix %d", ErrDigitOutOfRange, digit, i, radix)
		}
		result.Mul(result, radixBig)
		result.Add(result, big.NewInt(int64(digit)))
	}

	return result, nil
}
