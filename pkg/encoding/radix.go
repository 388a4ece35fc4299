package encoding

import (
	"errors"
	"math/bits"
)

const minRadix = 2

var (
	ErrRadixTooSmall = errors.New("alphabet must contain at least 2 characters")
	ErrInvalidDigit  = errors.New("invalid character in encoded number")
	ErrOverflow      = errors.New("encoded number overflows 64 bits")
)

// AppendRadix appends the digits of n, most significant first, using the
// alphabet as a positional numeral system of radix len(alphabet).
// Zero encodes as a single alphabet[0].
func AppendRadix(dst []rune, n uint64, alphabet []rune) []rune {
	radix := uint64(len(alphabet))

	var chars [64]rune
	k := len(chars)
	for {
		k--
		chars[k] = alphabet[n%radix]
		n /= radix
		if n == 0 {
			break
		}
	}

	return append(dst, chars[k:]...)
}

// EncodeRadix converts n to its digit string over alphabet.
func EncodeRadix(n uint64, alphabet []rune) (string, error) {
	if len(alphabet) < minRadix {
		return "", ErrRadixTooSmall
	}
	return string(AppendRadix(nil, n, alphabet)), nil
}

// DecodeRadix converts digits back to a number. Accumulation is overflow
// checked: a value that does not fit in 64 bits returns ErrOverflow.
func DecodeRadix(digits []rune, alphabet []rune) (uint64, error) {
	if len(alphabet) < minRadix {
		return 0, ErrRadixTooSmall
	}

	radix := uint64(len(alphabet))
	var n uint64
	for _, d := range digits {
		pos := indexOf(alphabet, d)
		if pos < 0 {
			return 0, ErrInvalidDigit
		}

		hi, lo := bits.Mul64(n, radix)
		if hi != 0 {
			return 0, ErrOverflow
		}
		sum, carry := bits.Add64(lo, uint64(pos), 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
		n = sum
	}
	return n, nil
}

func indexOf(alphabet []rune, r rune) int {
	for i, c := range alphabet {
		if c == r {
			return i
		}
	}
	return -1
}
