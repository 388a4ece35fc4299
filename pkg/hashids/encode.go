package hashids

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-hashids/pkg/encoding"
)

// Encode encodes one or more non-negative ints.
func (h *HashID) Encode(numbers ...int) (string, error) {
	ns := make([]int64, len(numbers))
	for i, n := range numbers {
		ns[i] = int64(n)
	}
	return h.EncodeInt64(ns...)
}

// EncodeInt64 encodes one or more non-negative int64 values.
func (h *HashID) EncodeInt64(numbers ...int64) (string, error) {
	if len(numbers) == 0 {
		return "", errors.WithStack(ErrEmptyNumbers)
	}
	for i, n := range numbers {
		if n < 0 {
			return "", errors.Wrapf(ErrNegativeNumber, "numbers[%d] is %d", i, n)
		}
	}
	return h.encode(numbers), nil
}

// encode expects a validated, non-empty slice of non-negative numbers.
func (h *HashID) encode(numbers []int64) string {
	alphabet := slices.Clone(h.alphabet)
	alphabetLen := int64(len(alphabet))

	var numbersHash int64
	for i, n := range numbers {
		numbersHash += n % int64(i+100)
	}

	lottery := alphabet[numbersHash%alphabetLen]

	result := make([]rune, 0, max(h.minLength, len(numbers)*12))
	result = append(result, lottery)

	buffer := make([]rune, 0, 1+len(h.salt)+len(alphabet))
	for i, n := range numbers {
		buffer = append(buffer[:0], lottery)
		buffer = append(buffer, h.salt...)
		buffer = append(buffer, alphabet...)
		consistentShuffle(alphabet, buffer[:len(alphabet)])

		start := len(result)
		result = encoding.AppendRadix(result, uint64(n), alphabet)

		if i+1 < len(numbers) {
			n %= int64(result[start]) + int64(i)
			result = append(result, h.separators[n%int64(len(h.separators))])
		}
	}

	if len(result) < h.minLength {
		guards := int64(len(h.guards))

		guard := h.guards[(numbersHash+int64(result[0]))%guards]
		result = slices.Insert(result, 0, guard)

		if len(result) < h.minLength {
			guard = h.guards[(numbersHash+int64(result[2]))%guards]
			result = append(result, guard)
		}
	}

	half := len(alphabet) / 2
	for len(result) < h.minLength {
		consistentShuffle(alphabet, slices.Clone(alphabet))

		padded := make([]rune, 0, len(result)+len(alphabet))
		padded = append(padded, alphabet[half:]...)
		padded = append(padded, result...)
		padded = append(padded, alphabet[:half]...)
		result = padded

		if excess := len(result) - h.minLength; excess > 0 {
			start := excess / 2
			result = result[start : start+h.minLength]
		}
	}

	return string(result)
}
