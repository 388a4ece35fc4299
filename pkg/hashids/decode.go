package hashids

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-hashids/pkg/encoding"
)

// Decode decodes a hash into ints. It fails with ErrOverflow when a value
// does not fit in int.
func (h *HashID) Decode(hash string) ([]int, error) {
	numbers, err := h.DecodeInt64(hash)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(numbers))
	for i, n := range numbers {
		if int64(int(n)) != n {
			return nil, errors.Wrapf(ErrOverflow, "%d does not fit in int", n)
		}
		out[i] = int(n)
	}
	return out, nil
}

// DecodeInt64 decodes a hash into int64 values.
//
// The decoded numbers are encoded again and compared with hash, so a hash
// produced by another configuration, or altered in any way, fails with
// ErrDecodeMismatch rather than yielding wrong numbers. A hash made only of
// guard characters decodes to an empty slice.
func (h *HashID) DecodeInt64(hash string) ([]int64, error) {
	if strings.TrimSpace(hash) == "" {
		return nil, errors.WithStack(ErrEmptyHash)
	}

	parts := strings.FieldsFunc(hash, h.isGuard)
	if len(parts) == 0 {
		return []int64{}, nil
	}

	payload := parts[0]
	if len(parts) == 2 || len(parts) == 3 {
		payload = parts[1]
	}

	lottery, size := utf8.DecodeRuneInString(payload)
	tokens := strings.FieldsFunc(payload[size:], h.isSeparator)

	alphabet := slices.Clone(h.alphabet)
	buffer := make([]rune, 0, 1+len(h.salt)+len(alphabet))
	numbers := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		buffer = append(buffer[:0], lottery)
		buffer = append(buffer, h.salt...)
		buffer = append(buffer, alphabet...)
		consistentShuffle(alphabet, buffer[:len(alphabet)])

		n, err := encoding.DecodeRadix([]rune(token), alphabet)
		switch {
		case errors.Is(err, encoding.ErrInvalidDigit):
			return nil, errors.Wrapf(ErrDecodeMismatch, "hash %q: %v", hash, err)
		case err != nil:
			return nil, errors.Wrapf(err, "hash %q", hash)
		case n > math.MaxInt64:
			return nil, errors.Wrapf(ErrOverflow, "hash %q", hash)
		}
		numbers = append(numbers, int64(n))
	}

	if len(numbers) == 0 || h.encode(numbers) != hash {
		return nil, errors.Wrapf(ErrDecodeMismatch, "hash %q", hash)
	}
	return numbers, nil
}

func (h *HashID) isGuard(r rune) bool {
	return slices.Contains(h.guards, r)
}

func (h *HashID) isSeparator(r rune) bool {
	return slices.Contains(h.separators, r)
}
