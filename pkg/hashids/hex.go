package hashids

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// hexChunk digits always fit in an int64.
const hexChunk = 12

// EncodeHex encodes a hex string by splitting it into chunks of up to 12
// digits and encoding each chunk as one number. Leading zeros of a chunk
// are not preserved by DecodeHex.
func (h *HashID) EncodeHex(hex string) (string, error) {
	if !isHex(hex) {
		return "", errors.Wrapf(ErrInvalidHex, "%q", hex)
	}

	numbers := make([]int64, 0, (len(hex)+hexChunk-1)/hexChunk)
	for start := 0; start < len(hex); start += hexChunk {
		end := min(start+hexChunk, len(hex))
		n, err := strconv.ParseInt(hex[start:end], 16, 64)
		if err != nil {
			return "", errors.Wrapf(ErrInvalidHex, "%q: %v", hex, err)
		}
		numbers = append(numbers, n)
	}
	return h.encode(numbers), nil
}

// DecodeHex decodes a hash into upper-case hex, one group per number.
func (h *HashID) DecodeHex(hash string) (string, error) {
	numbers, err := h.DecodeInt64(hash)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range numbers {
		sb.WriteString(strings.ToUpper(strconv.FormatInt(n, 16)))
	}
	return sb.String(), nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
