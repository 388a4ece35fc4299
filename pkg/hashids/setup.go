package hashids

import (
	"math"
	"slices"

	"github.com/pkg/errors"
)

const (
	minAlphabetLength = 2
	sepDiv            = 3.5
	guardDiv          = 12.0
)

// charsets is the derived, immutable character state of a codec.
type charsets struct {
	alphabet   []rune
	separators []rune
	guards     []rune
}

// deriveCharsets splits the raw alphabet into the working alphabet,
// separators and guards. The three sets never share a character.
func deriveCharsets(rawAlphabet, rawSeparators, salt []rune) (charsets, error) {
	if isBlank(rawAlphabet) {
		return charsets{}, ErrAlphabetBlank
	}

	alphabet := unique(rawAlphabet)
	if len(alphabet) < minAlphabetLength {
		return charsets{}, ErrAlphabetTooShort
	}

	// separators keep only characters of the alphabet, and leave it
	var separators []rune
	for _, r := range unique(rawSeparators) {
		if slices.Contains(alphabet, r) {
			separators = append(separators, r)
		}
	}
	alphabet = slices.DeleteFunc(alphabet, func(r rune) bool {
		return slices.Contains(separators, r)
	})

	consistentShuffle(separators, salt)

	// the ratio is an integer quotient, which existing hashes depend on
	if len(separators) == 0 || float64(len(alphabet)/len(separators)) > sepDiv {
		sepLen := int(math.Ceil(float64(len(alphabet)) / sepDiv))
		if sepLen == 1 {
			sepLen = 2
		}

		if sepLen > len(separators) {
			diff := sepLen - len(separators)
			separators = append(separators, alphabet[:diff]...)
			alphabet = slices.Clone(alphabet[diff:])
		} else {
			separators = separators[:sepLen]
		}
	}

	consistentShuffle(alphabet, salt)

	guardCount := int(math.Ceil(float64(len(alphabet)) / guardDiv))

	var guards []rune
	if len(alphabet) < 3 {
		guards = slices.Clone(separators[:guardCount])
		separators = slices.Clone(separators[guardCount:])
	} else {
		guards = slices.Clone(alphabet[:guardCount])
		alphabet = slices.Clone(alphabet[guardCount:])
	}

	// a radix below two cannot represent a number
	if len(alphabet) < minAlphabetLength {
		return charsets{}, errors.Wrapf(ErrAlphabetTooShort, "only %d characters left after separators and guards", len(alphabet))
	}
	if len(separators) == 0 {
		return charsets{}, errors.Wrap(ErrAlphabetTooShort, "no separators left after guards")
	}

	return charsets{
		alphabet:   alphabet,
		separators: separators,
		guards:     guards,
	}, nil
}

// unique returns the distinct runes of rs in first-seen order.
func unique(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
