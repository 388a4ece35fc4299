package hashids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// consistentShuffle Tests
// =============================================================================

func TestConsistentShuffle(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		salt     string
		want     string
	}{
		{"empty_salt_is_identity", "abcdef", "", "abcdef"},
		{"blank_salt_is_identity", "abcdef", " \t", "abcdef"},
		{"single_char", "a", "salt", "a"},
		{"default_separators", "cfhistuCFHISTU", testSalt, "UHuhtcITCsFifS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alphabet := []rune(tt.alphabet)
			consistentShuffle(alphabet, []rune(tt.salt))
			assert.Equal(t, tt.want, string(alphabet))
		})
	}
}

func TestConsistentShuffle_IsPermutation(t *testing.T) {
	alphabet := []rune(DefaultAlphabet)
	consistentShuffle(alphabet, []rune("some salt"))

	assert.NotEqual(t, DefaultAlphabet, string(alphabet))
	assert.ElementsMatch(t, []rune(DefaultAlphabet), alphabet)
}

// =============================================================================
// deriveCharsets Tests
// =============================================================================

func TestDeriveCharsets(t *testing.T) {
	tests := []struct {
		name       string
		alphabet   string
		separators string
		salt       string
		want       charsets
	}{
		{
			name:       "default_no_salt",
			alphabet:   DefaultAlphabet,
			separators: DefaultSeparators,
			want: charsets{
				alphabet:   []rune("gjklmnopqrvwxyzABDEGJKLMNOPQRVWXYZ1234567890"),
				separators: []rune("cfhistuCFHISTU"),
				guards:     []rune("abde"),
			},
		},
		{
			name:       "default_salted",
			alphabet:   DefaultAlphabet,
			separators: DefaultSeparators,
			salt:       testSalt,
			want: charsets{
				alphabet:   []rune("5N6y2rljDQak4xgzn8ZR1oKYLmJpEbVq3OBv9WwXPMe7"),
				separators: []rune("UHuhtcITCsFifS"),
				guards:     []rune("AdG0"),
			},
		},
		{
			name:     "separators_taken_from_alphabet",
			alphabet: DefaultAlphabet,
			want: charsets{
				alphabet:   []rune("wxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"),
				separators: []rune("abcdefghijklmnopqr"),
				guards:     []rune("stuv"),
			},
		},
		{
			name:     "guards_from_separators",
			alphabet: "abcd",
			salt:     "salt",
			want: charsets{
				alphabet:   []rune("dc"),
				separators: []rune("b"),
				guards:     []rune("a"),
			},
		},
		{
			name:     "duplicates_are_ignored",
			alphabet: "aabbccdd",
			salt:     "salt",
			want: charsets{
				alphabet:   []rune("dc"),
				separators: []rune("b"),
				guards:     []rune("a"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deriveCharsets([]rune(tt.alphabet), []rune(tt.separators), []rune(tt.salt))
			require.NoError(t, err)
			assert.Equal(t, string(tt.want.alphabet), string(got.alphabet))
			assert.Equal(t, string(tt.want.separators), string(got.separators))
			assert.Equal(t, string(tt.want.guards), string(got.guards))
		})
	}
}

func TestDeriveCharsets_Disjoint(t *testing.T) {
	for _, salt := range []string{"", "a", testSalt, "another salt entirely"} {
		cs, err := deriveCharsets([]rune(DefaultAlphabet), []rune(DefaultSeparators), []rune(salt))
		require.NoError(t, err)

		assert.NotEmpty(t, cs.alphabet)
		assert.NotEmpty(t, cs.separators)
		assert.NotEmpty(t, cs.guards)
		for _, r := range cs.alphabet {
			assert.NotContains(t, cs.separators, r, "salt %q", salt)
			assert.NotContains(t, cs.guards, r, "salt %q", salt)
		}
		assert.Len(t, cs.alphabet, 44)
		assert.Len(t, cs.separators, 14)
		assert.Len(t, cs.guards, 4)
	}
}

func TestAccessors(t *testing.T) {
	h := newTestHashID(t, WithSalt(testSalt), WithMinLength(8))

	assert.Equal(t, testSalt, h.Salt())
	assert.Equal(t, 8, h.MinLength())
	assert.Equal(t, "5N6y2rljDQak4xgzn8ZR1oKYLmJpEbVq3OBv9WwXPMe7", h.Alphabet())
	assert.Equal(t, "UHuhtcITCsFifS", h.Separators())
	assert.Equal(t, "AdG0", h.Guards())
}
