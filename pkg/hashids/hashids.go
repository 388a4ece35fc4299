// Package hashids encodes sequences of non-negative integers into short,
// non-sequential strings and decodes them back.
//
// A HashID is derived once from its salt, alphabet, separators and minimum
// length and is immutable afterwards, so a single value can be shared by
// any number of goroutines.
package hashids

import (
	"github.com/huynhanx03/go-hashids/pkg/settings"
)

const (
	// DefaultAlphabet is the alphabet used when none is configured.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	// DefaultSeparators is the separator charset used when none is configured.
	DefaultSeparators = "cfhistuCFHISTU"
)

// HashID encodes and decodes hashids for one configuration.
type HashID struct {
	salt      []rune
	minLength int
	charsets
}

type options struct {
	salt       string
	minLength  int
	alphabet   string
	separators string
}

// Option configures a HashID.
type Option func(*options)

// WithSalt sets the salt. A blank salt disables shuffling by salt.
func WithSalt(salt string) Option {
	return func(o *options) { o.salt = salt }
}

// WithMinLength pads every hash to at least n characters.
func WithMinLength(n int) Option {
	return func(o *options) { o.minLength = n }
}

// WithAlphabet replaces DefaultAlphabet. Duplicate characters are ignored.
func WithAlphabet(alphabet string) Option {
	return func(o *options) { o.alphabet = alphabet }
}

// WithSeparators replaces DefaultSeparators. Only characters that also
// appear in the alphabet are used.
func WithSeparators(separators string) Option {
	return func(o *options) { o.separators = separators }
}

// New creates a HashID. Without options it uses an empty salt, no minimum
// length and the default alphabet and separators.
func New(opts ...Option) (*HashID, error) {
	o := options{
		alphabet:   DefaultAlphabet,
		separators: DefaultSeparators,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.minLength < 0 {
		return nil, ErrNegativeMinLength
	}

	salt := []rune(o.salt)
	cs, err := deriveCharsets([]rune(o.alphabet), []rune(o.separators), salt)
	if err != nil {
		return nil, err
	}

	return &HashID{
		salt:      salt,
		minLength: o.minLength,
		charsets:  cs,
	}, nil
}

// NewFromConfig creates a HashID from a settings section. An empty Alphabet
// or a nil Separators selects the default; an empty non-nil Separators
// disables separators.
func NewFromConfig(cfg settings.Hashids) (*HashID, error) {
	opts := []Option{
		WithSalt(cfg.Salt),
		WithMinLength(cfg.MinLength),
	}
	if cfg.Alphabet != "" {
		opts = append(opts, WithAlphabet(cfg.Alphabet))
	}
	if cfg.Separators != nil {
		opts = append(opts, WithSeparators(*cfg.Separators))
	}
	return New(opts...)
}

// NewDefault returns a HashID with the default configuration.
func NewDefault() *HashID {
	h, err := New()
	if err != nil {
		panic(err)
	}
	return h
}

// Salt returns the configured salt.
func (h *HashID) Salt() string { return string(h.salt) }

// MinLength returns the configured minimum hash length.
func (h *HashID) MinLength() int { return h.minLength }

// Alphabet returns the working alphabet after separators and guards were removed.
func (h *HashID) Alphabet() string { return string(h.alphabet) }

// Separators returns the derived separators.
func (h *HashID) Separators() string { return string(h.separators) }

// Guards returns the derived guards.
func (h *HashID) Guards() string { return string(h.guards) }
