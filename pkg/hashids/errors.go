package hashids

import (
	"errors"
	"fmt"

	"github.com/huynhanx03/go-hashids/pkg/encoding"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrConfig         = errors.New("hashids: invalid configuration")
	ErrInvalidInput   = errors.New("hashids: invalid input")
	ErrDecodeMismatch = errors.New("hashids: hash does not match this configuration")
	ErrOverflow       = encoding.ErrOverflow
)

var (
	ErrAlphabetBlank     = fmt.Errorf("%w: alphabet must not be blank", ErrConfig)
	ErrAlphabetTooShort  = fmt.Errorf("%w: alphabet must contain at least %d unique characters", ErrConfig, minAlphabetLength)
	ErrNegativeMinLength = fmt.Errorf("%w: minimum length must not be negative", ErrConfig)

	ErrEmptyNumbers   = fmt.Errorf("%w: at least one number is required", ErrInvalidInput)
	ErrNegativeNumber = fmt.Errorf("%w: negative numbers are not allowed", ErrInvalidInput)
	ErrEmptyHash      = fmt.Errorf("%w: hash must not be blank", ErrInvalidInput)
	ErrInvalidHex     = fmt.Errorf("%w: not a hex string", ErrInvalidInput)
)
