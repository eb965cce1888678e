// Package codec provides common errors and interfaces for image codecs.
package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry.
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter indicates encoding/decoding parameters are invalid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidQuality indicates an invalid quality parameter (must be 0-100).
	ErrInvalidQuality = errors.New("invalid quality (must be 0-100)")

	// ErrUnsupportedFormat indicates the format is not supported.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Kind classifies a codec failure so a caller can recover the failure
// category with errors.Is/errors.As without parsing messages.
type Kind int

const (
	// KindInputIO covers an image or container that cannot be opened or read.
	KindInputIO Kind = iota
	// KindFormatReject covers a structurally invalid container: missing
	// magic, unknown wavelet code, unexpected packet header, truncated packet.
	KindFormatReject
	// KindIntegrityFailure covers a CRC mismatch on an otherwise
	// well-formed container.
	KindIntegrityFailure
	// KindParameterOutOfRange covers a requested parameter (e.g. DWT
	// levels) that doesn't fit the input.
	KindParameterOutOfRange
	// KindDecoderDesync covers the arithmetic decoder running past the
	// end of its input or its interval collapsing — always corruption,
	// since a valid stream never does either.
	KindDecoderDesync
)

func (k Kind) String() string {
	switch k {
	case KindInputIO:
		return "InputIO"
	case KindFormatReject:
		return "FormatReject"
	case KindIntegrityFailure:
		return "IntegrityFailure"
	case KindParameterOutOfRange:
		return "ParameterOutOfRange"
	case KindDecoderDesync:
		return "DecoderDesync"
	default:
		return "Unknown"
	}
}

// KindError pairs a Kind with the underlying error so both errors.Is against
// the Kind and normal error-message reporting work.
type KindError struct {
	Kind Kind
	Err  error
}

func (e *KindError) Error() string { return fmt.Sprintf("%s: %v", e.Kind, e.Err) }
func (e *KindError) Unwrap() error { return e.Err }

// NewKindError wraps err with kind, so callers can write
// errors.As(err, &codec.KindError{}) or compare against err.Kind.
func NewKindError(kind Kind, err error) error {
	return &KindError{Kind: kind, Err: err}
}
