// Package kb64 converts between the raw 16-byte form of a UUID and its
// 22-character url-safe base64 text form.
//
// 16 bytes need 21⅓ base64 symbols, so the text form is 22 characters with
// the final character carrying only 4 significant bits. No padding is ever
// emitted or accepted.
package kb64

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/martinlehoux/kuuid/kcore"
)

const (
	// Size is the raw length of an encoded value, in bytes.
	Size = 16
	// EncodedLen is the length of the text form, in characters.
	EncodedLen = 22
)

var encoding = base64.RawURLEncoding

var ErrLength = errors.New("decoded length is not 16 bytes")

// Encode returns the 22-character text form of raw.
func Encode(raw [Size]byte) string {
	return encoding.EncodeToString(raw[:])
}

// AppendEncode appends the 22-character text form of raw to dst and returns
// the extended slice. It does not allocate when dst has spare capacity, so
// callers on a hot path can reuse one buffer across calls.
func AppendEncode(dst []byte, raw [Size]byte) []byte {
	return encoding.AppendEncode(dst, raw[:])
}

// Decode parses the 22-character text form back into 16 bytes. It fails on
// characters outside the url-safe alphabet, on padding, and on any value
// whose decoded length is not exactly 16 bytes.
//
// Non-zero unused bits in the final character are masked, not rejected, so a
// handful of near-canonical strings decode to the same bytes.
func Decode(value string) ([Size]byte, error) {
	var raw [Size]byte
	decoded, err := encoding.DecodeString(value)
	if err != nil {
		return raw, kcore.Wrap(err, "error decoding base64")
	}
	if len(decoded) != Size {
		return raw, fmt.Errorf("%w: got %d", ErrLength, len(decoded))
	}
	copy(raw[:], decoded)
	return raw, nil
}
