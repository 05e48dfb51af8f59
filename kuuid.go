package kuuid

import (
	"bytes"

	"github.com/gofrs/uuid"
	"github.com/martinlehoux/kuuid/kb64"
	"github.com/martinlehoux/kuuid/kcore"
)

// ID is a 128-bit UUID rendered as 22 characters of url-safe base64. It is a
// plain 16-byte value: comparable with ==, usable as a map key, and safe to
// copy and share.
type ID uuid.UUID

// Nil is the all-zero ID, also the zero value. It encodes to
// "AAAAAAAAAAAAAAAAAAAAAA".
var Nil ID

// New generates a random (version 4) ID.
func New() ID {
	id, err := uuid.NewV4()
	kcore.Expect(err, "error generating uuid")
	return ID(id)
}

// From converts any raw 16-byte UUID value into an ID: uuid.UUID, another
// library's UUID type, or a bare [16]byte.
func From[Raw ~[16]byte](raw Raw) ID {
	return ID(raw)
}

// Parse parses the 22-character base64 form, reporting a *ParseError for
// anything else. The canonical hyphenated hex form is a different dialect:
// parse it with uuid.FromString and convert through From.
func Parse(value string) (ID, error) {
	raw, err := kb64.Decode(value)
	if err != nil {
		return Nil, &ParseError{Input: value, Err: err}
	}
	return ID(raw), nil
}

// MustParse is Parse for trusted literals, panicking on failure.
func MustParse(value string) ID {
	return kcore.Must(Parse(value))
}

// UUID copies the raw UUID out.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// IsNil reports whether id is the all-zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

// Compare orders IDs by their raw bytes, not by their text form.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// String returns the 22-character base64 form.
func (id ID) String() string {
	return kb64.Encode(id)
}

// AppendText appends the 22-character base64 form to b, implementing
// encoding.TextAppender. With a caller-owned buffer it does not touch the
// heap, which matters when stringifying an ID per request:
//
//	var buf [kb64.EncodedLen]byte
//	text, _ := id.AppendText(buf[:0])
func (id ID) AppendText(b []byte) ([]byte, error) {
	return kb64.AppendEncode(b, id), nil
}

// GoString renders the ID wrapped in its type name, so %#v output is
// distinguishable from a plain string in logs and traces.
func (id ID) GoString() string {
	return "kuuid.ID(" + id.String() + ")"
}
