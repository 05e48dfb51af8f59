package kuuid

import "github.com/martinlehoux/kuuid/kb64"

// MarshalText implements encoding.TextMarshaler. JSON and any other text
// carrier see a single 22-character string scalar, never an object or raw
// bytes.
func (id ID) MarshalText() ([]byte, error) {
	return kb64.AppendEncode(make([]byte, 0, kb64.EncodedLen), id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler through Parse.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
