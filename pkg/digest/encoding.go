package digest

import (
	"encoding/base64"
	"encoding/hex"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Encoding selects the textual rendering of finalized digest bytes. The set
// is closed; unknown values are rejected, never coerced to a default.
//
// Lenient selector parsing (ordinals, floats, names) belongs to the host
// boundary, see the bind package. The core accepts only a validated Encoding.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingBase64
	EncodingHex
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf8"
	case EncodingBase64:
		return "base64"
	case EncodingHex:
		return "hex"
	}
	return "unknown"
}

func (e Encoding) valid() bool {
	return e >= EncodingUTF8 && e <= EncodingHex
}

// render encodes finalized digest bytes. The utf8 rendering interprets the
// raw bytes directly and fails whenever they are not valid UTF-8 — which,
// for binary digest output, is almost always.
func (e Encoding) render(sum []byte) (string, error) {
	switch e {
	case EncodingUTF8:
		if !utf8.Valid(sum) {
			return "", errors.WithStack(ErrNonUTF8Digest)
		}
		return string(sum), nil
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(sum), nil
	case EncodingHex:
		return hex.EncodeToString(sum), nil
	}
	return "", &InvalidEncodingError{Selector: int(e)}
}
