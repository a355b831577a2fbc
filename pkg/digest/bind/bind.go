// Package bind is the host boundary for digest sessions. Hosts embedding the
// library (scripting runtimes, RPC services) marshal their own loosely typed
// values through this package: lenient selector coercion, construction by
// algorithm name, and mapping of the core error taxonomy onto transport
// errors. The core digest package accepts only validated enums.
package bind

import (
	"math"
	"strings"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/pkg/errors"

	"github.com/achuala/go-hashing/pkg/digest"
)

// ParseEncoding coerces a host-provided selector into an Encoding. Integer
// kinds match the ordinals 0/1/2, floats are truncated toward zero before
// ordinal matching (numeric-only hosts may pass 2.0 for hex), and strings
// match the names utf8/base64/hex case-insensitively. Any other value fails
// with digest.ErrInvalidEncoding; nothing is ever defaulted.
func ParseEncoding(v any) (digest.Encoding, error) {
	switch sel := v.(type) {
	case digest.Encoding:
		return encodingOrdinal(int64(sel), v)
	case int:
		return encodingOrdinal(int64(sel), v)
	case int8:
		return encodingOrdinal(int64(sel), v)
	case int16:
		return encodingOrdinal(int64(sel), v)
	case int32:
		return encodingOrdinal(int64(sel), v)
	case int64:
		return encodingOrdinal(sel, v)
	case uint:
		return encodingOrdinal(int64(sel), v)
	case uint8:
		return encodingOrdinal(int64(sel), v)
	case uint16:
		return encodingOrdinal(int64(sel), v)
	case uint32:
		return encodingOrdinal(int64(sel), v)
	case uint64:
		if sel > math.MaxInt64 {
			return 0, &digest.InvalidEncodingError{Selector: v}
		}
		return encodingOrdinal(int64(sel), v)
	case float32:
		return encodingFloat(float64(sel), v)
	case float64:
		return encodingFloat(sel, v)
	case string:
		return encodingName(sel)
	}
	return 0, &digest.InvalidEncodingError{Selector: v}
}

func encodingFloat(f float64, raw any) (digest.Encoding, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &digest.InvalidEncodingError{Selector: raw}
	}
	return encodingOrdinal(int64(math.Trunc(f)), raw)
}

func encodingOrdinal(n int64, raw any) (digest.Encoding, error) {
	switch n {
	case 0:
		return digest.EncodingUTF8, nil
	case 1:
		return digest.EncodingBase64, nil
	case 2:
		return digest.EncodingHex, nil
	}
	return 0, &digest.InvalidEncodingError{Selector: raw}
}

func encodingName(name string) (digest.Encoding, error) {
	switch strings.ToLower(name) {
	case "utf8":
		return digest.EncodingUTF8, nil
	case "base64":
		return digest.EncodingBase64, nil
	case "hex":
		return digest.EncodingHex, nil
	}
	return 0, &digest.InvalidEncodingError{Selector: name}
}

// ParseAlgorithm matches a host-provided algorithm name case-insensitively
// against the supported set.
func ParseAlgorithm(name string) (digest.Algorithm, error) {
	switch strings.ToLower(name) {
	case "sha1":
		return digest.SHA1, nil
	case "sha256":
		return digest.SHA256, nil
	case "sha512":
		return digest.SHA512, nil
	case "md5":
		return digest.MD5, nil
	}
	return 0, &digest.InvalidAlgorithmError{Selector: name}
}

// NewSession constructs a session by algorithm name for hosts that do not
// hold the Algorithm enum, optionally seeded with an initial chunk.
func NewSession(algo string, initial []byte) (*digest.Session, error) {
	a, err := ParseAlgorithm(algo)
	if err != nil {
		return nil, err
	}
	return digest.New(a, initial)
}

// AsHostError maps the core error taxonomy onto kratos typed errors with
// stable reason codes so service hosts can surface them directly.
func AsHostError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, digest.ErrInvalidEncoding):
		return kerrors.BadRequest("INVALID_ENCODING", err.Error())
	case errors.Is(err, digest.ErrInvalidAlgorithm):
		return kerrors.BadRequest("INVALID_ALGORITHM", err.Error())
	case errors.Is(err, digest.ErrNonUTF8Digest):
		return kerrors.BadRequest("NON_UTF8_DIGEST", err.Error())
	case errors.Is(err, digest.ErrSessionPoisoned):
		return kerrors.InternalServer("SESSION_POISONED", err.Error())
	case errors.Is(err, ErrUnknownHandle):
		return kerrors.NotFound("UNKNOWN_HANDLE", err.Error())
	}
	return kerrors.FromError(err)
}
