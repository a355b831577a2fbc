package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm selects the digest family for a session. The set is closed:
// an algorithm is chosen once at construction and never changes for the
// lifetime of the session.
type Algorithm int

const (
	SHA1 Algorithm = iota
	SHA256
	SHA512
	MD5
)

// newState constructors for the supported algorithms. The running state is a
// hash.Hash mutated in place through this single reference, so an update can
// never land on a discarded copy of the state.
var newState = map[Algorithm]func() hash.Hash{
	SHA1:   sha1.New,
	SHA256: sha256.New,
	SHA512: sha512.New,
	MD5:    md5.New,
}

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	case MD5:
		return "md5"
	}
	return "unknown"
}

// Size returns the digest size in bytes produced by the algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	case MD5:
		return md5.Size
	}
	return 0
}

func (a Algorithm) valid() bool {
	_, ok := newState[a]
	return ok
}
