// Package digest provides incremental, algorithm-polymorphic hashing
// sessions: pick an algorithm once, feed byte chunks over time, and render
// the finalized digest as hex, base64 or (rarely successfully) utf-8 text.
// It is a library primitive meant for embedding in a larger host.
package digest

import (
	"hash"
	"sync"
)

// Session is a handle on one incremental hashing state. Handles returned by
// Clone alias the same underlying state, and every operation is serialized
// through a shared lock, so a session may be driven from multiple goroutines.
// Operations racing on one session are ordered by lock acquisition; callers
// needing a specific interleaving must impose it themselves.
type Session struct {
	shared *sessionState
}

// sessionState is the interior value of an aliasing group. It is only ever
// touched with mu held.
type sessionState struct {
	mu     sync.Mutex
	algo   Algorithm
	state  hash.Hash
	failed error
}

// New creates a session for the given algorithm, optionally seeded with an
// initial chunk: New(SHA256, data) is equivalent to New(SHA256, nil)
// followed by Update(data). Unknown algorithm values are rejected.
func New(algo Algorithm, initial []byte) (*Session, error) {
	if !algo.valid() {
		return nil, &InvalidAlgorithmError{Selector: int(algo)}
	}
	s := &Session{shared: &sessionState{algo: algo, state: newState[algo]()}}
	if len(initial) > 0 {
		s.Update(initial)
	}
	return s, nil
}

// NewSHA1 creates a SHA-1 session, optionally seeded with initial.
func NewSHA1(initial []byte) *Session { return mustNew(SHA1, initial) }

// NewSHA256 creates a SHA-256 session, optionally seeded with initial.
func NewSHA256(initial []byte) *Session { return mustNew(SHA256, initial) }

// NewSHA512 creates a SHA-512 session, optionally seeded with initial.
func NewSHA512(initial []byte) *Session { return mustNew(SHA512, initial) }

// NewMD5 creates an MD5 session, optionally seeded with initial.
func NewMD5(initial []byte) *Session { return mustNew(MD5, initial) }

func mustNew(algo Algorithm, initial []byte) *Session {
	// algo is one of the four closed variants, so New cannot fail here.
	s, _ := New(algo, initial)
	return s
}

// Update appends content to the running state and returns the same handle
// for chaining. Any byte sequence is valid input; there is no error path.
// Updating an already-poisoned session is a no-op, the failure is reported
// by the next Digest.
func (s *Session) Update(content []byte) (self *Session) {
	self = s // keep the chain intact even if the state panics below
	st := s.shared
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.failed != nil {
		return
	}
	defer st.recoverFailure()
	st.state.Write(content) // hash.Hash writes never return an error
	return
}

// Digest finalizes the accumulated input, resets the internal state so the
// session is immediately ready for a fresh message, and renders the digest
// bytes per enc. Calling Digest twice with no intervening Update yields the
// digest of the empty message the second time.
func (s *Session) Digest(enc Encoding) (string, error) {
	if !enc.valid() {
		return "", &InvalidEncodingError{Selector: int(enc)}
	}
	sum, err := s.digestReset()
	if err != nil {
		return "", err
	}
	return enc.render(sum)
}

// digestReset finalizes and resets the shared state under the lock.
func (s *Session) digestReset() (_ []byte, err error) {
	st := s.shared
	st.mu.Lock()
	defer st.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			st.failed = &PoisonedError{Cause: r}
			err = st.failed
		}
	}()
	if st.failed != nil {
		return nil, st.failed
	}
	sum := st.state.Sum(nil)
	st.state.Reset()
	return sum, nil
}

// Clone returns a second handle over the same underlying state: updates made
// through either handle are visible through the other. For two independent
// streams, construct two sessions instead.
func (s *Session) Clone() *Session {
	return &Session{shared: s.shared}
}

// Algorithm reports the digest family the session was constructed with.
func (s *Session) Algorithm() Algorithm { return s.shared.algo }

// Size reports the digest size in bytes.
func (s *Session) Size() int { return s.shared.algo.Size() }

// recoverFailure converts a panic raised while the lock is held into a
// sticky failure on the state. Unlocking is deferred separately, so the lock
// itself can never be left held ("poisoned") for other handles.
func (st *sessionState) recoverFailure() {
	if r := recover(); r != nil {
		st.failed = &PoisonedError{Cause: r}
	}
}
