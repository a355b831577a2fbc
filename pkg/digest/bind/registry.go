package bind

import (
	"sync"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"

	"github.com/achuala/go-hashing/pkg/digest"
)

// ErrUnknownHandle is returned when a handle does not name a live session.
var ErrUnknownHandle = errors.New("unknown session handle")

// Registry hands out opaque string handles for sessions so hosts that cannot
// hold Go pointers (FFI and scripting embeddings) can still drive them. All
// registry operations are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*digest.Session
	log      *log.Helper
}

// NewRegistry creates an empty registry. Lifecycle events are logged through
// the given logger; per-operation errors are returned to the caller, never
// logged.
func NewRegistry(logger log.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*digest.Session),
		log:      log.NewHelper(log.With(logger, "module", "digest/bind")),
	}
}

// Open constructs a session by algorithm name, optionally seeded with an
// initial chunk, and returns its handle.
func (r *Registry) Open(algo string, initial []byte) (string, error) {
	s, err := NewSession(algo, initial)
	if err != nil {
		return "", err
	}
	handle := shortuuid.New()
	r.mu.Lock()
	r.sessions[handle] = s
	r.mu.Unlock()
	r.log.Debugw("msg", "session opened", "handle", handle, "algorithm", s.Algorithm().String())
	return handle, nil
}

// Get returns the session behind a handle.
func (r *Registry) Get(handle string) (*digest.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[handle]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrUnknownHandle, handle)
	}
	return s, nil
}

// Update appends content to the session behind the handle.
func (r *Registry) Update(handle string, content []byte) error {
	s, err := r.Get(handle)
	if err != nil {
		return err
	}
	s.Update(content)
	return nil
}

// Digest finalizes the session behind the handle and renders it using a
// host-provided encoding selector (ordinal, float or name).
func (r *Registry) Digest(handle string, encoding any) (string, error) {
	s, err := r.Get(handle)
	if err != nil {
		return "", err
	}
	enc, err := ParseEncoding(encoding)
	if err != nil {
		return "", err
	}
	return s.Digest(enc)
}

// Close drops the handle. The underlying state is released once the last
// aliasing handle is gone.
func (r *Registry) Close(handle string) error {
	r.mu.Lock()
	_, ok := r.sessions[handle]
	delete(r.sessions, handle)
	r.mu.Unlock()
	if !ok {
		return errors.Wrap(ErrUnknownHandle, handle)
	}
	r.log.Debugw("msg", "session closed", "handle", handle)
	return nil
}

// Len reports the number of live handles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
