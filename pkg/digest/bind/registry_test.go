package bind_test

import (
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achuala/go-hashing/pkg/digest"
	"github.com/achuala/go-hashing/pkg/digest/bind"
)

func TestRegistryLifecycle(t *testing.T) {
	r := bind.NewRegistry(log.DefaultLogger)

	handle, err := r.Open("sha256", nil)
	require.NoError(t, err)
	require.NotEmpty(t, handle)
	assert.Equal(t, 1, r.Len())

	require.NoError(t, r.Update(handle, []byte("abc")))

	// Host-side selectors in all three forms drive the same session.
	got, err := r.Digest(handle, "hex")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)

	got, err = r.Digest(handle, 2)
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", got)

	require.NoError(t, r.Close(handle))
	assert.Equal(t, 0, r.Len())
}

func TestRegistryUnknownHandle(t *testing.T) {
	r := bind.NewRegistry(log.DefaultLogger)

	_, err := r.Get("nope")
	assert.ErrorIs(t, err, bind.ErrUnknownHandle)
	assert.ErrorIs(t, r.Update("nope", []byte("x")), bind.ErrUnknownHandle)
	_, err = r.Digest("nope", "hex")
	assert.ErrorIs(t, err, bind.ErrUnknownHandle)
	assert.ErrorIs(t, r.Close("nope"), bind.ErrUnknownHandle)

	// Closing twice reports the same structured error.
	handle, err := r.Open("md5", nil)
	require.NoError(t, err)
	require.NoError(t, r.Close(handle))
	assert.ErrorIs(t, r.Close(handle), bind.ErrUnknownHandle)
}

func TestRegistryOpenRejectsUnknownAlgorithm(t *testing.T) {
	r := bind.NewRegistry(log.DefaultLogger)
	_, err := r.Open("rot13", nil)
	assert.ErrorIs(t, err, digest.ErrInvalidAlgorithm)
	assert.Equal(t, 0, r.Len())
}

func TestRegistryDigestRejectsInvalidSelector(t *testing.T) {
	r := bind.NewRegistry(log.DefaultLogger)
	handle, err := r.Open("sha1", []byte("abc"))
	require.NoError(t, err)

	_, err = r.Digest(handle, 7)
	assert.ErrorIs(t, err, digest.ErrInvalidEncoding)

	// The failed render did not consume the accumulated input.
	got, err := r.Digest(handle, "hex")
	require.NoError(t, err)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", got)
}

func TestRegistryHandlesAliasOneSession(t *testing.T) {
	r := bind.NewRegistry(log.DefaultLogger)
	handle, err := r.Open("sha256", nil)
	require.NoError(t, err)

	s, err := r.Get(handle)
	require.NoError(t, err)
	s.Clone().Update([]byte("abc"))

	got, err := r.Digest(handle, "hex")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)
}
