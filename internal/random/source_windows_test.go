package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSourceWithOSAPI(t *testing.T) {
	src, err := newSource()
	require.NoError(t, err)
	require.NotZero(t, src.module)
	require.NotZero(t, src.proc)

	b := make([]byte, 64)
	err = src.Read(b)
	require.NoError(t, err)
	require.NotEqual(t, make([]byte, 64), b)

	// zero length request is a no-op
	require.NoError(t, src.Read(nil))
	require.NoError(t, src.Read(make([]byte, 0)))

	// idempotent, the library is unloaded after the first call
	require.NoError(t, src.Close())
	require.Zero(t, src.module)
	require.NoError(t, src.Close())
}
