package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSourceWithGetentropy(t *testing.T) {
	src, err := newSource()
	require.NoError(t, err)

	// larger than the getentropy chunk limit
	b := make([]byte, 3*maxChunk+10)
	err = src.Read(b)
	require.NoError(t, err)
	require.NotEqual(t, make([]byte, len(b)), b)

	// no resource is held
	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
}
