package security

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sysrand/internal/testsuite"
)

func TestCoverBytes(t *testing.T) {
	b := testsuite.Bytes()
	CoverBytes(b)
	require.Equal(t, make([]byte, 256), b)

	// empty and nil are no-op
	CoverBytes(nil)
	CoverBytes(make([]byte, 0))
}
