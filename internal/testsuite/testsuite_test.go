package testsuite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDestroyed(t *testing.T) {
	obj := new(int)
	IsDestroyed(t, obj)
}

func TestBytes(t *testing.T) {
	testdata := Bytes()
	require.Len(t, testdata, 256)
	require.Equal(t, byte(0), testdata[0])
	require.Equal(t, byte(255), testdata[255])
}

func TestMarkGoroutines(t *testing.T) {
	gm := MarkGoroutines(t)
	gm.Compare()
}
