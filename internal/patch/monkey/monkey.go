package monkey

import (
	"errors"
	"testing"

	"github.com/bouk/monkey"
	"github.com/stretchr/testify/require"
)

// PatchGuard is a type alias.
type PatchGuard = monkey.PatchGuard

// ErrMonkey is used to return an error in patch function.
var ErrMonkey = errors.New("monkey error")

// IsExistMonkeyError is used to confirm err contains ErrMonkey.
func IsExistMonkeyError(t testing.TB, err error) {
	require.Error(t, err)
	require.Contains(t, err.Error(), ErrMonkey.Error())
}

// Patch is a wrapper about monkey.Patch.
func Patch(target, replacement interface{}) *PatchGuard {
	return monkey.Patch(target, replacement)
}
