package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", hash)
	require.NoError(t, ComparePassword(hash, "pw1"))
	require.Error(t, ComparePassword(hash, "wrong"))

	other, err := HashPassword("pw1")
	require.NoError(t, err)
	require.NotEqual(t, hash, other, "salted hashes must differ")

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
	_, err = HashPassword("pw1")
	require.Error(t, err)
}
