package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService(t *testing.T) {
	svc, err := NewPasswordService()
	require.NoError(t, err)

	t.Run("Success_HashAndCompare", func(t *testing.T) {
		hash, err := svc.Hash("correct horse")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
		assert.NotContains(t, hash, "correct horse")
		assert.True(t, svc.Compare("correct horse", hash))
		assert.False(t, svc.Compare("wrong horse", hash))
	})

	t.Run("Success_SaltedHashes", func(t *testing.T) {
		first, err := svc.Hash("same password")
		require.NoError(t, err)
		second, err := svc.Hash("same password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Error_MalformedHash", func(t *testing.T) {
		assert.False(t, svc.Compare("password", "not-a-hash"))
	})
}
