package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash(t *testing.T) {
	hash, err := GetHash("Secret1!")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Secret1!", hash)
}

func TestGetHash_DifferentSalts(t *testing.T) {
	first, err := GetHash("Secret1!")
	require.NoError(t, err)
	second, err := GetHash("Secret1!")
	require.NoError(t, err)

	// bcrypt встраивает случайную соль, хэши не совпадают
	assert.NotEqual(t, first, second)
}

func TestCompareHash(t *testing.T) {
	hash, err := GetHash("Secret1!")
	require.NoError(t, err)

	assert.NoError(t, CompareHash(hash, "Secret1!"))
	assert.Error(t, CompareHash(hash, "wrong-password"))
	assert.Error(t, CompareHash(hash, ""))
}
