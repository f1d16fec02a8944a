package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	passwords := []string{
		"secret",
		"P@ssw0rd with spaces",
		"пароль",
		"पासवर्ड🔑",
		strings.Repeat("a", MaxLength),
	}

	for _, pw := range passwords {
		t.Run(pw, func(t *testing.T) {
			hash, err := h.Hash(pw)
			require.NoError(t, err)

			assert.NotEqual(t, pw, hash)
			assert.True(t, h.Compare(hash, pw))
			assert.False(t, h.Compare(hash, pw+"x"))
			assert.False(t, h.Compare(hash, ""))
		})
	}
}

func TestBcrypt_SaltsEachHash(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Compare(first, "same"))
	assert.True(t, h.Compare(second, "same"))
}

func TestBcrypt_RejectsEmptyPassword(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost).Hash("")
	assert.Error(t, err)
}

func TestBcrypt_RejectsTooLongPassword(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("a", MaxLength+1))
	assert.Error(t, err)
}

func TestBcrypt_CompareRejectsBytesPastLimit(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)
	pw := strings.Repeat("a", MaxLength)

	hash, err := h.Hash(pw)
	require.NoError(t, err)

	assert.True(t, h.Compare(hash, pw))
	assert.False(t, h.Compare(hash, pw+"WRONG"))
	assert.False(t, h.Compare(hash, pw+"a"))
}

func TestBcrypt_CompareMalformedHash(t *testing.T) {
	assert.False(t, NewBcrypt(0).Compare("not-a-hash", "secret"))
}

func TestNewBcrypt_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
}
