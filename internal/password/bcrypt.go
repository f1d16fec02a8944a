package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/vanashree/internal/model"
)

// MaxLength is the longest password bcrypt accepts, in bytes.
const MaxLength = 72

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with a per-hash random salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost. Zero selects bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns the encoded bcrypt hash of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Compare reports whether password matches hash. It has no side effects.
// Passwords longer than MaxLength never match, since bcrypt would ignore
// the excess bytes.
func (b *Bcrypt) Compare(hash, password string) bool {
	if len(password) > MaxLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
