package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jj-carrillo-dev/snippet-manager-backend/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// Bcrypt implements PasswordHasher on top of golang.org/x/crypto/bcrypt.
// The salt is generated per call and embedded in the digest.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the given cost. Costs outside
// the range supported by bcrypt fall back to DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify fails closed: an empty or malformed digest compares as false.
func (b *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
