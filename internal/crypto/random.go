package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// SecureRandom is the single source of randomness for password generation.
// UniformIndex returns a uniformly distributed integer in [0, n).
type SecureRandom interface {
	UniformIndex(n int) (int, error)
}

// cryptoRandom draws indexes from crypto/rand.
type cryptoRandom struct{}

// NewSecureRandom returns a SecureRandom backed by crypto/rand.
func NewSecureRandom() SecureRandom {
	return cryptoRandom{}
}

func (cryptoRandom) UniformIndex(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random index bound must be positive, got %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
