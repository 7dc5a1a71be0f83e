package pwgen

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// Source supplies uniformly distributed integers.
type Source interface {
	// Intn returns a uniform random integer in [0, n). n must be positive.
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

// Intn implements Source.
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.Errorf("invalid argument to Intn: %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read random source")
	}
	return int(v.Int64()), nil
}
