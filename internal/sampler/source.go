package sampler

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
)

var ErrIndexOutOfRange = errors.New("random source returned an index out of range")

// Source yields random integers in [0, n). n is always >= 1.
type Source interface {
	Int(n int) (int, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(n int) (int, error)

func (f SourceFunc) Int(n int) (int, error) { return f(n) }

type cryptoSource struct{}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
func CryptoSource() Source { return cryptoSource{} }

func (cryptoSource) Int(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

type seededSource struct {
	r *mrand.Rand
}

// SeededSource returns a reproducible source. Not safe for concurrent use.
func SeededSource(seed uint64) Source {
	return &seededSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Int(n int) (int, error) { return s.r.IntN(n), nil }

// UniformIndex draws an index uniformly from [0, n). It never returns n.
func UniformIndex(src Source, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("uniform index over empty range %d", n)
	}
	i, err := src.Int(n)
	if err != nil {
		return 0, fmt.Errorf("draw random index: %w", err)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return i, nil
}
