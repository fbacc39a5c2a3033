// Package sampler generates passwords by drawing characters uniformly, with
// replacement, from the pool of enabled character classes.
package sampler

import (
	"errors"
	"strings"
)

var ErrNoCharacterClassSelected = errors.New("no character class selected")

// GenerationConfig describes one password. Length <= 0 yields "".
type GenerationConfig struct {
	Length  int
	Classes ClassSet
}

// Pool concatenates the characters of every enabled class in pool order.
func Pool(classes ClassSet) string {
	var b strings.Builder
	for _, c := range classes.List() {
		b.WriteString(c.Chars())
	}
	return b.String()
}

type Sampler struct {
	src Source
}

// New returns a Sampler drawing from src, or from CryptoSource when src is nil.
func New(src Source) *Sampler {
	if src == nil {
		src = CryptoSource()
	}
	return &Sampler{src: src}
}

var defaultSampler = New(nil)

// Generate uses the package default sampler.
func Generate(cfg GenerationConfig) (string, error) {
	return defaultSampler.Generate(cfg)
}

func (s *Sampler) Generate(cfg GenerationConfig) (string, error) {
	pool := Pool(cfg.Classes)
	if pool == "" {
		return "", ErrNoCharacterClassSelected
	}
	if cfg.Length <= 0 {
		return "", nil
	}

	result := make([]byte, cfg.Length)
	for i := range result {
		idx, err := UniformIndex(s.src, len(pool))
		if err != nil {
			return "", err
		}
		result[i] = pool[idx]
	}
	return string(result), nil
}
