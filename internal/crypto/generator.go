package crypto

import (
	"fmt"
)

// Generator produces passwords from GenerationOptions.
// A Generator holds no per-call state and is safe for concurrent use as long
// as its SecureRandom is.
type Generator struct {
	rng    SecureRandom
	policy CategoryPolicy
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng SecureRandom, policy CategoryPolicy) *Generator {
	return &Generator{rng: rng, policy: policy}
}

// Charset resolves opts under the generator's empty category policy.
func (g *Generator) Charset(opts GenerationOptions) (Charset, error) {
	return BuildCharset(opts, g.policy)
}

// Generate creates a password of opts.Length characters containing at least
// one character of every enabled category that survived filtering.
func (g *Generator) Generate(opts GenerationOptions) (string, error) {
	cs, err := g.Charset(opts)
	if err != nil {
		return "", err
	}
	return g.GenerateFrom(cs, opts.Length)
}

// GenerateFrom creates a password of length characters from an already
// resolved charset.
func (g *Generator) GenerateFrom(cs Charset, length int) (string, error) {
	return g.generate(cs, length)
}

// GenerateMany returns count independently generated passwords.
func (g *Generator) GenerateMany(opts GenerationOptions, count int) ([]string, error) {
	cs, err := g.Charset(opts)
	if err != nil {
		return nil, err
	}
	return g.GenerateManyFrom(cs, opts.Length, count)
}

// GenerateManyFrom returns count passwords of length characters drawn from cs.
func (g *Generator) GenerateManyFrom(cs Charset, length, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count must not be negative", ErrInvalidConfiguration)
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := g.generate(cs, length)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

func (g *Generator) generate(cs Charset, length int) (string, error) {
	if length <= 0 || length < len(cs.required) {
		return "", fmt.Errorf("%w: length %d cannot hold one character of each of the %d selected types",
			ErrInvalidConfiguration, length, len(cs.required))
	}

	result := make([]byte, 0, length)

	// Guarantee at least one character from each selected type.
	required, err := cs.RequiredChars(g.rng)
	if err != nil {
		return "", err
	}
	result = append(result, required...)

	// Fill the remaining positions from the full pool.
	for len(result) < length {
		ch, err := randChar(g.rng, cs.Pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := secureShuffle(g.rng, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// secureShuffle performs a Fisher-Yates shuffle, swapping each position i
// with a uniformly chosen j in [0, i].
func secureShuffle(rng SecureRandom, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rng.UniformIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
