package password

import (
	"math/rand"
	"time"
)

// Request describes a single generation: how many characters to draw and
// which classes to draw them from.
type Request struct {
	Length  int
	Classes Classes
}

// Generator draws passwords from a math/rand source. The source is plain
// pseudorandomness: output is NOT suitable for security-sensitive secrets.
// A Generator is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator backed by rng. Passing nil seeds a fresh source
// from the current time; tests pass a seeded source for determinism.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate produces a password of req.Length characters, each drawn uniformly
// (with replacement) from the pool selected by req.Classes. A length of zero
// or less yields an empty password; the only error is the pool builder's.
func (g *Generator) Generate(req Request) (string, error) {
	pool, err := BuildPool(req.Classes)
	if err != nil {
		return "", err
	}
	return g.sample(pool, req.Length), nil
}

// GenerateMany produces count independent passwords with the same
// configuration. The pool is built and validated once; count 0 returns an
// empty slice.
func (g *Generator) GenerateMany(count int, req Request) ([]string, error) {
	pool, err := BuildPool(req.Classes)
	if err != nil {
		return nil, err
	}

	passwords := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		passwords = append(passwords, g.sample(pool, req.Length))
	}
	return passwords, nil
}

func (g *Generator) sample(pool string, length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = pool[g.rng.Intn(len(pool))]
	}
	return string(b)
}
