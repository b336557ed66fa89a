// Package words holds the pure rules of the word game: the combination
// pool, the lexicon membership oracle, and word validation.
package words

import "math/rand"

// Lexicon answers membership queries against a fixed word set.
type Lexicon interface {
	Contains(word string) bool
}

// SetLexicon is a Lexicon backed by an in-memory set.
type SetLexicon struct {
	words map[string]struct{}
}

func NewSetLexicon(entries []string) *SetLexicon {
	set := make(map[string]struct{}, len(entries))
	for _, w := range entries {
		set[w] = struct{}{}
	}
	return &SetLexicon{words: set}
}

func (l *SetLexicon) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

func (l *SetLexicon) Len() int { return len(l.words) }

// NewArabicLexicon builds the bundled Arabic lexicon.
func NewArabicLexicon() *SetLexicon {
	return NewSetLexicon(arabicWords)
}

// Generator draws combinations from the pool.
type Generator struct {
	pool []string
	rng  *rand.Rand
}

// NewGenerator draws from Combinations using rng. A nil rng falls back to
// the global source.
func NewGenerator(rng *rand.Rand) *Generator {
	return NewGeneratorFrom(Combinations, rng)
}

// NewGeneratorFrom draws from a caller-supplied pool; tests use a
// single-element pool for deterministic combinations.
func NewGeneratorFrom(pool []string, rng *rand.Rand) *Generator {
	return &Generator{pool: pool, rng: rng}
}

func (g *Generator) Next() string {
	if g.rng != nil {
		return g.pool[g.rng.Intn(len(g.pool))]
	}
	return g.pool[rand.Intn(len(g.pool))]
}
