package sprechpass

import (
	"math/rand/v2"
	"strings"
)

// Generator emits pronounceable passwords by walking a model's chain
// tables. It keeps its own random state, so a single Generator must not be
// used from multiple goroutines; the underlying model may be shared by any
// number of generators because it is never written to.
type Generator struct {
	model *Model
	keys  []string // sorted StartVowel keys, fixed at construction
	rng   *rand.Rand
}

// NewGenerator returns a generator over m seeded from the process-wide
// random source. The model must not be modified afterwards.
func NewGenerator(m *Model) (*Generator, error) {
	return NewGeneratorSource(m, rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewGeneratorSource is NewGenerator with an explicit random source, which
// makes the walk reproducible.
func NewGeneratorSource(m *Model, src rand.Source) (*Generator, error) {
	if len(m.StartVowel) == 0 {
		return nil, &EmptyTableError{Stage: StageStartVowel}
	}
	return &Generator{model: m, keys: m.StartVowel.Keys(), rng: rand.New(src)}, nil
}

// Generate returns one password: a prefix and four alternating groups
// chosen by five uniform selections across the chain tables, followed by
// the requested number of uniformly chosen digit characters. Every
// selection is uniform over the candidate list; the frequency ranking only
// decided which entries survived the build, not their weight here.
//
// A negative digit count returns ErrInvalidDigitCount. A key missing from
// the next stage's table returns a MalformedTableError and no password;
// there is no partial output.
func (g *Generator) Generate(digits int) (string, error) {
	if digits < 0 {
		return "", ErrInvalidDigitCount
	}
	if digits > 0 && len(g.model.Digits) == 0 {
		return "", ErrNoDigitAlphabet
	}

	var sb strings.Builder
	prefix := g.keys[g.rng.IntN(len(g.keys))]
	sb.WriteString(prefix)

	key := prefix
	for _, stage := range []Stage{StageStartVowel, StageVowelConsonant, StageConsonantVowel, StageVowelEnd} {
		next, err := g.step(stage, key)
		if err != nil {
			return "", err
		}
		sb.WriteString(next)
		key = next
	}

	for range digits {
		sb.WriteByte(g.model.Digits[g.rng.IntN(len(g.model.Digits))])
	}
	return sb.String(), nil
}

func (g *Generator) step(stage Stage, key string) (string, error) {
	choices, ok := g.model.Table(stage)[key]
	if !ok || len(choices) == 0 {
		return "", &MalformedTableError{Stage: stage, Key: key}
	}
	return choices[g.rng.IntN(len(choices))], nil
}
