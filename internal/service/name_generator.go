package service

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"unicode/utf8"

	"github.com/samber/lo"
)

const defaultNameMaxAttempts = 1000

var (
	ErrEmptyWordList       = errors.New("name generator word list is empty")
	ErrNoMatchingAdjective = errors.New("no adjective matches animal initial")
)

// NameInvariantError indica que las listas de palabras no cumplen la regla de
// emparejamiento: hay animales cuya inicial no comparte ningún adjetivo.
type NameInvariantError struct {
	Animal   string
	Attempts int
}

func (e *NameInvariantError) Error() string {
	return fmt.Sprintf("%v: last animal %q after %d attempts", ErrNoMatchingAdjective, e.Animal, e.Attempts)
}

func (e *NameInvariantError) Unwrap() error {
	return ErrNoMatchingAdjective
}

// NameGenerator genera nombres "<adjetivo> <animal>" donde ambas palabras
// empiezan con la misma letra.
//
// Precondición: para cada inicial presente en animals debe existir al menos un
// adjetivo con esa inicial. Si no se cumple, GetName devuelve un
// *NameInvariantError después de maxAttempts intentos.
type NameGenerator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	adjectives  []string
	animals     []string
	maxAttempts int
}

type NameGeneratorOption func(*NameGenerator)

// WithMaxAttempts limita los reintentos de GetName. Valores <= 0 se ignoran.
func WithMaxAttempts(n int) NameGeneratorOption {
	return func(g *NameGenerator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// NewNameGenerator construye un generador sobre listas que no se modifican
// después. Si rng es nil se usa uno sembrado desde crypto/rand.
func NewNameGenerator(adjectives, animals []string, rng *rand.Rand, opts ...NameGeneratorOption) (*NameGenerator, error) {
	if len(adjectives) == 0 || len(animals) == 0 {
		return nil, ErrEmptyWordList
	}
	if rng == nil {
		rng = newSeededRand()
	}
	g := &NameGenerator{
		rng:         rng,
		adjectives:  adjectives,
		animals:     animals,
		maxAttempts: defaultNameMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GetName elige un animal al azar y un adjetivo al azar con la misma inicial.
// Si ningún adjetivo coincide vuelve a elegir animal.
func (g *NameGenerator) GetName() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var animal string
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		animal = g.animals[g.rng.IntN(len(g.animals))]
		initial, ok := firstRune(animal)
		if !ok {
			continue
		}
		matches := lo.Filter(g.adjectives, func(adj string, _ int) bool {
			r, ok := firstRune(adj)
			return ok && r == initial
		})
		if len(matches) > 0 {
			adjective := matches[g.rng.IntN(len(matches))]
			return adjective + " " + animal, nil
		}
	}
	return "", &NameInvariantError{Animal: animal, Attempts: g.maxAttempts}
}

// UnmatchedInitials devuelve las iniciales de animales sin adjetivo que las
// comparta, en el orden en que aparecen.
func UnmatchedInitials(adjectives, animals []string) []rune {
	available := make(map[rune]struct{}, len(adjectives))
	for _, adj := range adjectives {
		if r, ok := firstRune(adj); ok {
			available[r] = struct{}{}
		}
	}
	missing := lo.FilterMap(animals, func(animal string, _ int) (rune, bool) {
		r, ok := firstRune(animal)
		if !ok {
			return utf8.RuneError, true
		}
		_, found := available[r]
		return r, !found
	})
	return lo.Uniq(missing)
}

// firstRune devuelve la inicial de s. Una palabra vacía o que no empieza con
// UTF-8 válido no tiene inicial y no empareja con nada.
func firstRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return r, true
}

func newSeededRand() *rand.Rand {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}
