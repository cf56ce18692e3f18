package service

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestNewNameGenerator_EmptyLists(t *testing.T) {
	_, err := NewNameGenerator(nil, []string{"bear"}, testRand())
	require.ErrorIs(t, err, ErrEmptyWordList)

	_, err = NewNameGenerator([]string{"brave"}, []string{}, testRand())
	require.ErrorIs(t, err, ErrEmptyWordList)
}

func TestNameGenerator_SingleAnimal(t *testing.T) {
	req := require.New(t)
	gen, err := NewNameGenerator([]string{"brave", "bold"}, []string{"bear"}, testRand())
	req.NoError(err)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		name, err := gen.GetName()
		req.NoError(err)
		req.Contains([]string{"brave bear", "bold bear"}, name)
		seen[name] = true
	}
	req.Len(seen, 2, "both adjectives should eventually be picked")
}

func TestNameGenerator_InitialsAlwaysMatch(t *testing.T) {
	req := require.New(t)
	adjectives := []string{"agile", "brave", "calm", "clever", "dusty", "eager", "zany"}
	animals := []string{"ant", "bear", "cat", "dog", "eel", "zebra", "cobra"}
	gen, err := NewNameGenerator(adjectives, animals, testRand())
	req.NoError(err)

	for i := 0; i < 500; i++ {
		name, err := gen.GetName()
		req.NoError(err)
		parts := strings.Split(name, " ")
		req.Len(parts, 2)
		req.Equal(parts[0][0], parts[1][0], "name %q", name)
		req.Contains(adjectives, parts[0])
		req.Contains(animals, parts[1])
	}
}

func TestNameGenerator_RetriesPastUnmatchedAnimals(t *testing.T) {
	req := require.New(t)
	// "xerus" no tiene adjetivo: el generador debe reintentar hasta dar con "bear".
	gen, err := NewNameGenerator([]string{"brave"}, []string{"xerus", "bear"}, testRand())
	req.NoError(err)

	for i := 0; i < 100; i++ {
		name, err := gen.GetName()
		req.NoError(err)
		req.Equal("brave bear", name)
	}
}

func TestNameGenerator_NoMatchingAdjective(t *testing.T) {
	req := require.New(t)
	gen, err := NewNameGenerator([]string{"apple"}, []string{"bear"}, testRand(), WithMaxAttempts(25))
	req.NoError(err)

	name, err := gen.GetName()
	req.Empty(name)
	req.ErrorIs(err, ErrNoMatchingAdjective)

	var invariant *NameInvariantError
	req.True(errors.As(err, &invariant))
	req.Equal("bear", invariant.Animal)
	req.Equal(25, invariant.Attempts)
}

func TestNameGenerator_InvalidInitialsNeverPair(t *testing.T) {
	req := require.New(t)
	gen, err := NewNameGenerator([]string{"\xffoo"}, []string{"\xfeel"}, testRand(), WithMaxAttempts(5))
	req.NoError(err)

	name, err := gen.GetName()
	req.Empty(name)
	req.ErrorIs(err, ErrNoMatchingAdjective)

	// Un adjetivo inválido no empareja aunque el animal válido exista.
	gen, err = NewNameGenerator([]string{"\xffoo", "brave"}, []string{"\xfeel", "bear"}, testRand())
	req.NoError(err)
	for i := 0; i < 50; i++ {
		name, err := gen.GetName()
		req.NoError(err)
		req.Equal("brave bear", name)
	}
}

func TestNameGenerator_DefaultAttemptCap(t *testing.T) {
	gen, err := NewNameGenerator([]string{"apple"}, []string{"bear"}, nil, WithMaxAttempts(0))
	require.NoError(t, err)

	_, err = gen.GetName()
	var invariant *NameInvariantError
	require.True(t, errors.As(err, &invariant))
	require.Equal(t, defaultNameMaxAttempts, invariant.Attempts)
}

func TestNameGenerator_ConcurrentCallers(t *testing.T) {
	gen, err := NewNameGenerator([]string{"brave", "bold", "calm"}, []string{"bear", "cat"}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := gen.GetName()
			if err != nil {
				errs <- err
				return
			}
			if name[0] != strings.Split(name, " ")[1][0] {
				errs <- errors.New("mismatched name " + name)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestUnmatchedInitials(t *testing.T) {
	got := UnmatchedInitials(
		[]string{"brave", "calm"},
		[]string{"bear", "xerus", "cat", "yak", "xenops"},
	)
	require.Equal(t, []rune{'x', 'y'}, got)
	require.Empty(t, UnmatchedInitials([]string{"brave"}, []string{"bear", "bison"}))
	require.Equal(t, []rune{utf8.RuneError}, UnmatchedInitials([]string{"\xffoo"}, []string{"\xfeel"}))
}
