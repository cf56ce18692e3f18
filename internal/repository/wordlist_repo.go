package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	AdjectivesFile = "adjectives.txt"
	AnimalsFile    = "animals.txt"
)

var ErrWordListEmpty = errors.New("word list is empty")

// WordLists son las dos listas usadas para generar nombres. Se cargan una vez
// al arrancar y no se modifican después.
type WordLists struct {
	Adjectives []string
	Animals    []string
}

// LoadWordLists lee adjectives.txt y animals.txt desde dir.
func LoadWordLists(dir string) (WordLists, error) {
	adjectives, err := LoadWordList(filepath.Join(dir, AdjectivesFile))
	if err != nil {
		return WordLists{}, err
	}
	animals, err := LoadWordList(filepath.Join(dir, AnimalsFile))
	if err != nil {
		return WordLists{}, err
	}
	return WordLists{Adjectives: adjectives, Animals: animals}, nil
}

// LoadWordList lee un archivo con una palabra por línea. Las líneas en blanco
// o que no son UTF-8 válido se descartan y todo se pasa a minúsculas.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrWordListEmpty)
	}
	return words, nil
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || !utf8.ValidString(word) {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	return words, scanner.Err()
}
