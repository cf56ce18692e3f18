package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadWordList_TrimsLowercasesAndSkipsBlanks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.txt", "Brave\n\n  BOLD \n\t\ncalm\r\n")

	words, err := LoadWordList(filepath.Join(dir, "words.txt"))
	require.NoError(t, err)
	require.Equal(t, []string{"brave", "bold", "calm"}, words)
}

func TestLoadWordList_SkipsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.txt", "\xffoo\nbrave\n\xfeel\nñandu\n")

	words, err := LoadWordList(filepath.Join(dir, "words.txt"))
	require.NoError(t, err)
	require.Equal(t, []string{"brave", "ñandu"}, words)
}

func TestLoadWordList_Missing(t *testing.T) {
	_, err := LoadWordList(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWordList_OnlyBlankLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "words.txt", "\n   \n\n")

	_, err := LoadWordList(filepath.Join(dir, "words.txt"))
	require.ErrorIs(t, err, ErrWordListEmpty)
}

func TestLoadWordLists(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	writeFile(t, dir, AdjectivesFile, "brave\nbold\n")
	writeFile(t, dir, AnimalsFile, "Bear\n")

	lists, err := LoadWordLists(dir)
	req.NoError(err)
	req.Equal([]string{"brave", "bold"}, lists.Adjectives)
	req.Equal([]string{"bear"}, lists.Animals)
}

func TestLoadWordLists_MissingAnimals(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, AdjectivesFile, "brave\n")

	_, err := LoadWordLists(dir)
	require.ErrorIs(t, err, os.ErrNotExist)
}
