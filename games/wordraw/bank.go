package wordraw

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed words.json
var bundledWords []byte

// Word is one entry of the word list.
type Word struct {
	Word     string `json:"word" yaml:"word"`
	Category string `json:"category" yaml:"category"`
}

// Bank is a read-only list of words to draw from.
type Bank struct {
	words []Word
}

// ParseBank reads a word list. JSON is accepted as well as YAML.
func ParseBank(data []byte) (*Bank, error) {
	var entries []Word
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse word list: %w", err)
	}

	words := make([]Word, 0, len(entries))
	for i, e := range entries {
		e.Word = strings.TrimSpace(e.Word)
		e.Category = strings.TrimSpace(e.Category)
		if e.Word == "" {
			return nil, fmt.Errorf("parse word list: entry %d has no word", i)
		}
		words = append(words, e)
	}

	if len(words) == 0 {
		return nil, errors.New("parse word list: no words")
	}

	return &Bank{words: words}, nil
}

// DefaultBank returns the word list bundled with the binary.
func DefaultBank() (*Bank, error) {
	return ParseBank(bundledWords)
}

// LoadBank reads the word list at path, or the bundled one if path is empty.
func LoadBank(path string) (*Bank, error) {
	if path == "" {
		return DefaultBank()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return ParseBank(data)
}

func (b *Bank) Len() int {
	return len(b.words)
}

// Pick draws a word uniformly at random. Repeats are possible.
func (b *Bank) Pick(rng *rand.Rand) Word {
	return b.words[rng.IntN(len(b.words))]
}

// Categories lists the distinct categories in sorted order.
func (b *Bank) Categories() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, w := range b.words {
		if w.Category == "" || seen[w.Category] {
			continue
		}
		seen[w.Category] = true
		out = append(out, w.Category)
	}
	slices.Sort(out)

	return out
}
