package strength

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed words.txt
var defaultWordsRaw string

var defaultWordsOnce = sync.OnceValue(func() WordList {
	words, _ := Load(strings.NewReader(defaultWordsRaw))
	return words
})

// WordList is a set of lowercase dictionary words. It is read-only for
// the lifetime of any Scorer that holds it.
type WordList map[string]struct{}

// NewWordList builds a WordList from words. Entries are trimmed and
// lowercased; blanks are dropped.
func NewWordList(words []string) WordList {
	list := make(WordList, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		list[w] = struct{}{}
	}
	return list
}

// Contains reports whether word is in the list. The lookup is
// case-insensitive.
func (w WordList) Contains(word string) bool {
	_, ok := w[strings.ToLower(word)]
	return ok
}

// Load reads a newline-delimited word list from r. Each line is
// trimmed and lowercased; blank lines are ignored.
func Load(r io.Reader) (WordList, error) {
	list := WordList{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		list[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return list, nil
}

// LoadFile loads a word list from path. The caller decides how to
// degrade on failure; substituting an empty WordList keeps the Scorer
// usable with the dictionary sub-score pinned at its maximum.
func LoadFile(path string) (WordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// DefaultWordList returns the embedded common-passwords list.
func DefaultWordList() WordList {
	return defaultWordsOnce()
}

// tokenize splits the case-folded password into distinct word-like
// tokens: maximal runs of [a-z0-9_].
func tokenize(password string) []string {
	lowered := strings.ToLower(password)

	var tokens []string
	seen := make(map[string]struct{})
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		token := b.String()
		b.Reset()
		if _, dup := seen[token]; dup {
			return
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}
