// Package strength scores password strength with a four-factor
// heuristic: length, character-class diversity, special-character
// presence, and dictionary membership. Scoring is a pure function of
// the password and the word list fixed at Scorer construction.
package strength

import (
	"unicode/utf8"
)

const (
	// MinLength is the shortest password that earns any length score.
	MinLength = 8
	// MaxLength is where the length score stops growing.
	MaxLength = 20

	// SecureThreshold is the total score at or above which a password
	// is reported secure.
	SecureThreshold = 75

	maxLengthScore     = 50
	classPoints        = 25
	specialBonus       = 25
	maxDictionaryScore = 50
	dictionaryPenalty  = 10
)

// Details holds the four independent sub-scores.
type Details struct {
	Length            float64 `json:"length_score"`
	Diversity         float64 `json:"diversity_score"`
	SpecialCharacters float64 `json:"special_characters_score"`
	Dictionary        float64 `json:"dictionary_score"`
}

// Report is the result of scoring one password. TotalScore is the raw
// additive sum of the sub-scores (0-250); Secure compares it against
// SecureThreshold.
type Report struct {
	TotalScore float64 `json:"total_score"`
	Secure     bool    `json:"is_secure"`
	Details    Details `json:"details"`
}

// Scorer evaluates passwords against a fixed word list. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	words         WordList
	repeatPenalty float64
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithRepeatPenalty subtracts points from the diversity sub-score for
// every rune that immediately repeats its predecessor, floored at 0.
// Off by default.
func WithRepeatPenalty(points float64) Option {
	return func(s *Scorer) {
		s.repeatPenalty = points
	}
}

// NewScorer creates a Scorer over words. A nil word list behaves as an
// empty one: the dictionary sub-score is then always at its maximum.
func NewScorer(words WordList, opts ...Option) *Scorer {
	if words == nil {
		words = WordList{}
	}
	s := &Scorer{words: words}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score evaluates password and returns a complete Report. The empty
// string is a valid input and scores the minimum length component.
func (s *Scorer) Score(password string) Report {
	d := Details{
		Length:            lengthScore(password),
		Diversity:         s.diversityScore(password),
		SpecialCharacters: specialScore(password),
		Dictionary:        s.dictionaryScore(password),
	}

	total := d.Length + d.Diversity + d.SpecialCharacters + d.Dictionary
	return Report{
		TotalScore: total,
		Secure:     total >= SecureThreshold,
		Details:    d,
	}
}

// lengthScore rewards passwords in the [MinLength, MaxLength] range
// linearly and caps credit for anything longer.
func lengthScore(password string) float64 {
	n := utf8.RuneCountInString(password)
	switch {
	case n < MinLength:
		return 0
	case n > MaxLength:
		return maxLengthScore
	default:
		return float64(n-MinLength) / float64(MaxLength-MinLength) * maxLengthScore
	}
}

// diversityScore awards classPoints per character class present. The
// fourth class is any non-word character; underscore is a word
// character and counts toward no class.
func (s *Scorer) diversityScore(password string) float64 {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r != '_':
			hasSymbol = true
		}
	}

	var score float64
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if present {
			score += classPoints
		}
	}

	if s.repeatPenalty > 0 {
		score -= s.repeatPenalty * float64(repeatedRuns(password))
		if score < 0 {
			score = 0
		}
	}
	return score
}

// repeatedRuns counts runes that immediately repeat their predecessor.
func repeatedRuns(password string) int {
	var count int
	var prev rune = -1
	for _, r := range password {
		if r == prev {
			count++
		}
		prev = r
	}
	return count
}

// specialScore is presence-only: a single character outside
// [A-Za-z0-9] earns the full bonus.
func specialScore(password string) float64 {
	for _, r := range password {
		if !isAlphanumeric(r) {
			return specialBonus
		}
	}
	return 0
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// dictionaryScore penalizes each distinct token of the case-folded
// password that matches a word-list entry, floored at 0. Tokens are
// maximal runs of word characters.
func (s *Scorer) dictionaryScore(password string) float64 {
	matches := 0
	for _, token := range tokenize(password) {
		if s.words.Contains(token) {
			matches++
		}
	}

	score := float64(maxDictionaryScore - dictionaryPenalty*matches)
	if score < 0 {
		return 0
	}
	return score
}
