// Package password generates random credentials from configurable
// character sets. Randomness is pluggable through the Source interface
// so callers (and tests) can substitute a deterministic byte stream.
package password

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"math"
)

const (
	// LowercaseChars is the lowercase letter character class.
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	// UppercaseChars is the uppercase letter character class.
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// NumberChars is the digit character class.
	NumberChars = "0123456789"
	// SymbolChars is the punctuation/symbol character class.
	SymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	// HexChars is the alphabet used by Key.
	HexChars = "0123456789abcdef"

	// DefaultLength is the generated length when Options.Length is unset.
	DefaultLength = 16
	// DefaultKeyLength is the key length when Key is called with length 0.
	DefaultKeyLength = 32
)

var (
	ErrEmptyAlphabet  = errors.New("alphabet must not be empty")
	ErrNegativeLength = errors.New("length must not be negative")
	ErrInvalidMax     = errors.New("max must be positive and fit in 32 bits")
)

// Source provides random bytes. Implementations must be safe for
// concurrent use or instance-isolated per caller.
type Source interface {
	Bytes(n int) ([]byte, error)
}

type cryptoSource struct{}

func (cryptoSource) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// DefaultSource is the process-wide randomness source backed by
// crypto/rand. crypto/rand.Reader is safe for concurrent use.
var DefaultSource Source = cryptoSource{}

// Generator produces random strings from a Source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator over src. A nil src falls back to
// DefaultSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = DefaultSource
	}
	return &Generator{src: src}
}

// Default is the package-level generator over DefaultSource.
var Default = NewGenerator(nil)

// Int returns a random integer in [0, max). It draws 4 random bytes,
// packs them big-endian into an unsigned 32-bit integer, and reduces
// modulo max. When max does not evenly divide 2^32 this carries a
// small modulo bias; that is accepted for this heuristic tool and
// keeps output reproducible for a fixed byte stream. Callers needing
// unbiased sampling should use crypto/rand.Int instead. max must be
// positive and fit in 32 bits; anything else returns ErrInvalidMax.
func (g *Generator) Int(max int) (int, error) {
	if max <= 0 || uint64(max) > math.MaxUint32 {
		return 0, ErrInvalidMax
	}
	b, err := g.src.Bytes(4)
	if err != nil {
		return 0, err
	}
	return int(binary.BigEndian.Uint32(b) % uint32(max)), nil
}

// Generate returns a string of exactly length runes, each drawn
// independently and with replacement from alphabet. The alphabet may
// contain repeated characters; repeats raise their draw probability.
func (g *Generator) Generate(alphabet string, length int) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if alphabet == "" {
		return "", ErrEmptyAlphabet
	}

	chars := []rune(alphabet)
	out := make([]rune, length)
	for i := range out {
		idx, err := g.Int(len(chars))
		if err != nil {
			return "", err
		}
		out[i] = chars[idx]
	}
	return string(out), nil
}

// Options selects which character classes make up the generation
// alphabet. Custom is appended verbatim to the selected classes.
type Options struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
	Custom    string
}

// DefaultOptions returns 16 characters with all four classes enabled.
func DefaultOptions() Options {
	return Options{
		Length:    DefaultLength,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Alphabet concatenates the selected character classes plus the custom
// set. The result may be empty if nothing is selected.
func (o Options) Alphabet() string {
	var alphabet string
	if o.Lowercase {
		alphabet += LowercaseChars
	}
	if o.Uppercase {
		alphabet += UppercaseChars
	}
	if o.Numbers {
		alphabet += NumberChars
	}
	if o.Symbols {
		alphabet += SymbolChars
	}
	return alphabet + o.Custom
}

// GenerateFromOptions builds the alphabet from opts and delegates to
// Generate. There is no guarantee that every selected class appears in
// the result; each position is an independent uniform draw.
func (g *Generator) GenerateFromOptions(opts Options) (string, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultLength
	}
	return g.Generate(opts.Alphabet(), length)
}

// Key returns a random lowercase hexadecimal string. A length of 0
// uses DefaultKeyLength. It is Generate over HexChars, not a distinct
// algorithm.
func (g *Generator) Key(length int) (string, error) {
	if length == 0 {
		length = DefaultKeyLength
	}
	return g.Generate(HexChars, length)
}

// Generate draws from alphabet using the default generator.
func Generate(alphabet string, length int) (string, error) {
	return Default.Generate(alphabet, length)
}

// GenerateFromOptions draws using the default generator.
func GenerateFromOptions(opts Options) (string, error) {
	return Default.GenerateFromOptions(opts)
}

// Int draws from the default generator. See Generator.Int for the
// modulo-bias caveat.
func Int(max int) (int, error) {
	return Default.Int(max)
}

// Key mints a hex key using the default generator.
func Key(length int) (string, error) {
	return Default.Key(length)
}
