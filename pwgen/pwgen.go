// Package pwgen generates random passwords from a selection of character
// classes.
package pwgen

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// MinLength is the shortest password Generate will produce.
	MinLength = 8
	// MaxLength is the longest password Generate will produce.
	MaxLength = 32
)

var (
	// ErrNoClassSelected is returned when a Config enables no character class.
	ErrNoClassSelected = errors.New("at least one character class must be selected")

	// ErrBadLength is returned when Config.Length is outside
	// [MinLength, MaxLength].
	ErrBadLength = errors.New("password length must be between 8 and 32")

	// ErrClassAlphabetEmpty is returned when an enabled class has no
	// characters left after similar characters are excluded.
	ErrClassAlphabetEmpty = errors.New("character class has no characters left")
)

// Config selects what Generate produces.
type Config struct {
	Length         int
	Classes        ClassSet
	ExcludeSimilar bool
}

// DefaultConfig returns a 12 character config with every class enabled.
func DefaultConfig() Config {
	return Config{
		Length:  12,
		Classes: AllClasses,
	}
}

// Validate checks that cfg can be used to generate a password.
func (cfg Config) Validate() error {
	if cfg.Classes.Empty() {
		return ErrNoClassSelected
	}
	if cfg.Length < MinLength || cfg.Length > MaxLength {
		return ErrBadLength
	}
	return nil
}

// ClampLength limits n to [MinLength, MaxLength].
func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Generator produces passwords using a Source.
type Generator struct {
	src      Source
	charsets [numClasses]string
}

// New returns a Generator drawing from src. A nil src uses CryptoSource.
func New(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src, charsets: charsets}
}

var defaultGenerator = New(nil)

// Generate creates a password described by cfg using crypto/rand.
func Generate(cfg Config) (string, error) {
	return defaultGenerator.Generate(cfg)
}

// Alphabet returns the working alphabet for cfg: the enabled classes'
// characters in canonical order, with similar characters removed when
// cfg.ExcludeSimilar is set.
func Alphabet(cfg Config) (string, error) {
	return defaultGenerator.Alphabet(cfg)
}

// Alphabet returns the working alphabet for cfg.
func (g *Generator) Alphabet(cfg Config) (string, error) {
	if cfg.Classes.Empty() {
		return "", ErrNoClassSelected
	}
	var sb strings.Builder
	for _, c := range cfg.Classes.Classes() {
		sb.WriteString(g.charsets[c])
	}
	return filterSimilar(sb.String(), cfg.ExcludeSimilar), nil
}

// classAlphabet returns the post-exclusion characters of class c.
func (g *Generator) classAlphabet(c Class, excludeSimilar bool) string {
	return filterSimilar(g.charsets[c], excludeSimilar)
}

// Generate creates a password described by cfg. Each position is sampled
// independently from the working alphabet, then every enabled class missing
// from the result gets one random position overwritten with one of its
// characters. The classes are processed once each in canonical order, so a
// later overwrite can land on an earlier class's only character.
func (g *Generator) Generate(cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	alphabet, err := g.Alphabet(cfg)
	if err != nil {
		return "", err
	}
	classes := cfg.Classes.Classes()
	for _, c := range classes {
		if g.classAlphabet(c, cfg.ExcludeSimilar) == "" {
			return "", errors.Wrap(ErrClassAlphabetEmpty, c.String())
		}
	}

	res := make([]byte, cfg.Length)
	for i := range res {
		ch, err := g.pick(alphabet)
		if err != nil {
			return "", err
		}
		res[i] = ch
	}

	for _, c := range classes {
		set := g.classAlphabet(c, cfg.ExcludeSimilar)
		if containsAny(res, set) {
			continue
		}
		pos, err := g.src.Intn(len(res))
		if err != nil {
			return "", err
		}
		ch, err := g.pick(set)
		if err != nil {
			return "", err
		}
		res[pos] = ch
	}

	return string(res), nil
}

func (g *Generator) pick(set string) (byte, error) {
	idx, err := g.src.Intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// filterSimilar strips every occurrence of SimilarChars from s.
func filterSimilar(s string, exclude bool) string {
	if !exclude {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(SimilarChars, r) {
			return -1
		}
		return r
	}, s)
}

func containsAny(pw []byte, set string) bool {
	for _, ch := range pw {
		if strings.IndexByte(set, ch) >= 0 {
			return true
		}
	}
	return false
}
