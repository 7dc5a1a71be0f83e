package pwgen

import (
	"fmt"
	"strings"
)

// Class is a selectable character class.
type Class int

// The character classes, in canonical order. Alphabets are always assembled
// and guaranteed in this order.
const (
	Uppercase Class = iota
	Lowercase
	Numbers
	Symbols

	numClasses
)

var (
	// Classes lists every character class in canonical order.
	Classes = []Class{Uppercase, Lowercase, Numbers, Symbols}

	// SimilarChars are the visually ambiguous characters stripped from the
	// alphabet when ExcludeSimilar is set.
	SimilarChars = "Il1O0"

	charsets = [numClasses]string{
		Uppercase: "ABCDEFGHJKLMNPQRSTUVWXYZ",
		Lowercase: "abcdefghijkmnopqrstuvwxyz",
		Numbers:   "23456789",
		Symbols:   "!@#$%^&*()_+-=[]{}|;:,.<>?",
	}

	classNames = [numClasses]string{
		Uppercase: "uppercase",
		Lowercase: "lowercase",
		Numbers:   "numbers",
		Symbols:   "symbols",
	}
)

func (c Class) String() string {
	if c < 0 || c >= numClasses {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Charset returns the literal characters allowed for the class.
func (c Class) Charset() string {
	if c < 0 || c >= numClasses {
		return ""
	}
	return charsets[c]
}

// ParseClass returns the class named by name. Matching is case-insensitive
// and accepts the first letter as a shorthand.
func ParseClass(name string) (Class, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Classes {
		if name == classNames[c] || (len(name) == 1 && name[0] == classNames[c][0]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown character class %q", name)
}

// ClassSet is a set of character classes.
type ClassSet uint8

// AllClasses is the set containing every class.
const AllClasses = ClassSet(1<<numClasses - 1)

// NewClassSet returns the set containing cs.
func NewClassSet(cs ...Class) ClassSet {
	var s ClassSet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s ClassSet) Has(c Class) bool {
	return c >= 0 && c < numClasses && s&(1<<uint(c)) != 0
}

// With returns the set with c added.
func (s ClassSet) With(c Class) ClassSet {
	if c < 0 || c >= numClasses {
		return s
	}
	return s | 1<<uint(c)
}

// Without returns the set with c removed.
func (s ClassSet) Without(c Class) ClassSet {
	if c < 0 || c >= numClasses {
		return s
	}
	return s &^ (1 << uint(c))
}

// Toggle flips membership of c.
func (s ClassSet) Toggle(c Class) ClassSet {
	if s.Has(c) {
		return s.Without(c)
	}
	return s.With(c)
}

// Empty reports whether no class is selected.
func (s ClassSet) Empty() bool {
	return s&AllClasses == 0
}

// Classes returns the members of the set in canonical order.
func (s ClassSet) Classes() []Class {
	var res []Class
	for _, c := range Classes {
		if s.Has(c) {
			res = append(res, c)
		}
	}
	return res
}

func (s ClassSet) String() string {
	var names []string
	for _, c := range s.Classes() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}
