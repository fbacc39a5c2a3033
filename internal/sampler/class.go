package sampler

import (
	"fmt"
	"strings"

	"github.com/sethvargo/go-password/password"
)

// Class is a named character class usable as a source for generation.
type Class uint8

const (
	Uppercase Class = 1 << iota
	Lowercase
	Digit
	Symbol
)

// Classes lists every class in pool order.
var Classes = [...]Class{Uppercase, Lowercase, Digit, Symbol}

// Chars returns the characters of c, or "" for an unknown class.
func (c Class) Chars() string {
	switch c {
	case Uppercase:
		return password.UpperLetters
	case Lowercase:
		return password.LowerLetters
	case Digit:
		return password.Digits
	case Symbol:
		return password.Symbols
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Uppercase:
		return "upper"
	case Lowercase:
		return "lower"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// ParseClass accepts the String form of a class and a few common aliases.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper", "uppercase", "u":
		return Uppercase, nil
	case "lower", "lowercase", "l":
		return Lowercase, nil
	case "digit", "digits", "number", "numbers", "d":
		return Digit, nil
	case "symbol", "symbols", "s":
		return Symbol, nil
	}
	return 0, fmt.Errorf("unknown character class %q", s)
}

// ClassSet is a set of enabled classes.
type ClassSet uint8

// AllClasses has every class enabled.
const AllClasses = ClassSet(Uppercase | Lowercase | Digit | Symbol)

func NewClassSet(classes ...Class) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s = s.With(c)
	}
	return s
}

func (s ClassSet) Has(c Class) bool { return s&ClassSet(c) != 0 }

func (s ClassSet) With(c Class) ClassSet { return s | ClassSet(c) }

func (s ClassSet) Without(c Class) ClassSet { return s &^ ClassSet(c) }

// Toggle flips c in s.
func (s ClassSet) Toggle(c Class) ClassSet { return s ^ ClassSet(c) }

func (s ClassSet) Empty() bool { return s&AllClasses == 0 }

// List returns the enabled classes in pool order.
func (s ClassSet) List() []Class {
	var out []Class
	for _, c := range Classes {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s ClassSet) String() string {
	names := make([]string, 0, len(Classes))
	for _, c := range s.List() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}
