package password

import "errors"

// Class alphabets. Pools are built by concatenating these in the fixed order
// lowercase, uppercase, digits, symbols.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// ErrNoCharacterClasses is the only error the generation core produces.
var ErrNoCharacterClasses = errors.New("at least one character class must be selected")

// Classes selects which character classes contribute to a pool.
type Classes struct {
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// AllClasses returns a selection with every class enabled.
func AllClasses() Classes {
	return Classes{Lowercase: true, Uppercase: true, Digits: true, Symbols: true}
}

// BuildPool concatenates the alphabets of the selected classes. It fails with
// ErrNoCharacterClasses if no class is selected.
func BuildPool(c Classes) (string, error) {
	var pool string

	if c.Lowercase {
		pool += LowercaseChars
	}
	if c.Uppercase {
		pool += UppercaseChars
	}
	if c.Digits {
		pool += DigitChars
	}
	if c.Symbols {
		pool += SymbolChars
	}

	if pool == "" {
		return "", ErrNoCharacterClasses
	}
	return pool, nil
}
