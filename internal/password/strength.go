package password

import (
	"strings"
	"unicode/utf8"
)

// Strength labels, indexed by the number of character classes present.
const (
	LabelVeryWeak = "Very Weak"
	LabelWeak     = "Weak"
	LabelFair     = "Fair"
	LabelGood     = "Good"
	LabelStrong   = "Strong"
)

// Report describes which character classes appear in a password.
type Report struct {
	HasLowercase bool
	HasUppercase bool
	HasDigits    bool
	HasSymbols   bool
	Score        int
	Label        string
	Length       int
}

// CheckStrength classifies a password by the character classes it contains.
// The score counts the classes present (0-4) and the label follows from the
// score. Only characters from the fixed symbol alphabet count as symbols;
// anything outside all four alphabets contributes to no class. Length counts
// characters, not bytes. Pure function, callable on any string.
func CheckStrength(pw string) Report {
	r := Report{Length: utf8.RuneCountInString(pw)}

	for _, c := range pw {
		switch {
		case c >= 'a' && c <= 'z':
			r.HasLowercase = true
		case c >= 'A' && c <= 'Z':
			r.HasUppercase = true
		case c >= '0' && c <= '9':
			r.HasDigits = true
		case strings.ContainsRune(SymbolChars, c):
			r.HasSymbols = true
		}
	}

	for _, present := range []bool{r.HasLowercase, r.HasUppercase, r.HasDigits, r.HasSymbols} {
		if present {
			r.Score++
		}
	}
	r.Label = labelFor(r.Score)
	return r
}

func labelFor(score int) string {
	switch score {
	case 1:
		return LabelWeak
	case 2:
		return LabelFair
	case 3:
		return LabelGood
	case 4:
		return LabelStrong
	default:
		return LabelVeryWeak
	}
}
