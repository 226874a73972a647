package password

import "testing"

func TestCheckStrength(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		want Report
	}{
		{
			name: "lowercase and digits",
			pw:   "abc123",
			want: Report{
				HasLowercase: true,
				HasDigits:    true,
				Score:        2,
				Label:        LabelFair,
				Length:       6,
			},
		},
		{
			name: "all four classes",
			pw:   "Ab1!",
			want: Report{
				HasLowercase: true,
				HasUppercase: true,
				HasDigits:    true,
				HasSymbols:   true,
				Score:        4,
				Label:        LabelStrong,
				Length:       4,
			},
		},
		{
			name: "empty string",
			pw:   "",
			want: Report{Score: 0, Label: LabelVeryWeak, Length: 0},
		},
		{
			name: "single class",
			pw:   "password",
			want: Report{
				HasLowercase: true,
				Score:        1,
				Label:        LabelWeak,
				Length:       8,
			},
		},
		{
			name: "three classes",
			pw:   "Passw0rd",
			want: Report{
				HasLowercase: true,
				HasUppercase: true,
				HasDigits:    true,
				Score:        3,
				Label:        LabelGood,
				Length:       8,
			},
		},
		{
			name: "symbols only",
			pw:   "!@#$",
			want: Report{
				HasSymbols: true,
				Score:      1,
				Label:      LabelWeak,
				Length:     4,
			},
		},
		{
			name: "characters outside every alphabet count for nothing",
			pw:   "~` \t",
			want: Report{Score: 0, Label: LabelVeryWeak, Length: 4},
		},
		{
			name: "multibyte characters count once",
			pw:   "é",
			want: Report{Score: 0, Label: LabelVeryWeak, Length: 1},
		},
		{
			name: "length counts characters not bytes",
			pw:   "pässwörd1",
			want: Report{
				HasLowercase: true,
				HasDigits:    true,
				Score:        2,
				Label:        LabelFair,
				Length:       9,
			},
		},
		{
			name: "tilde is not in the symbol alphabet but letters still count",
			pw:   "abc~",
			want: Report{
				HasLowercase: true,
				Score:        1,
				Label:        LabelWeak,
				Length:       4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckStrength(tt.pw)
			if got != tt.want {
				t.Errorf("CheckStrength(%q) = %+v, want %+v", tt.pw, got, tt.want)
			}
		})
	}
}

func TestCheckStrengthIsPure(t *testing.T) {
	const pw = "Ab1!xyz"

	first := CheckStrength(pw)
	second := CheckStrength(pw)
	if first != second {
		t.Errorf("CheckStrength not idempotent: %+v vs %+v", first, second)
	}
}

func TestCheckStrengthEverySymbolCounts(t *testing.T) {
	for _, c := range SymbolChars {
		r := CheckStrength(string(c))
		if !r.HasSymbols || r.Score != 1 {
			t.Errorf("CheckStrength(%q) = %+v, want symbol detected with score 1", string(c), r)
		}
	}
}
