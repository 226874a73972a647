package password

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func seeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "all classes",
			req:  Request{Length: 12, Classes: AllClasses()},
		},
		{
			name: "lowercase only",
			req:  Request{Length: 16, Classes: Classes{Lowercase: true}},
		},
		{
			name: "uppercase only",
			req:  Request{Length: 16, Classes: Classes{Uppercase: true}},
		},
		{
			name: "digits only",
			req:  Request{Length: 16, Classes: Classes{Digits: true}},
		},
		{
			name: "symbols only",
			req:  Request{Length: 16, Classes: Classes{Symbols: true}},
		},
		{
			name: "length 1",
			req:  Request{Length: 1, Classes: AllClasses()},
		},
		{
			name: "length 0 yields empty password",
			req:  Request{Length: 0, Classes: AllClasses()},
		},
		{
			name: "negative length yields empty password",
			req:  Request{Length: -3, Classes: AllClasses()},
		},
		{
			name:    "no classes selected",
			req:     Request{Length: 12},
			wantErr: ErrNoCharacterClasses,
		},
		{
			name:    "no classes selected regardless of length",
			req:     Request{Length: 0},
			wantErr: ErrNoCharacterClasses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(nil)
			pw, err := gen.Generate(tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			wantLen := tt.req.Length
			if wantLen < 0 {
				wantLen = 0
			}
			if len(pw) != wantLen {
				t.Errorf("Generate() length = %d, want %d", len(pw), wantLen)
			}
		})
	}
}

func TestGenerateDrawsOnlyFromPool(t *testing.T) {
	tests := []struct {
		name    string
		classes Classes
	}{
		{"lowercase only", Classes{Lowercase: true}},
		{"uppercase only", Classes{Uppercase: true}},
		{"digits only", Classes{Digits: true}},
		{"symbols only", Classes{Symbols: true}},
		{"lowercase and digits", Classes{Lowercase: true, Digits: true}},
		{"all classes", AllClasses()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := BuildPool(tt.classes)
			if err != nil {
				t.Fatalf("BuildPool() unexpected error: %v", err)
			}

			gen := New(nil)
			for i := 0; i < 20; i++ {
				pw, err := gen.Generate(Request{Length: 32, Classes: tt.classes})
				if err != nil {
					t.Fatalf("Generate() unexpected error: %v", err)
				}
				for _, c := range pw {
					if !strings.ContainsRune(pool, c) {
						t.Fatalf("password %q contains %q, not in pool %q", pw, string(c), pool)
					}
				}
			}
		})
	}
}

func TestGenerateSameSeedSameSequence(t *testing.T) {
	req := Request{Length: 24, Classes: AllClasses()}

	a := seeded(42)
	b := seeded(42)

	for i := 0; i < 10; i++ {
		pa, err := a.Generate(req)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		pb, err := b.Generate(req)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if pa != pb {
			t.Fatalf("draw %d diverged: %q vs %q", i, pa, pb)
		}
	}
}

func TestGenerateMany(t *testing.T) {
	gen := seeded(7)
	req := Request{Length: 12, Classes: AllClasses()}

	passwords, err := gen.GenerateMany(5, req)
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	if len(passwords) != 5 {
		t.Fatalf("GenerateMany() returned %d passwords, want 5", len(passwords))
	}

	pool, _ := BuildPool(req.Classes)
	for _, pw := range passwords {
		if len(pw) != 12 {
			t.Errorf("password %q has length %d, want 12", pw, len(pw))
		}
		for _, c := range pw {
			if !strings.ContainsRune(pool, c) {
				t.Errorf("password %q contains %q, not in pool", pw, string(c))
			}
		}
	}
}

func TestGenerateManyZeroCount(t *testing.T) {
	gen := New(nil)

	passwords, err := gen.GenerateMany(0, Request{Length: 12, Classes: AllClasses()})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	if len(passwords) != 0 {
		t.Errorf("GenerateMany(0) returned %d passwords, want 0", len(passwords))
	}
}

func TestGenerateManyPropagatesPoolError(t *testing.T) {
	gen := New(nil)

	_, err := gen.GenerateMany(5, Request{Length: 12})
	if !errors.Is(err, ErrNoCharacterClasses) {
		t.Fatalf("GenerateMany() error = %v, want %v", err, ErrNoCharacterClasses)
	}
}
