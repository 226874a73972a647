package service

import (
	"sync"
	"unicode/utf8"

	"github.com/passmint/passmint-go/internal/crypto"
	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/internal/password"
)

const (
	// DefaultLength is used when a request leaves the length unset.
	DefaultLength = 12
	// DefaultBatchCount is used when a batch request leaves the count unset.
	DefaultBatchCount = 5
)

// GeneratorService applies request defaults and drives the password core.
// The underlying generator is not safe for concurrent use, so the service
// serializes access for its concurrent HTTP callers.
type GeneratorService struct {
	mu  sync.Mutex
	gen *password.Generator
}

// NewGeneratorService creates a GeneratorService around gen. A nil gen gets
// a time-seeded generator.
func NewGeneratorService(gen *password.Generator) *GeneratorService {
	if gen == nil {
		gen = password.New(nil)
	}
	return &GeneratorService{gen: gen}
}

// Generate produces a single password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	coreReq := toCoreRequest(req)

	s.mu.Lock()
	pw, err := s.gen.Generate(coreReq)
	s.mu.Unlock()
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return s.buildResponse(pw, req.IncludeHash)
}

// GenerateBatch produces count independent passwords with the same
// configuration. A zero count falls back to DefaultBatchCount.
func (s *GeneratorService) GenerateBatch(req model.BatchRequest) (model.BatchResponse, error) {
	count := req.Count
	if count == 0 {
		count = DefaultBatchCount
	}
	if count < 0 {
		count = 0
	}

	coreReq := toCoreRequest(req.GenerateRequest)

	s.mu.Lock()
	passwords, err := s.gen.GenerateMany(count, coreReq)
	s.mu.Unlock()
	if err != nil {
		return model.BatchResponse{}, err
	}

	resp := model.BatchResponse{
		Count:     len(passwords),
		Passwords: make([]model.GenerateResponse, 0, len(passwords)),
	}
	for _, pw := range passwords {
		one, err := s.buildResponse(pw, req.IncludeHash)
		if err != nil {
			return model.BatchResponse{}, err
		}
		resp.Passwords = append(resp.Passwords, one)
	}
	return resp, nil
}

// CheckStrength scores an arbitrary password string.
func (s *GeneratorService) CheckStrength(pw string) model.StrengthReport {
	return toStrengthReport(password.CheckStrength(pw))
}

func (s *GeneratorService) buildResponse(pw string, includeHash bool) (model.GenerateResponse, error) {
	resp := model.GenerateResponse{
		Password: pw,
		Length:   utf8.RuneCountInString(pw),
		Strength: toStrengthReport(password.CheckStrength(pw)),
	}

	if includeHash {
		hash, err := crypto.HashPassword(pw)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		resp.Hash = hash
	}
	return resp, nil
}

func toCoreRequest(req model.GenerateRequest) password.Request {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}

	return password.Request{
		Length: length,
		Classes: password.Classes{
			Lowercase: boolOrDefault(req.Lowercase, true),
			Uppercase: boolOrDefault(req.Uppercase, true),
			Digits:    boolOrDefault(req.Digits, true),
			Symbols:   boolOrDefault(req.Symbols, true),
		},
	}
}

func toStrengthReport(r password.Report) model.StrengthReport {
	return model.StrengthReport{
		Score:        r.Score,
		Strength:     r.Label,
		Length:       r.Length,
		HasLowercase: r.HasLowercase,
		HasUppercase: r.HasUppercase,
		HasDigits:    r.HasDigits,
		HasSymbols:   r.HasSymbols,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
