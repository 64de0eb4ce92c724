package service

import (
	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/password"
)

// GeneratorService handles credential generation business logic.
type GeneratorService struct {
	gen *password.Generator
}

// NewGeneratorService creates a GeneratorService. A nil generator
// falls back to the package default over crypto/rand.
func NewGeneratorService(gen *password.Generator) *GeneratorService {
	if gen == nil {
		gen = password.Default
	}
	return &GeneratorService{gen: gen}
}

// options maps an API request onto generation options: absent class
// flags default to true, explicit false disables a class.
func options(req model.GenerateRequest) password.Options {
	return password.Options{
		Length:    req.Length,
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		Custom:    req.Custom,
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	pwd, err := s.gen.GenerateFromOptions(options(req))
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: pwd,
		Length:   len([]rune(pwd)),
	}, nil
}

// GenerateKey produces a hex key based on the given request.
func (s *GeneratorService) GenerateKey(req model.KeyRequest) (model.KeyResponse, error) {
	key, err := s.gen.Key(req.Length)
	if err != nil {
		return model.KeyResponse{}, err
	}

	return model.KeyResponse{
		Key:    key,
		Length: len(key),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
