package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/passgen/passgen-api/internal/config"
	"github.com/passgen/passgen-api/internal/crypto"
	"github.com/passgen/passgen-api/internal/model"
)

var ErrOutOfRange = errors.New("value out of range")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen    *crypto.Generator
	limits config.Limits
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(gen *crypto.Generator, limits config.Limits) *GeneratorService {
	return &GeneratorService{gen: gen, limits: limits}
}

// Generate produces a single password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts, err := s.options(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	cs, err := s.gen.Charset(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := s.gen.GenerateFrom(cs, opts.Length)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Options:  echoOptions(opts),
		Warnings: warnings(cs),
	}, nil
}

// GenerateMany produces a batch of independent passwords sharing the same options.
func (s *GeneratorService) GenerateMany(req model.GenerateManyRequest) (model.GenerateManyResponse, error) {
	count := model.IntOr(req.Count, s.limits.DefaultCount)
	if count < 1 || count > s.limits.MaxCount {
		return model.GenerateManyResponse{}, fmt.Errorf("%w: count must be between 1 and %d", ErrOutOfRange, s.limits.MaxCount)
	}

	opts, err := s.options(req.GenerateRequest)
	if err != nil {
		return model.GenerateManyResponse{}, err
	}

	cs, err := s.gen.Charset(opts)
	if err != nil {
		return model.GenerateManyResponse{}, err
	}

	passwords, err := s.gen.GenerateManyFrom(cs, opts.Length, count)
	if err != nil {
		return model.GenerateManyResponse{}, err
	}

	return model.GenerateManyResponse{
		Passwords: passwords,
		Count:     len(passwords),
		Options:   echoOptions(opts),
		Warnings:  warnings(cs),
	}, nil
}

// options applies defaults and bounds to a request.
func (s *GeneratorService) options(req model.GenerateRequest) (crypto.GenerationOptions, error) {
	opts := crypto.GenerationOptions{
		Length:         model.IntOr(req.Length, s.limits.DefaultLength),
		Uppercase:      model.BoolOr(req.IncludeUppercase, true),
		Lowercase:      model.BoolOr(req.IncludeLowercase, true),
		Numbers:        model.BoolOr(req.IncludeNumbers, true),
		Symbols:        model.BoolOr(req.IncludeSymbols, false),
		AvoidAmbiguous: model.BoolOr(req.ExcludeAmbiguous, false),
	}
	if req.Exclude != nil {
		opts.Exclude = *req.Exclude
	}

	if opts.Length < s.limits.MinLength || opts.Length > s.limits.MaxLength {
		return crypto.GenerationOptions{}, fmt.Errorf("%w: length must be between %d and %d characters",
			ErrOutOfRange, s.limits.MinLength, s.limits.MaxLength)
	}

	return opts, nil
}

// warnings reports enabled categories that lost every character to exclusions.
func warnings(cs crypto.Charset) []string {
	var out []string
	for _, c := range cs.Skipped {
		slog.Warn("character type excluded entirely, no character of it is guaranteed", "category", c.String())
		out = append(out, fmt.Sprintf("every %s character is excluded; none will be included", c))
	}
	return out
}

func echoOptions(opts crypto.GenerationOptions) model.Options {
	return model.Options{
		Length:           opts.Length,
		IncludeUppercase: opts.Uppercase,
		IncludeLowercase: opts.Lowercase,
		IncludeNumbers:   opts.Numbers,
		IncludeSymbols:   opts.Symbols,
		ExcludeAmbiguous: opts.AvoidAmbiguous,
		Exclude:          opts.Exclude,
	}
}
