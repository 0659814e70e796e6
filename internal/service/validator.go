package service

import (
	"errors"
	"fmt"

	"github.com/passgen/passgen-api/internal/model"
	"github.com/passgen/passgen-api/internal/strength"
)

var ErrMissingField = errors.New("missing required field")

// ValidatorService handles password validation business logic.
type ValidatorService struct{}

// NewValidatorService creates a new ValidatorService.
func NewValidatorService() *ValidatorService {
	return &ValidatorService{}
}

// Validate checks the request's password against its requirements.
func (s *ValidatorService) Validate(req model.ValidateRequest) (strength.Result, error) {
	if req.Password == nil || *req.Password == "" {
		return strength.Result{}, fmt.Errorf("%w: password is required", ErrMissingField)
	}

	return strength.Validate(*req.Password, requirements(req.Requirements)), nil
}

func requirements(req *model.RequirementsRequest) strength.Requirements {
	if req == nil {
		return strength.Requirements{MinLength: strength.DefaultMinLength}
	}
	return strength.Requirements{
		MinLength:        model.IntOr(req.MinLength, strength.DefaultMinLength),
		RequireUppercase: model.BoolOr(req.RequireUppercase, false),
		RequireLowercase: model.BoolOr(req.RequireLowercase, false),
		RequireNumbers:   model.BoolOr(req.RequireNumbers, false),
		RequireSymbols:   model.BoolOr(req.RequireSymbols, false),
	}
}
