package handler

import (
	"net/http"

	"github.com/passgen/passgen-api/internal/model"
	"github.com/passgen/passgen-api/internal/service"
)

// ValidatorHandler handles HTTP requests for password validation.
type ValidatorHandler struct {
	service *service.ValidatorService
}

// NewValidatorHandler creates a new ValidatorHandler.
func NewValidatorHandler(svc *service.ValidatorService) *ValidatorHandler {
	return &ValidatorHandler{service: svc}
}

// HandleValidate handles POST /v1/password/validate requests.
func (h *ValidatorHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	result, err := h.service.Validate(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	msg := "password is valid"
	if !result.Valid {
		msg = "password does not meet the requirements"
	}
	writeSuccess(w, msg, result)
}
