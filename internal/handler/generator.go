package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/passgen/passgen-api/internal/model"
	"github.com/passgen/passgen-api/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles GET /v1/password requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := generateRequestFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, "password generated", resp)
}

// HandleGenerateMany handles POST /v1/passwords requests.
func (h *GeneratorHandler) HandleGenerateMany(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateManyRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	resp, err := h.service.GenerateMany(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, fmt.Sprintf("%d passwords generated", resp.Count), resp)
}

// generateRequestFromQuery reads generation options from query parameters.
// Absent parameters stay nil so the service applies its defaults.
func generateRequestFromQuery(q url.Values) (model.GenerateRequest, error) {
	var req model.GenerateRequest

	if q.Has("length") {
		n, err := model.ParseLooseInt(q.Get("length"))
		if err != nil {
			return model.GenerateRequest{}, fmt.Errorf("invalid query parameter length: %w", err)
		}
		length := model.LooseInt(n)
		req.Length = &length
	}

	flags := []struct {
		name string
		dst  **model.LooseBool
	}{
		{"includeUppercase", &req.IncludeUppercase},
		{"includeLowercase", &req.IncludeLowercase},
		{"includeNumbers", &req.IncludeNumbers},
		{"includeSymbols", &req.IncludeSymbols},
		{"excludeAmbiguous", &req.ExcludeAmbiguous},
	}
	for _, f := range flags {
		if !q.Has(f.name) {
			continue
		}
		v, err := model.ParseLooseBool(q.Get(f.name))
		if err != nil {
			return model.GenerateRequest{}, fmt.Errorf("invalid query parameter %s: %w", f.name, err)
		}
		b := model.LooseBool(v)
		*f.dst = &b
	}

	if q.Has("exclude") {
		exclude := q.Get("exclude")
		req.Exclude = &exclude
	}

	return req, nil
}
