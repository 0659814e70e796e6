package model

// ValidateRequest represents a password validation request.
type ValidateRequest struct {
	Password     *string              `json:"password"`
	Requirements *RequirementsRequest `json:"requirements"`
}

// RequirementsRequest holds the optional composition rules of a validation request.
type RequirementsRequest struct {
	MinLength        *LooseInt  `json:"minLength"`
	RequireUppercase *LooseBool `json:"requireUppercase"`
	RequireLowercase *LooseBool `json:"requireLowercase"`
	RequireNumbers   *LooseBool `json:"requireNumbers"`
	RequireSymbols   *LooseBool `json:"requireSymbols"`
}
