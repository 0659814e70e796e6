package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (nil -> configured default) from an explicit one.
type GenerateRequest struct {
	Length           *LooseInt  `json:"length"`
	IncludeUppercase *LooseBool `json:"includeUppercase"`
	IncludeLowercase *LooseBool `json:"includeLowercase"`
	IncludeNumbers   *LooseBool `json:"includeNumbers"`
	IncludeSymbols   *LooseBool `json:"includeSymbols"`
	ExcludeAmbiguous *LooseBool `json:"excludeAmbiguous"`
	Exclude          *string    `json:"exclude"`
}

// GenerateManyRequest represents a batch generation request.
type GenerateManyRequest struct {
	GenerateRequest
	Count *LooseInt `json:"count"`
}

// Options echoes the effective generation options back to the caller.
type Options struct {
	Length           int    `json:"length"`
	IncludeUppercase bool   `json:"includeUppercase"`
	IncludeLowercase bool   `json:"includeLowercase"`
	IncludeNumbers   bool   `json:"includeNumbers"`
	IncludeSymbols   bool   `json:"includeSymbols"`
	ExcludeAmbiguous bool   `json:"excludeAmbiguous"`
	Exclude          string `json:"exclude"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string   `json:"password"`
	Length   int      `json:"length"`
	Options  Options  `json:"options"`
	Warnings []string `json:"warnings,omitempty"`
}

// GenerateManyResponse represents a batch generation response.
type GenerateManyResponse struct {
	Passwords []string `json:"passwords"`
	Count     int      `json:"count"`
	Options   Options  `json:"options"`
	Warnings  []string `json:"warnings,omitempty"`
}
