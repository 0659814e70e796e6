// Package strength checks passwords against composition requirements and
// estimates their entropy.
package strength

import (
	"math"
	"slices"
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

// DefaultMinLength is applied when the caller does not supply a minimum length.
const DefaultMinLength = 8

// maxAnalysisBytes bounds the input handed to the pattern matcher, whose
// cost grows quickly with length. Only this prefix of a password is analysed.
const maxAnalysisBytes = 50

// Pool sizes credited to each character class found in a password.
const (
	uppercasePool = 26
	lowercasePool = 26
	digitPool     = 10
	symbolPool    = 32
)

// Level is a strength tier, ordered from weakest to strongest.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

func (l Level) String() string {
	switch l {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Moderate:
		return "moderate"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

// MarshalText renders the level by name in JSON responses.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Classify maps entropy in bits to a strength tier.
func Classify(entropy float64) Level {
	switch {
	case entropy < 28:
		return VeryWeak
	case entropy < 36:
		return Weak
	case entropy < 60:
		return Moderate
	case entropy < 128:
		return Strong
	default:
		return VeryStrong
	}
}

// Requirements are the composition rules a password is checked against.
type Requirements struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumbers   bool
	RequireSymbols   bool
}

// Checks holds the outcome of every individual requirement.
type Checks struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

func (c Checks) all() bool {
	return c.Length && c.Uppercase && c.Lowercase && c.Numbers && c.Symbols
}

// Result is the outcome of Validate.
type Result struct {
	Valid    bool    `json:"valid"`
	Checks   Checks  `json:"checks"`
	Entropy  float64 `json:"entropy"`
	Strength Level   `json:"strength"`

	// Analysis is nil for empty passwords.
	Analysis *Analysis `json:"analysis,omitempty"`
}

// Analysis is the pattern-matching view of a password (dictionary words,
// keyboard sequences, repeats). It does not affect Valid or Strength.
type Analysis struct {
	Score     int    `json:"score"`
	CrackTime string `json:"crackTime"`
}

// Validate checks password against req and reports its estimated strength.
func Validate(password string, req Requirements) Result {
	// Lengths are counted in characters, not bytes.
	runes := []rune(password)

	checks := Checks{
		Length:    len(runes) >= req.MinLength,
		Uppercase: !req.RequireUppercase || slices.ContainsFunc(runes, isUpper),
		Lowercase: !req.RequireLowercase || slices.ContainsFunc(runes, isLower),
		Numbers:   !req.RequireNumbers || slices.ContainsFunc(runes, isDigit),
		Symbols:   !req.RequireSymbols || slices.ContainsFunc(runes, isSymbol),
	}

	entropy := Entropy(password)

	result := Result{
		Valid:    checks.all(),
		Checks:   checks,
		Entropy:  math.Round(entropy*100) / 100,
		Strength: Classify(entropy),
	}

	if password != "" {
		match := zxcvbn.PasswordStrength(analysisPrefix(password), nil)
		result.Analysis = &Analysis{
			Score:     match.Score,
			CrackTime: match.CrackTimeDisplay,
		}
	}

	return result
}

// analysisPrefix cuts password to at most maxAnalysisBytes without splitting
// a UTF-8 sequence.
func analysisPrefix(password string) string {
	if len(password) <= maxAnalysisBytes {
		return password
	}
	cut := maxAnalysisBytes
	for cut > 0 && !utf8.RuneStart(password[cut]) {
		cut--
	}
	return password[:cut]
}

// Entropy estimates the bits of randomness in password from the character
// classes it contains and its length.
func Entropy(password string) float64 {
	pool := poolSize([]rune(password))
	if pool == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))
}

func poolSize(runes []rune) int {
	var pool int
	if slices.ContainsFunc(runes, isUpper) {
		pool += uppercasePool
	}
	if slices.ContainsFunc(runes, isLower) {
		pool += lowercasePool
	}
	if slices.ContainsFunc(runes, isDigit) {
		pool += digitPool
	}
	if slices.ContainsFunc(runes, isSymbol) {
		pool += symbolPool
	}
	return pool
}

func isUpper(ch rune) bool { return ch >= 'A' && ch <= 'Z' }

func isLower(ch rune) bool { return ch >= 'a' && ch <= 'z' }

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// isSymbol matches anything outside the ASCII alphanumeric ranges.
func isSymbol(ch rune) bool {
	return !isUpper(ch) && !isLower(ch) && !isDigit(ch)
}
