package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// ambiguousChars are easily confused when read or typed.
	ambiguousChars = "0Ol1I"
)

// ErrInvalidConfiguration is returned when the options cannot produce a password.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Category is one of the four character classes a password can draw from.
type Category int

const (
	Uppercase Category = iota
	Lowercase
	Numbers
	Symbols
)

func (c Category) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Numbers:
		return "numbers"
	case Symbols:
		return "symbols"
	default:
		return "unknown"
	}
}

func (c Category) alphabet() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Numbers:
		return numberChars
	case Symbols:
		return symbolChars
	default:
		return ""
	}
}

// CategoryPolicy decides what happens when filtering empties an enabled category.
type CategoryPolicy int

const (
	// SkipEmptyCategories drops the required character of an emptied category
	// and reports it in Charset.Skipped.
	SkipEmptyCategories CategoryPolicy = iota
	// RejectEmptyCategories fails the build with ErrInvalidConfiguration.
	RejectEmptyCategories
)

// ParseCategoryPolicy maps "skip" and "strict" to a CategoryPolicy.
func ParseCategoryPolicy(s string) (CategoryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return SkipEmptyCategories, nil
	case "strict":
		return RejectEmptyCategories, nil
	default:
		return 0, fmt.Errorf("unknown empty category policy %q", s)
	}
}

// GenerationOptions configures a single password generation.
type GenerationOptions struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Numbers        bool
	Symbols        bool
	AvoidAmbiguous bool
	Exclude        string
}

func (o GenerationOptions) enabled() []Category {
	var cats []Category
	if o.Uppercase {
		cats = append(cats, Uppercase)
	}
	if o.Lowercase {
		cats = append(cats, Lowercase)
	}
	if o.Numbers {
		cats = append(cats, Numbers)
	}
	if o.Symbols {
		cats = append(cats, Symbols)
	}
	return cats
}

// categorySet is the filtered alphabet of one enabled category.
type categorySet struct {
	category Category
	chars    string
}

// Charset is the character pool derived from GenerationOptions.
type Charset struct {
	// Pool holds every allowed character, in uppercase, lowercase, numbers,
	// symbols order.
	Pool string
	// Skipped lists enabled categories left without characters after filtering.
	Skipped []Category

	required []categorySet
}

// BuildCharset resolves opts into the filler pool and the per-category
// alphabets used for required characters. It never consumes randomness.
func BuildCharset(opts GenerationOptions, policy CategoryPolicy) (Charset, error) {
	cats := opts.enabled()
	if len(cats) == 0 {
		return Charset{}, fmt.Errorf("%w: at least one character type must be selected", ErrInvalidConfiguration)
	}

	var cs Charset
	var pool strings.Builder
	for _, c := range cats {
		chars := filterChars(c.alphabet(), opts.AvoidAmbiguous, opts.Exclude)
		if chars == "" {
			if policy == RejectEmptyCategories {
				return Charset{}, fmt.Errorf("%w: every %s character is excluded", ErrInvalidConfiguration, c)
			}
			cs.Skipped = append(cs.Skipped, c)
			continue
		}
		pool.WriteString(chars)
		cs.required = append(cs.required, categorySet{category: c, chars: chars})
	}

	if pool.Len() == 0 {
		return Charset{}, fmt.Errorf("%w: exclusions remove every available character", ErrInvalidConfiguration)
	}
	cs.Pool = pool.String()

	return cs, nil
}

// RequiredChars draws one character from every non-empty enabled category.
func (cs Charset) RequiredChars(rng SecureRandom) ([]byte, error) {
	out := make([]byte, 0, len(cs.required))
	for _, r := range cs.required {
		ch, err := randChar(rng, r.chars)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

func filterChars(chars string, avoidAmbiguous bool, exclude string) string {
	return strings.Map(func(r rune) rune {
		if avoidAmbiguous && strings.ContainsRune(ambiguousChars, r) {
			return -1
		}
		if strings.ContainsRune(exclude, r) {
			return -1
		}
		return r
	}, chars)
}

// randChar picks a random character from charset.
func randChar(rng SecureRandom, charset string) (byte, error) {
	i, err := rng.UniformIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}
