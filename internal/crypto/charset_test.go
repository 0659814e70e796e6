package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// requiredCategories lists the categories that contribute a required character.
func requiredCategories(cs Charset) []Category {
	cats := make([]Category, len(cs.required))
	for i, r := range cs.required {
		cats[i] = r.category
	}
	return cats
}

func requiredAlphabet(cs Charset, c Category) string {
	for _, r := range cs.required {
		if r.category == c {
			return r.chars
		}
	}
	return ""
}

func TestBuildCharsetPool(t *testing.T) {
	tests := []struct {
		name     string
		opts     GenerationOptions
		wantPool string
	}{
		{
			name:     "all categories in stable order",
			opts:     GenerationOptions{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
			wantPool: uppercaseChars + lowercaseChars + numberChars + symbolChars,
		},
		{
			name:     "symbols and digits",
			opts:     GenerationOptions{Symbols: true, Numbers: true},
			wantPool: numberChars + symbolChars,
		},
		{
			name:     "ambiguous characters removed",
			opts:     GenerationOptions{Uppercase: true, Numbers: true, AvoidAmbiguous: true},
			wantPool: "ABCDEFGHJKLMNPQRSTUVWXYZ" + "23456789",
		},
		{
			name:     "custom exclusion",
			opts:     GenerationOptions{Lowercase: true, Exclude: "xyz"},
			wantPool: "abcdefghijklmnopqrstuvw",
		},
		{
			name:     "exclusion ignores characters outside the pool",
			opts:     GenerationOptions{Numbers: true, Exclude: "ab€9"},
			wantPool: "012345678",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := BuildCharset(tt.opts, SkipEmptyCategories)
			if err != nil {
				t.Fatalf("BuildCharset() unexpected error: %v", err)
			}
			if cs.Pool != tt.wantPool {
				t.Errorf("BuildCharset() pool = %q, want %q", cs.Pool, tt.wantPool)
			}
		})
	}
}

func TestBuildCharsetSkipsEmptiedCategory(t *testing.T) {
	opts := GenerationOptions{Uppercase: true, Numbers: true, Exclude: "23456789", AvoidAmbiguous: true}

	cs, err := BuildCharset(opts, SkipEmptyCategories)
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Category{Numbers}, cs.Skipped); diff != "" {
		t.Errorf("Skipped mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Category{Uppercase}, requiredCategories(cs)); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}
	if requiredAlphabet(cs, Numbers) != "" {
		t.Errorf("requiredAlphabet(Numbers) = %q, want empty", requiredAlphabet(cs, Numbers))
	}
}

func TestBuildCharsetRejectsEmptiedCategory(t *testing.T) {
	opts := GenerationOptions{Uppercase: true, Numbers: true, Exclude: numberChars}

	_, err := BuildCharset(opts, RejectEmptyCategories)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("BuildCharset() error = %v, want %v", err, ErrInvalidConfiguration)
	}
	if !strings.Contains(err.Error(), "numbers") {
		t.Errorf("BuildCharset() error %q should name the emptied category", err)
	}
}

func TestBuildCharsetErrors(t *testing.T) {
	tests := []struct {
		name string
		opts GenerationOptions
	}{
		{name: "nothing enabled", opts: GenerationOptions{Exclude: "abc"}},
		{name: "everything excluded", opts: GenerationOptions{Lowercase: true, Exclude: lowercaseChars}},
		{
			name: "ambiguous plus exclusion empties pool",
			opts: GenerationOptions{Numbers: true, AvoidAmbiguous: true, Exclude: "23456789"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCharset(tt.opts, SkipEmptyCategories)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("BuildCharset() error = %v, want %v", err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestRequiredChars(t *testing.T) {
	cs, err := BuildCharset(GenerationOptions{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}, SkipEmptyCategories)
	if err != nil {
		t.Fatalf("BuildCharset() unexpected error: %v", err)
	}

	rng := &sequenceRandom{values: []int{25, 0, 9, 1}}
	got, err := cs.RequiredChars(rng)
	if err != nil {
		t.Fatalf("RequiredChars() unexpected error: %v", err)
	}
	if string(got) != "Za9@" {
		t.Errorf("RequiredChars() = %q, want %q", got, "Za9@")
	}
	if diff := cmp.Diff([]int{26, 26, 10, len(symbolChars)}, rng.bounds); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCategoryPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CategoryPolicy
		wantErr bool
	}{
		{in: "", want: SkipEmptyCategories},
		{in: "skip", want: SkipEmptyCategories},
		{in: " Strict ", want: RejectEmptyCategories},
		{in: "fail", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategoryPolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategoryPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCategoryPolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSecureRandomBounds(t *testing.T) {
	rng := NewSecureRandom()
	for i := 0; i < 200; i++ {
		v, err := rng.UniformIndex(7)
		if err != nil {
			t.Fatalf("UniformIndex() unexpected error: %v", err)
		}
		if v < 0 || v >= 7 {
			t.Fatalf("UniformIndex(7) = %d, out of range", v)
		}
	}
	if _, err := rng.UniformIndex(0); err == nil {
		t.Error("UniformIndex(0) expected error")
	}
}
