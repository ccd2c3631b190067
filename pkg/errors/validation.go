package errors

import (
	"strings"
	"unicode"
)

// MaxHeight bounds build heights accepted from user input. Exhaustive trees
// grow roughly geometrically, so anything beyond this is a typo rather than a
// request.
const MaxHeight = 64

// ValidateHeight validates a tree height for a build or walk.
//
// Validation rules:
//   - Height cannot be negative
//   - Height cannot exceed [MaxHeight]
func ValidateHeight(h int) error {
	if h < 0 {
		return New(ErrCodeInvalidInput, "height cannot be negative, got %d", h)
	}
	if h > MaxHeight {
		return New(ErrCodeInvalidInput, "height too large (max %d), got %d", MaxHeight, h)
	}
	return nil
}

// ValidateBudget validates a prime or composite budget. Negative budgets
// mean "unlimited" and are always valid; others are bounded by [MaxHeight]
// because no branch can use more than its height.
func ValidateBudget(name string, b int) error {
	if b > MaxHeight {
		return New(ErrCodeInvalidInput, "%s budget too large (max %d), got %d", name, MaxHeight, b)
	}
	return nil
}

// ValidateDiagonal validates the diagonal index d of the formula extractor.
// The extractor needs at least one composite per branch, so d >= 2.
func ValidateDiagonal(d int) error {
	if d < 2 {
		return New(ErrCodeInvalidInput, "diagonal index must be at least 2, got %d", d)
	}
	if 2*d-2 > MaxHeight {
		return New(ErrCodeInvalidInput, "diagonal index too large, got %d", d)
	}
	return nil
}

// ValidatePolicy validates a build policy name against the accepted set.
func ValidatePolicy(name string, accepted []string) error {
	for _, a := range accepted {
		if name == a {
			return nil
		}
	}
	return New(ErrCodeInvalidPolicy, "unknown policy %q (want one of %s)", name, strings.Join(accepted, ", "))
}

// ValidateFormat validates an output format name against the accepted set.
func ValidateFormat(name string, accepted []string) error {
	for _, a := range accepted {
		if name == a {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "unknown format %q (want one of %s)", name, strings.Join(accepted, ", "))
}

// ValidatePath validates an output or snapshot file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}
