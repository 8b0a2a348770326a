package validator

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// AllNotBlank returns true if every value passes NotBlank.
func AllNotBlank(values []string) bool {
	for _, v := range values {
		if !NotBlank(v) {
			return false
		}
	}
	return true
}

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// Between returns true if min <= value <= max.
func Between(value, min, max float64) bool {
	return value >= min && value <= max
}

// Finite returns true if value is neither NaN nor infinite.
func Finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// Present returns true for a non-nil, non-zero time.
func Present(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

// After returns true if t is present and strictly after ref.
func After(t *time.Time, ref time.Time) bool {
	return Present(t) && t.After(ref)
}
