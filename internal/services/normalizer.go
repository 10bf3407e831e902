package services

import "strings"

// Normalize case-folds text for comparison. Stored content keeps its original
// casing; only comparisons go through here.
func Normalize(text string) string {
	return strings.ToLower(text)
}
