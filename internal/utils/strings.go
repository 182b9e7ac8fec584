package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldPlaceName lowercases a Vietnamese place name, strips diacritics and any
// non-alphanumeric rune so "Đà Lạt" and "da lat" produce the same key.
func FoldPlaceName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	folded, _, err := transform.String(foldTransformer, lowered)
	if err != nil {
		folded = lowered
	}
	folded = strings.ReplaceAll(folded, "đ", "d")

	var b strings.Builder
	for _, r := range folded {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// RouteKey builds the cache/fallback lookup key for an origin-destination pair
func RouteKey(origin, destination string) string {
	return FoldPlaceName(origin) + "_" + FoldPlaceName(destination)
}
