package location

import (
	"net/url"
	"strings"
)

// mapsSearchPrefix is the base URL for generated map links.
const mapsSearchPrefix = "https://www.google.com/maps/search/"

// MapsLink returns a Google Maps search URL when the text resembles an
// address, or "" otherwise.
//
// Links are only generated for strings that pass the validation gate, so
// generic transaction text ("web payment") never produces a useless map
// search.
func MapsLink(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return ""
	}

	lowered := strings.ToLower(trimmed)
	hasStreetIndicator := containsAny(lowered, mapsStreetTokens)
	hasComma := strings.Contains(trimmed, ",")
	hasNumber := digitRe.MatchString(trimmed)
	hasCity := containsAny(lowered, mapsCityKeywords)

	// Require either a street indicator OR a comma plus number/city.
	if !(hasStreetIndicator || (hasComma && (hasNumber || hasCity))) {
		return ""
	}

	// Remove any leftover metadata prefixes.
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			trimmed = strings.TrimSpace(trimmed[len(prefix):])
			lowered = strings.ToLower(trimmed)
		}
	}

	// Final cleanup pass.
	trimmed = mapsSuffixRe.ReplaceAllString(trimmed, ", ${1}")
	trimmed = colonSpacingRe.ReplaceAllString(trimmed, ", ")
	trimmed = multiSpaceRe.ReplaceAllString(trimmed, " ")
	trimmed = doubleCommaRe.ReplaceAllString(trimmed, ",")
	trimmed = strings.Trim(trimmed, " ,")

	if trimmed == "" {
		return ""
	}

	return mapsSearchPrefix + encodeSearchTerm(trimmed)
}

// encodeSearchTerm percent-encodes a search term for use in a URL path,
// with spaces as %20 rather than '+'.
func encodeSearchTerm(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func containsAny(lowered string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}
