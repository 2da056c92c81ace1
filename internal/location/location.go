// Package location extracts and normalizes location fragments from raw
// bank-statement description text.
//
// Descriptions arrive as several sub-fields joined with "//", mixing free
// text with colon-delimited metadata blocks ("lokalizacja: adres: ...
// miasto: ... kraj: ..."). Extraction is a priority chain over those parts;
// every function here is total and returns "" when no location is found.
package location

import (
	"strings"
	"unicode/utf8"
)

// Extract derives the most reliable location fragment from a raw
// transaction description.
//
// Priority order:
//  1. structured metadata blocks (lokalizacja: adres: ... miasto: ...)
//  2. dash-separated patterns (DESC - ADDRESS)
//  3. address-like heuristics (street indicators, numbers)
//  4. any remaining meaningful text
//
// Returns a cleaned, diacritic-restored string, or "" if nothing matched.
func Extract(raw string) string {
	parts := splitParts(raw)
	if len(parts) == 0 {
		return ""
	}

	for _, part := range parts {
		if structured := parseStructuredPart(part); structured != "" {
			return finalize(structured)
		}
	}

	for _, part := range parts {
		if candidate := dashCandidate(part); candidate != "" {
			return finalize(candidate)
		}
	}

	for _, part := range parts {
		if looksLikeAddress(part) {
			return finalize(part)
		}
	}

	for _, part := range parts {
		if isExcluded(strings.ToLower(part)) {
			continue
		}
		if utf8.RuneCountInString(part) > 3 {
			return finalize(part)
		}
	}

	return ""
}

// CleanText strips boilerplate markers and standardises separators.
func CleanText(location string) string {
	if location == "" {
		return ""
	}

	// Remove country information.
	cleaned := countryFieldRe.ReplaceAllString(location, "")

	// Strip metadata prefixes like "miasto:", "adres:".
	for _, prefix := range metadataPrefixes {
		cleaned = strings.ReplaceAll(cleaned, prefix, " ")
	}

	cleaned = colonSpacingRe.ReplaceAllString(cleaned, ", ")
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	cleaned = doubleCommaRe.ReplaceAllString(cleaned, ",")
	return strings.Trim(cleaned, " ,")
}

// RestoreDiacritics replaces ASCII-folded Polish tokens with their proper
// Unicode forms, whole-word and case-insensitively.
func RestoreDiacritics(location string) string {
	if location == "" {
		return ""
	}

	restored := location
	for _, rule := range diacriticLexicon {
		restored = rule.pattern.ReplaceAllString(restored, rule.accented)
	}
	return restored
}

// finalize runs the standard cleaning pipeline for a raw candidate.
func finalize(candidate string) string {
	return RestoreDiacritics(CleanText(candidate))
}

// splitParts breaks raw text on "//" and trims each piece, dropping empties.
func splitParts(raw string) []string {
	var parts []string
	for _, piece := range strings.Split(raw, "//") {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// parseStructuredPart handles fragments exposing "lokalizacja" metadata
// blocks. Returns "" when the part carries no such block.
func parseStructuredPart(part string) string {
	lowered := strings.ToLower(part)
	if !strings.Contains(lowered, "lokalizacja") || !strings.Contains(lowered, "adres") {
		return ""
	}

	// Structured metadata may be appended after a human-readable prefix
	// ("SHOP NAME - lokalizacja: ..."); narrow to the last dash fragment
	// when it carries the marker itself.
	candidate := part
	if i := strings.LastIndex(part, " - "); i >= 0 {
		candidate = strings.TrimSpace(part[i+3:])
	}
	working := part
	if strings.Contains(strings.ToLower(candidate), "lokalizacja") {
		working = candidate
	}

	pieces := lokalizacjaSplitRe.Split(working, 2)
	if len(pieces) != 2 {
		return ""
	}
	return addressPayload(pieces[1])
}

// addressPayload extracts the "adres"/"miasto" chunks from a structured
// payload, degrading to weaker splits when the regex finds no "miasto".
func addressPayload(payload string) string {
	if m := structuredAddressRe.FindStringSubmatch(payload); m != nil {
		address := strings.Trim(m[1], " ,")
		city := strings.Trim(m[2], " ,")
		switch {
		case address != "" && city != "":
			return address + ", " + city
		case address != "":
			return address
		default:
			return city
		}
	}

	withoutCountry := strings.Trim(krajSplitRe.Split(payload, 2)[0], " ,")
	if withoutCountry == "" {
		return ""
	}

	if i := strings.LastIndex(withoutCountry, ":"); i >= 0 {
		address := strings.Trim(withoutCountry[:i], " ,")
		city := strings.Trim(withoutCountry[i+1:], " ,")
		if address != "" && city != "" {
			return address + ", " + city
		}
	}

	return withoutCountry
}

// dashCandidate handles patterns like "something - ADDRESS".
func dashCandidate(part string) string {
	i := strings.LastIndex(part, " - ")
	if i < 0 {
		return ""
	}
	if strings.Contains(strings.ToLower(part), "lokalizacja") {
		return ""
	}

	candidate := strings.TrimSpace(part[i+3:])
	if candidate == "" || isExcluded(strings.ToLower(candidate)) {
		return ""
	}
	return candidate
}

// looksLikeAddress decides whether the text resembles an address.
func looksLikeAddress(part string) bool {
	lowered := strings.ToLower(part)
	if isExcluded(lowered) {
		return false
	}

	for _, keyword := range addressIndicators {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}

	if wordWordNumberRe.MatchString(part) {
		return true
	}

	return digitRe.MatchString(part) && utf8.RuneCountInString(part) > 8
}

func isExcluded(lowered string) bool {
	_, ok := excludeTerms[lowered]
	return ok
}
