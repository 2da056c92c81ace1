package location

import "regexp"

// metadataPrefixes are boilerplate markers found in raw transaction strings.
// Stripped during cleanup to isolate the actual address text. Matching is
// case-sensitive because upstream import lowercases descriptive fields.
var metadataPrefixes = []string{
	"miasto :",
	"miasto:",
	"adres :",
	"adres:",
	"lokalizacja :",
	"lokalizacja:",
}

// diacriticRule maps an ASCII-folded Polish token to its proper Unicode form.
type diacriticRule struct {
	ascii    string
	pattern  *regexp.Regexp
	accented string
}

// diacriticLexicon restores Polish diacritics for common city and street
// tokens entered without proper characters. Whole-word, case-insensitive.
var diacriticLexicon = buildLexicon([]asciiPair{
	// Cities
	{"lodz", "łódź"},
	{"krakow", "kraków"},
	{"poznan", "poznań"},
	{"wroclaw", "wrocław"},
	{"gdansk", "gdańsk"},
	{"czestochowa", "częstochowa"},
	{"torun", "toruń"},
	{"bialystok", "białystok"},
	{"rzeszow", "rzeszów"},
	{"piotrkow", "piotrków"},
	{"walbrzych", "wałbrzych"},
	{"wloclawek", "włocławek"},
	{"jelenia gora", "jelenia góra"},
	{"nowy sacz", "nowy sącz"},
	{"zielona gora", "zielona góra"},
	// Street names and common words
	{"kosciuszki", "kościuszki"},
	{"pilsudskiego", "piłsudskiego"},
	{"slowackiego", "słowackiego"},
	{"zeromskiego", "żeromskiego"},
	{"swietokrzyska", "świętokrzyska"},
	{"stanislawa", "stanisława"},
	{"wladyslawa", "władysława"},
	{"jozefa", "józefa"},
	{"legionow", "legionów"},
	{"zwyciestwa", "zwycięstwa"},
	{"polnocna", "północna"},
	{"poludniowa", "południowa"},
	{"krolowej", "królowej"},
	{"powstancow", "powstańców"},
	// Common prefixes
	{"sw.", "św."},
	{"sw ", "św. "},
})

type asciiPair struct {
	ascii    string
	accented string
}

func buildLexicon(pairs []asciiPair) []diacriticRule {
	rules := make([]diacriticRule, len(pairs))
	for i, p := range pairs {
		rules[i] = diacriticRule{
			ascii:    p.ascii,
			pattern:  regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p.ascii) + `\b`),
			accented: p.accented,
		}
	}
	return rules
}

// addressIndicators strongly suggest a fragment contains an address.
// Polish, Spanish and Italian street markers.
var addressIndicators = []string{
	"ul.",
	"al.",
	"pl.",
	"os.",
	"centrum",
	"calle",
	"avenida",
	"avda.",
	"paseo",
	"plaza",
	"via",
	"viale",
	"piazza",
	"corso",
	"strada",
}

// mapsStreetTokens is the extended indicator set used when validating maps
// links. Broader than addressIndicators to reduce false positives in URL
// generation.
var mapsStreetTokens = []string{
	"ul.", "al.", "pl.", "os.", "aleja", "ulica", "plac", "osiedle",
	"street", "st.", "avenue", "ave.", "road", "rd.", "boulevard", "blvd.",
	"lane", "ln.", "drive", "dr.", "calle", "avenida", "avda.", "paseo", "plaza",
	"via", "viale", "piazza", "corso", "strada",
}

// mapsCityKeywords are major city names used to decide whether a location
// string is geocodable.
var mapsCityKeywords = []string{
	// Polish cities
	"warszawa", "kraków", "łódź", "wrocław", "poznań", "gdańsk", "szczecin",
	"bydgoszcz", "lublin", "katowice", "białystok", "gdynia", "częstochowa",
	"radom", "sosnowiec", "toruń", "kielce", "gliwice", "zabrze", "bytom",
	"olsztyn", "bielsko-biała", "rzeszów",
	// Spanish cities
	"madrid", "barcelona", "valencia", "sevilla", "zaragoza", "málaga",
	"murcia", "palma", "bilbao", "alicante", "córdoba", "valladolid",
	"granada", "salamanca", "toledo",
	// Italian cities
	"roma", "milano", "napoli", "torino", "palermo", "genova", "bologna",
	"firenze", "bari", "catania", "venezia", "verona", "messina", "padova",
	"trieste", "brescia", "parma", "modena",
}

// excludeTerms are generic transaction descriptions that must not be treated
// as locations.
var excludeTerms = map[string]struct{}{
	"nan":               {},
	"null":              {},
	"zakup w terminalu": {},
	"pc game purchase":  {},
	"grocery store":     {},
	"groceries":         {},
	"store":             {},
	"shop":              {},
	"market":            {},
}

// Compiled once; package state is immutable after init, safe for concurrent use.
var (
	// Removes "kraj: ..." segments up to the next comma.
	countryFieldRe = regexp.MustCompile(`(?i)\s*kraj\s*:\s*[^,]*`)
	// Normalizes spacing around colons.
	colonSpacingRe = regexp.MustCompile(`\s*:\s*`)
	// Collapses whitespace runs.
	multiSpaceRe = regexp.MustCompile(`\s+`)
	// Collapses duplicate commas.
	doubleCommaRe = regexp.MustCompile(`,\s*,`)
	// Matches "street name 123" shapes.
	wordWordNumberRe = regexp.MustCompile(`[\p{L}\d_]+\s+[\p{L}\d_]+\s+\d+`)
	// Any digit.
	digitRe = regexp.MustCompile(`\d`)
	// Parses "adres: ... miasto: ... kraj: ..." payloads.
	structuredAddressRe = regexp.MustCompile(
		`(?i)adres\s*:\s*(?P<address>.*?)\s*(?:miasto\s*:\s*(?P<city>.*?))?(?:kraj\s*:\s*.*)?$`)
	// Collapses a trailing ": <value> kraj: <code>" suffix in maps links.
	mapsSuffixRe = regexp.MustCompile(`(?i)\s*:\s*([^:]+?)\s+kraj\s*:\s*\w+$`)
	// Splits a structured part on its "lokalizacja:" marker.
	lokalizacjaSplitRe = regexp.MustCompile(`(?i)lokalizacja\s*:\s*`)
	// Splits off a trailing "kraj:" field.
	krajSplitRe = regexp.MustCompile(`(?i)kraj\s*:\s*`)
)
