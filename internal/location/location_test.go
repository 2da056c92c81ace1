package location

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTextRemovesCountryField(t *testing.T) {
	raw := "lokalizacja: adres: ul. Testowa 12 miasto: Poznan kraj: Polska"
	result := CleanText(raw)

	assert.NotContains(t, strings.ToLower(result), "kraj")
	assert.NotContains(t, strings.ToLower(result), "polska")
}

func TestCleanTextRemovesPrefixes(t *testing.T) {
	result := CleanText("miasto: Warszawa adres: ul. Nowa 5")

	assert.NotContains(t, result, "miasto:")
	assert.NotContains(t, result, "adres:")
	assert.Contains(t, result, "Warszawa")
	assert.Contains(t, result, "ul. Nowa 5")
}

func TestCleanTextNormalizesSpacing(t *testing.T) {
	result := CleanText("ul.   Testowa  :  12 ,, Warszawa")

	assert.NotContains(t, result, "  ")
	assert.NotContains(t, result, ",,")
	assert.Contains(t, strings.ToLower(result), "testowa")
	assert.Contains(t, strings.ToLower(result), "warszawa")
}

func TestCleanTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   ,, "))
}

func TestRestoreDiacritics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"street and city", "ul. kosciuszki 10, lodz", "ul. kościuszki 10, łódź"},
		{"avenue", "al. pilsudskiego, krakow", "al. piłsudskiego, kraków"},
		{"city list", "poznan, wroclaw, gdansk", "poznań, wrocław, gdańsk"},
		{"mixed case", "Lodz", "łódź"},
		{"inside larger words untouched", "krakowskie przedmiescie", "krakowskie przedmiescie"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RestoreDiacritics(tt.input))
		})
	}
}

func TestRestoreDiacriticsWholeLexicon(t *testing.T) {
	for _, rule := range diacriticLexicon {
		if strings.HasSuffix(rule.ascii, ".") || strings.HasSuffix(rule.ascii, " ") {
			// Prefix entries need a following word to anchor the boundary.
			continue
		}
		got := RestoreDiacritics(rule.ascii)
		assert.Equal(t, rule.accented, got, "lexicon entry %q", rule.ascii)
	}
}

func TestRestoreDiacriticsPrefixEntries(t *testing.T) {
	assert.Equal(t, "św. jana", RestoreDiacritics("sw. jana"))
	assert.Equal(t, "św. jana", RestoreDiacritics("sw jana"))
}

func TestFinalizeIdempotent(t *testing.T) {
	inputs := []string{
		"lokalizacja: adres: ul. Testowa 12 miasto: Poznan kraj: Polska",
		"miasto: Lodz adres: ul. Polnocna 1",
		"ul.   Kosciuszki  :  10 ,, Warszawa",
		"Paseo de Gracia 12, Barcelona",
	}
	for _, input := range inputs {
		once := finalize(input)
		assert.Equal(t, once, finalize(once), "input %q", input)
	}
}

func TestExtractStructuredBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			"plain block",
			"lokalizacja: adres: ul. Testowa 12 miasto: Poznan kraj: Polska",
			[]string{"testowa 12", "pozna"},
		},
		{
			"spaces before colons",
			"lokalizacja : adres : ul. Kosciuszki 5 miasto : Krakow kraj : Polska",
			[]string{"kościuszki 5", "krak"},
		},
		{
			"block after generic part",
			"random // lokalizacja: adres: ul. Pilsudskiego 10 miasto: Lodz kraj: Polska",
			[]string{"piłsudskiego 10", "łód"},
		},
		{
			"block behind dash prefix",
			"SHOP XYZ - lokalizacja: adres: ul. Nowa 3 miasto: Gdansk kraj: Polska",
			[]string{"nowa 3", "gda"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := strings.ToLower(Extract(tt.input))
			require.NotEmpty(t, result)
			for _, fragment := range tt.contains {
				assert.Contains(t, result, fragment)
			}
			assert.NotContains(t, result, "kraj")
			assert.NotContains(t, result, "lokalizacja")
		})
	}
}

func TestExtractStructuredBlockWithoutCity(t *testing.T) {
	result := Extract("lokalizacja: adres: ul. Testowa 12")
	assert.Contains(t, strings.ToLower(result), "testowa 12")
}

func TestExtractDashSeparator(t *testing.T) {
	tests := []struct {
		input    string
		contains []string
	}{
		{"TRANSACTION DESC - ul. Slowackiego 8, Warszawa", []string{"słowackiego", "warszawa"}},
		{"PAYMENT INFO - Paseo de Gracia 12, Barcelona", []string{"paseo de gracia", "barcelona"}},
		{"STORE - Via Roma 45, Milano", []string{"via roma", "milano"}},
	}
	for _, tt := range tests {
		result := strings.ToLower(Extract(tt.input))
		for _, fragment := range tt.contains {
			assert.Contains(t, result, fragment, "input %q", tt.input)
		}
	}
}

func TestExtractAddressHeuristics(t *testing.T) {
	// Street indicator.
	assert.Contains(t, strings.ToLower(Extract("ul. Dluga 44")), "dluga 44")
	// "word word digits" shape.
	assert.Contains(t, strings.ToLower(Extract("Main Street 12")), "main street 12")
	// Digits plus length.
	assert.NotEmpty(t, Extract("warehouse 1234567"))
}

func TestExtractGenericFallback(t *testing.T) {
	assert.Equal(t, "some merchant", Extract("some merchant"))
	// Short parts never win the generic tier.
	assert.Equal(t, "", Extract("abc"))
}

func TestExtractPartOrderWithinTier(t *testing.T) {
	// Both parts pass the heuristics tier; the first one wins.
	result := Extract("ul. Pierwsza 1 // ul. Druga 2")
	assert.Contains(t, strings.ToLower(result), "pierwsza 1")

	// A structured block beats an earlier heuristic match.
	result = Extract("ul. Pierwsza 1 // lokalizacja: adres: ul. Druga 2 miasto: Torun")
	assert.Contains(t, strings.ToLower(result), "druga 2")
}

func TestExtractExcludesGenericTerms(t *testing.T) {
	for _, input := range []string{
		"zakup w terminalu",
		"grocery store",
		"shop",
		"nan",
		"null",
	} {
		assert.Equal(t, "", Extract(input), "input %q", input)
	}
}

func TestExtractTotality(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"//",
		"////",
		" - ",
		"lokalizacja:",
		"lokalizacja: adres:",
		"adres: miasto: kraj:",
		strings.Repeat("a//", 50000),
		strings.Repeat("lokalizacja: adres: x miasto: y // ", 1000),
		"\x00\x00\x00",
		"あいうえお",
		string(rune(0x10FFFF)),
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Extract(input) })
		assert.NotPanics(t, func() { MapsLink(Extract(input)) })
	}
}
