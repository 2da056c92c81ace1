// Package importer reads bank-statement CSV exports into Transactions.
//
// Statement files from Polish banks arrive in a mix of encodings (cp1250,
// iso-8859-2, UTF-8 with or without BOM), so reading tries an ordered list
// of candidates and takes the first clean decode.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUndecodable reports that no candidate encoding produced a clean decode.
var ErrUndecodable = errors.New("statement not decodable with any candidate encoding")

// candidateEncoding pairs an encoding label with its decoder. A nil decoder
// means plain UTF-8 (no transformation).
type candidateEncoding struct {
	name string
	enc  encoding.Encoding
}

// Encodings commonly used for Polish statement exports, most likely first.
// latin1-family encodings sit last: they rarely fail outright but can decode
// cp1250 bytes into mojibake.
var preferredEncodings = []candidateEncoding{
	{"utf-8", nil},
	{"utf-8-sig", unicode.UTF8BOM},
	{"cp1250", charmap.Windows1250},
	{"iso-8859-2", charmap.ISO8859_2},
	{"cp1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

var latin1Aliases = map[string]bool{
	"iso-8859-1": true,
	"latin1":     true,
	"latin-1":    true,
	"iso_8859_1": true,
}

// ReadStatement reads a statement CSV, trying preferred (if sensible) before
// the default encoding order. Returns the parsed records and the name of the
// encoding that succeeded.
func ReadStatement(path, preferred string) ([][]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading statement %s: %w", path, err)
	}
	return decodeRecords(data, preferred)
}

func decodeRecords(data []byte, preferred string) ([][]string, string, error) {
	var tried []string
	for _, cand := range candidateOrder(preferred) {
		text, ok := decode(data, cand.enc)
		if !ok {
			tried = append(tried, cand.name)
			continue
		}
		records, err := parseCSV(text)
		if err != nil {
			tried = append(tried, cand.name)
			continue
		}
		return records, cand.name, nil
	}
	return nil, "", fmt.Errorf("%w (tried: %s)", ErrUndecodable, strings.Join(tried, ", "))
}

// candidateOrder puts a caller-preferred encoding first unless it is a
// latin1 variant, which is deprioritized to avoid silent mojibake.
func candidateOrder(preferred string) []candidateEncoding {
	normalized := strings.ToLower(strings.ReplaceAll(preferred, "_", "-"))
	if normalized == "" || latin1Aliases[normalized] {
		return preferredEncodings
	}

	order := make([]candidateEncoding, 0, len(preferredEncodings))
	for _, cand := range preferredEncodings {
		if cand.name == normalized {
			order = append([]candidateEncoding{cand}, order...)
			continue
		}
		order = append(order, cand)
	}
	return order
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode applies one candidate encoding. A decode is clean when the result
// is valid UTF-8 with no replacement runes (charmap decoders map undefined
// bytes to U+FFFD instead of erroring).
func decode(data []byte, enc encoding.Encoding) (string, bool) {
	if enc == nil {
		if bytes.HasPrefix(data, utf8BOM) || !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(decoded) || bytes.ContainsRune(decoded, '\uFFFD') {
		return "", false
	}
	return string(decoded), true
}

// parseCSV parses leniently: quoting issues and ragged rows in bank exports
// should not abort the whole import.
func parseCSV(text string) ([][]string, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	return records, nil
}
