package importer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Candidate is one text encoding tried during detection.
type Candidate struct {
	Name     string
	Encoding encoding.Encoding
}

// DefaultCandidates are tried in order. The BOM-aware UTF-8 variant comes
// first so a leading BOM never leaks into the first header name.
var DefaultCandidates = []Candidate{
	{Name: "utf-8-sig", Encoding: unicode.UTF8BOM},
	{Name: "iso-8859-15", Encoding: charmap.ISO8859_15},
	{Name: "windows-1250", Encoding: charmap.Windows1250},
}

func CandidateNames(candidates []Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	return names
}

// Decode returns data decoded with the first candidate under which every
// byte is valid, along with that candidate's name.
func Decode(data []byte, candidates []Candidate) (string, string, error) {
	var failures []string
	for _, c := range candidates {
		text, err := decodeStrict(c.Encoding, data)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", c.Name, err))
			continue
		}
		return text, c.Name, nil
	}
	return "", "", fmt.Errorf("tried %s", strings.Join(failures, "; "))
}

// decodeStrict fails instead of substituting U+FFFD. Single-byte code pages
// are checked byte by byte; every other candidate must be valid UTF-8 once
// its BOM is removed.
func decodeStrict(enc encoding.Encoding, data []byte) (string, error) {
	switch cm := enc.(type) {
	case *charmap.Charmap:
		for i, b := range data {
			if cm.DecodeByte(b) == utf8.RuneError {
				return "", fmt.Errorf("undefined byte 0x%02x at offset %d", b, i)
			}
		}
	default:
		if !utf8.Valid(bytes.TrimPrefix(data, utf8BOM)) {
			return "", fmt.Errorf("invalid UTF-8 sequence")
		}
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
