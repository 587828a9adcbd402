package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

const TrunkMarker = "(0)"

var (
	reNonDigits = regexp.MustCompile(`[^0-9]+`)
)

func dropTrunkMarker(s string) string {
	return strings.ReplaceAll(s, TrunkMarker, "")
}

func keepDigits(s string) string {
	return reNonDigits.ReplaceAllString(s, "")
}
