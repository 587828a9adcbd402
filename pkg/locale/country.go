package locale

import (
	"strconv"

	"github.com/nyaruka/phonenumbers"
)

type Country struct {
	Code        string // ISO 3166-1 alpha-2 country code (e.g., "FR", "DE")
	Name        string // Human-readable country name
	CallingCode string // International calling code without "+" (e.g., "33")
}

var (
	Countries = map[string]Country{
		"FR": {Code: "FR", Name: "France", CallingCode: "33"},
		"DE": {Code: "DE", Name: "Germany", CallingCode: "49"},
		"BE": {Code: "BE", Name: "Belgium", CallingCode: "32"},
		"CH": {Code: "CH", Name: "Switzerland", CallingCode: "41"},
		"LU": {Code: "LU", Name: "Luxembourg", CallingCode: "352"},
		"GB": {Code: "GB", Name: "United Kingdom", CallingCode: "44"},
		"ES": {Code: "ES", Name: "Spain", CallingCode: "34"},
		"IT": {Code: "IT", Name: "Italy", CallingCode: "39"},
		"NL": {Code: "NL", Name: "Netherlands", CallingCode: "31"},
	}

	// DefaultCallingCodes are tried in place of a national leading zero.
	DefaultCallingCodes = []string{"33", "49"}
)

// RegionForCallingCode resolves a calling code such as "33" to its main
// region ("FR"). Unknown or malformed codes return phonenumbers.UNKNOWN_REGION.
func RegionForCallingCode(code string) string {
	n, err := strconv.Atoi(code)
	if err != nil || n <= 0 {
		return phonenumbers.UNKNOWN_REGION
	}
	return phonenumbers.GetRegionCodeForCountryCode(n)
}

func IsKnownCallingCode(code string) bool {
	return RegionForCallingCode(code) != phonenumbers.UNKNOWN_REGION
}
