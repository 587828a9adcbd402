package locale

import "strings"

// InferCountryFromDigits returns the country whose calling code prefixes an
// internationally written digit string, or nil. National numbers starting
// with 0 never match.
func InferCountryFromDigits(digits string) *Country {
	if digits == "" || strings.HasPrefix(digits, "0") {
		return nil
	}

	for _, country := range Countries {
		if strings.HasPrefix(digits, country.CallingCode) {
			return &country
		}
	}

	return nil
}
