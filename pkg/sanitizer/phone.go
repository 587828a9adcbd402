package sanitizer

var digitsPipeline = Pipeline{
	dropTrunkMarker,
	keepDigits,
}

// Digits returns the normalized digit form of a phone value: the literal
// "(0)" marker is removed first, then every character outside 0-9.
// The same function builds index keys and query keys.
func Digits(phone string) string {
	if phone == "" {
		return ""
	}
	return digitsPipeline.Apply(phone)
}

func NormalizeCallingCodes(codes []string) []string {
	return SanitizeSlice(codes, Digits)
}
