package sanitizer

// SanitizeSlice applies strategy to every value and drops empty results and
// repeats, keeping first-occurrence order.
func SanitizeSlice(values []string, strategy Strategy) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, v := range values {
		s := strategy(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// NormalizeColumns trims header names, collapses inner whitespace and drops
// blanks and repeats.
func NormalizeColumns(columns []string) []string {
	return SanitizeSlice(columns, TrimAndNormalize)
}
