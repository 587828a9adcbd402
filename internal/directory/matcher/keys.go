package matcher

import (
	"strings"

	"phonechecker/pkg/locale"
	"phonechecker/pkg/model"
	"phonechecker/pkg/sanitizer"
)

// NationalMinDigits is the digit count a leading-zero query must exceed
// before calling codes are substituted for its zero.
const NationalMinDigits = 9

// GenerateSearchKeys expands a raw query into the normalized candidates
// probed against the index. The plain digit form always comes first;
// repeated candidates and candidates shorter than minLen are dropped.
func GenerateSearchKeys(query string, callingCodes []string, minLen int) []model.SearchKey {
	digits := sanitizer.Digits(query)
	keys := []model.SearchKey{{Key: digits, Origin: model.OriginQuery}}

	s := strings.ReplaceAll(strings.TrimSpace(query), sanitizer.TrunkMarker, "")
	if rest, ok := strings.CutPrefix(s, "00"); ok {
		keys = append(keys, model.SearchKey{Key: sanitizer.Digits(rest), Origin: model.OriginInternational00})
	} else if rest, ok := strings.CutPrefix(s, "+"); ok {
		keys = append(keys, model.SearchKey{Key: sanitizer.Digits(rest), Origin: model.OriginInternationalPlus})
	}

	if strings.HasPrefix(digits, "0") && len(digits) > NationalMinDigits {
		national := digits[1:]
		for _, cc := range callingCodes {
			keys = append(keys, model.SearchKey{
				Key:    cc + national,
				Origin: model.OriginNationalPrefix,
				Region: locale.RegionForCallingCode(cc),
			})
		}
	}

	return uniqueKeys(keys, minLen)
}

func uniqueKeys(keys []model.SearchKey, minLen int) []model.SearchKey {
	seen := make(map[string]struct{}, len(keys))
	out := make([]model.SearchKey, 0, len(keys))
	for _, k := range keys {
		if k.Key == "" || len(k.Key) < minLen {
			continue
		}
		if _, ok := seen[k.Key]; ok {
			continue
		}
		seen[k.Key] = struct{}{}
		out = append(out, k)
	}
	return out
}
