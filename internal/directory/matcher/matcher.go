package matcher

import (
	"strings"

	"phonechecker/internal/directory/index"
	"phonechecker/pkg/locale"
	"phonechecker/pkg/model"
	"phonechecker/pkg/sanitizer"
)

const DefaultMinPartialLength = 3

// URLDecorator builds a CRM contact-page link from a reference identifier.
type URLDecorator struct {
	Base   string
	Suffix string
}

// URL returns Base + digits(reference) + Suffix, or "" when the reference
// holds no digits.
func (d URLDecorator) URL(reference string) string {
	digits := sanitizer.Digits(reference)
	if digits == "" {
		return ""
	}
	return d.Base + digits + d.Suffix
}

type Options struct {
	MinPartialLength int
	CallingCodes     []string
	// ContactURL is nil when links are disabled.
	ContactURL *URLDecorator
}

type Matcher struct {
	opts Options
}

func New(opts Options) *Matcher {
	if opts.MinPartialLength <= 0 {
		opts.MinPartialLength = DefaultMinPartialLength
	}
	if opts.CallingCodes == nil {
		opts.CallingCodes = locale.DefaultCallingCodes
	}
	opts.CallingCodes = sanitizer.NormalizeCallingCodes(opts.CallingCodes)
	return &Matcher{opts: opts}
}

func (m *Matcher) Keys(query string) []model.SearchKey {
	return GenerateSearchKeys(query, m.opts.CallingCodes, m.opts.MinPartialLength)
}

type hit struct {
	contact *model.Contact
	phone   string
}

// Search returns every contact whose stored number contains one of the
// query's candidate keys, one entry per reference identifier. Entries are
// ordered by first encounter in index order. When several contacts share a
// reference, the last one scanned supplies the displayed fields.
func (m *Matcher) Search(query string, idx *index.PhoneIndex, schema model.Schema) model.SearchResult {
	trimmed := strings.TrimSpace(query)
	result := model.SearchResult{
		Query:   trimmed,
		Digits:  sanitizer.Digits(trimmed),
		Matches: []model.ContactCard{},
	}

	if trimmed == "" {
		result.Status = model.StatusEmptyQuery
		return result
	}
	if len(result.Digits) < m.opts.MinPartialLength {
		result.Status = model.StatusTooShort
		return result
	}

	result.Keys = m.Keys(trimmed)

	var order []string
	found := make(map[string]hit)
	idx.Range(func(stored string, contacts []*model.Contact) bool {
		if !containsAny(stored, result.Keys) {
			return true
		}
		for _, c := range contacts {
			if _, ok := found[c.Reference]; !ok {
				order = append(order, c.Reference)
			}
			found[c.Reference] = hit{contact: c, phone: stored}
		}
		return true
	})

	for _, ref := range order {
		result.Matches = append(result.Matches, m.card(schema, found[ref]))
	}

	switch {
	case len(result.Matches) == 0:
		result.Status = model.StatusNoMatch
	case len(result.Matches) > 1:
		result.Status = model.StatusOK
		result.Warning = model.DuplicateWarning(len(result.Matches))
	default:
		result.Status = model.StatusOK
	}
	return result
}

func containsAny(stored string, keys []model.SearchKey) bool {
	for _, k := range keys {
		if strings.Contains(stored, k.Key) {
			return true
		}
	}
	return false
}

func (m *Matcher) card(schema model.Schema, h hit) model.ContactCard {
	card := model.ContactCard{
		Reference: h.contact.Reference,
		FirstName: schema.FirstName(h.contact),
		LastName:  schema.LastName(h.contact),
		Role:      schema.Role(h.contact),
		Company:   schema.Company(h.contact),
		Country:   h.contact.Country,
		Phone:     h.phone,
	}
	if card.Country == "" {
		if country := locale.InferCountryFromDigits(h.phone); country != nil {
			card.Country = country.Name
		}
	}
	if m.opts.ContactURL != nil {
		card.URL = m.opts.ContactURL.URL(h.contact.Reference)
	}
	return card
}
