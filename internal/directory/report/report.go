package report

import (
	"fmt"
	"io"
	"strings"

	"phonechecker/pkg/model"
	"phonechecker/pkg/sanitizer"
)

const (
	rule         = "----------------------------------------------------------------------------------------"
	notAvailable = "N/A"
)

// Write renders result as the plain-text report pasted into call notes: an
// optional duplicate warning, a simple list (name and contact link) and a
// detailed list. Non-ok statuses render their message only.
func Write(w io.Writer, result model.SearchResult) error {
	var b strings.Builder

	if result.Status != model.StatusOK {
		b.WriteString(result.Status.Message())
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	if result.Warning != "" {
		fmt.Fprintf(&b, "%s\n\n", result.Warning)
	}

	fmt.Fprintf(&b, "%s\n   SIMPLE LIST\n         Copy-Paste in your notes\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Phone number: %s\n\n", result.Query)
	for _, c := range result.Matches {
		fmt.Fprintf(&b, "- %s\n", orNA(sanitizer.DisplayName(c.FirstName, c.LastName)))
		if c.URL != "" {
			fmt.Fprintf(&b, "%s\n\n", c.URL)
		}
	}

	fmt.Fprintf(&b, "\n%s\n   DETAILED INFORMATION\n%s\n\n", rule, rule)
	for _, c := range result.Matches {
		fmt.Fprintf(&b, "Name: %s\n", orNA(sanitizer.DisplayName(c.FirstName, c.LastName)))
		fmt.Fprintf(&b, "Role: %s\n", orNA(c.Role))
		fmt.Fprintf(&b, "Company: %s\n", orNA(c.Company))
		if c.Country != "" {
			fmt.Fprintf(&b, "Country: %s\n", c.Country)
		}
		fmt.Fprintf(&b, "Phone: %s\n", c.Phone)
		fmt.Fprintf(&b, "Ref: %s\n---\n", orNA(c.Reference))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Status is the one-line outcome shown after a search.
func Status(result model.SearchResult) string {
	switch result.Status {
	case model.StatusOK:
		return fmt.Sprintf("Found %d contact(s).", len(result.Matches))
	case model.StatusNoMatch:
		return "No contact found."
	case model.StatusEmptyQuery:
		return "Empty search query."
	case model.StatusTooShort:
		return "Query too short."
	default:
		return string(result.Status)
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
