package model

import (
	"fmt"
	"strings"
)

// Contact is one imported row. Fields holds every info column of the
// schema, trimmed, with missing columns as "".
type Contact struct {
	Reference string            `json:"reference"`
	Fields    map[string]string `json:"fields"`
	Country   string            `json:"country,omitempty"`
	Line      int               `json:"line"`
}

type ContactCard struct {
	Reference string `json:"reference"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone"`
	URL       string `json:"url,omitempty"`
}

// HeaderMismatchWarning is reported when expected columns are absent from
// the header row. The import still proceeds.
type HeaderMismatchWarning struct {
	Missing []string `json:"missing"`
}

func (w HeaderMismatchWarning) Message() string {
	return fmt.Sprintf("CSV missing headers: %s.", strings.Join(w.Missing, ", "))
}
