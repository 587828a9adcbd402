package model

import "fmt"

type SearchStatus string

const (
	StatusOK         SearchStatus = "ok"
	StatusNoMatch    SearchStatus = "no_match"
	StatusEmptyQuery SearchStatus = "empty_query"
	StatusTooShort   SearchStatus = "too_short"
)

const (
	OriginQuery             = "query"
	OriginInternational00   = "international_00"
	OriginInternationalPlus = "international_plus"
	OriginNationalPrefix    = "national"
)

// SearchKey is one normalized candidate probed against the index.
type SearchKey struct {
	Key    string `json:"key"`
	Origin string `json:"origin"`
	Region string `json:"region,omitempty"`
}

type SearchResult struct {
	Query   string        `json:"query"`
	Digits  string        `json:"digits"`
	Status  SearchStatus  `json:"status"`
	Keys    []SearchKey   `json:"keys,omitempty"`
	Matches []ContactCard `json:"matches"`
	Warning string        `json:"warning,omitempty"`
}

func DuplicateWarning(n int) string {
	return fmt.Sprintf("WARNING: %d different contacts found.", n)
}

func (s SearchStatus) Message() string {
	switch s {
	case StatusEmptyQuery:
		return "Please enter a phone number or part of it."
	case StatusTooShort:
		return "Query is too short, enter more digits."
	case StatusNoMatch:
		return "No contact found for your query."
	default:
		return ""
	}
}
