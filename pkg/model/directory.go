package model

import (
	"fmt"
	"time"
)

// LoadSummary describes the directory produced by one successful load.
type LoadSummary struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"`
	Encoding       string    `json:"encoding"`
	Variant        string    `json:"variant"`
	Rows           int       `json:"rows"`
	Numbers        int       `json:"numbers"`
	MissingColumns []string  `json:"missing_columns,omitempty"`
	LoadedAt       time.Time `json:"loaded_at"`
}

func (s LoadSummary) Status() string {
	return fmt.Sprintf("Loaded: %s. %d Numbers.", s.Source, s.Numbers)
}

type DirectoryStatus struct {
	Loaded    bool         `json:"loaded"`
	Directory *LoadSummary `json:"directory,omitempty"`
}
