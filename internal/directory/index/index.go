package index

import (
	"time"

	"phonechecker/pkg/model"
)

// PhoneIndex maps normalized phone digits to the contacts that declared
// them. Keys iterate in insertion order.
type PhoneIndex struct {
	keys    []string
	entries map[string][]*model.Contact
}

func NewPhoneIndex() *PhoneIndex {
	return &PhoneIndex{
		entries: make(map[string][]*model.Contact),
	}
}

// Add appends c under key. Empty keys are ignored. Callers keep a per-contact
// seen set, so Add does not deduplicate.
func (p *PhoneIndex) Add(key string, c *model.Contact) {
	if key == "" {
		return
	}
	if _, ok := p.entries[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.entries[key] = append(p.entries[key], c)
}

func (p *PhoneIndex) Contacts(key string) []*model.Contact {
	return p.entries[key]
}

// Len is the number of distinct normalized numbers.
func (p *PhoneIndex) Len() int {
	return len(p.keys)
}

func (p *PhoneIndex) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Range calls fn for every key in insertion order until fn returns false.
func (p *PhoneIndex) Range(fn func(key string, contacts []*model.Contact) bool) {
	for _, key := range p.keys {
		if !fn(key, p.entries[key]) {
			return
		}
	}
}

// Directory is the immutable product of one successful load.
type Directory struct {
	ID       string
	Source   string
	Encoding string
	Schema   model.Schema
	Index    *PhoneIndex
	Rows     int
	LoadedAt time.Time
	Warnings []model.HeaderMismatchWarning
}

func (d *Directory) Summary() model.LoadSummary {
	s := model.LoadSummary{
		ID:       d.ID,
		Source:   d.Source,
		Encoding: d.Encoding,
		Variant:  d.Schema.Variant,
		Rows:     d.Rows,
		Numbers:  d.Index.Len(),
		LoadedAt: d.LoadedAt,
	}
	for _, w := range d.Warnings {
		s.MissingColumns = append(s.MissingColumns, w.Missing...)
	}
	return s
}
