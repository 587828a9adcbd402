package model

const (
	VariantEN = "en"
	VariantFR = "fr"
)

// Schema maps column roles to header names for one language variant of the
// CRM export. InfoColumns are ordered: last name, first name, role, company.
type Schema struct {
	Variant         string   `json:"variant" validate:"required,alphanum,max=16"`
	PhoneColumns    []string `json:"phone_columns" validate:"required,min=1,unique,dive,required,header"`
	InfoColumns     []string `json:"info_columns" validate:"required,len=4,unique,dive,required,header"`
	CountryColumns  []string `json:"country_columns" validate:"omitempty,unique,dive,required,header"`
	ReferenceColumn string   `json:"reference_column" validate:"required,header"`
}

const (
	infoLastName = iota
	infoFirstName
	infoRole
	infoCompany
)

func SchemaEN() Schema {
	return Schema{
		Variant:         VariantEN,
		PhoneColumns:    []string{"Phone 1", "Phone 2"},
		InfoColumns:     []string{"Last Name", "First Name", "Role", "Company - Name"},
		CountryColumns:  []string{"Country", "Company - Country"},
		ReferenceColumn: "Internal reference",
	}
}

func SchemaFR() Schema {
	return Schema{
		Variant:         VariantFR,
		PhoneColumns:    []string{"Téléphone 1", "Téléphone 2"},
		InfoColumns:     []string{"Nom", "Prénom", "Fonction", "Société - Nom"},
		CountryColumns:  []string{"Pays", "Société - Pays"},
		ReferenceColumn: "Référence interne",
	}
}

// DefaultSchemas returns the built-in variants; the first one is the fallback.
func DefaultSchemas() []Schema {
	return []Schema{SchemaEN(), SchemaFR()}
}

// ExpectedColumns lists phone, info and reference columns in that order.
// Country columns are informational and not expected.
func (s Schema) ExpectedColumns() []string {
	cols := make([]string, 0, len(s.PhoneColumns)+len(s.InfoColumns)+1)
	cols = append(cols, s.PhoneColumns...)
	cols = append(cols, s.InfoColumns...)
	cols = append(cols, s.ReferenceColumn)
	return cols
}

// Missing returns the expected columns absent from header.
func (s Schema) Missing(header map[string]struct{}) []string {
	var missing []string
	for _, col := range s.ExpectedColumns() {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// UsesInfoColumns reports whether any info column of s appears in header.
func (s Schema) UsesInfoColumns(header map[string]struct{}) bool {
	for _, col := range s.InfoColumns {
		if _, ok := header[col]; ok {
			return true
		}
	}
	return false
}

func (s Schema) info(c *Contact, role int) string {
	if role >= len(s.InfoColumns) {
		return ""
	}
	return c.Fields[s.InfoColumns[role]]
}

func (s Schema) LastName(c *Contact) string  { return s.info(c, infoLastName) }
func (s Schema) FirstName(c *Contact) string { return s.info(c, infoFirstName) }
func (s Schema) Role(c *Contact) string      { return s.info(c, infoRole) }
func (s Schema) Company(c *Contact) string   { return s.info(c, infoCompany) }
