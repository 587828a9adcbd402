package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	direrrors "phonechecker/internal/directory/errors"
	"phonechecker/internal/directory/index"
	"phonechecker/pkg/logger"
	"phonechecker/pkg/model"
	"phonechecker/pkg/sanitizer"
)

const Delimiter = ';'

type Importer struct {
	schemas    []model.Schema
	candidates []Candidate
	log        *logger.Logger
	now        func() time.Time
}

// NewImporter builds an importer over schemas; the first schema is the
// fallback variant. With no schemas the built-in variants are used.
func NewImporter(schemas []model.Schema, log *logger.Logger) *Importer {
	if len(schemas) == 0 {
		schemas = model.DefaultSchemas()
	}
	return &Importer{
		schemas:    schemas,
		candidates: DefaultCandidates,
		log:        log,
		now:        time.Now,
	}
}

func (im *Importer) Load(path string) (*index.Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", direrrors.ErrImport, err)
	}
	return im.LoadBytes(filepath.Base(path), data)
}

func (im *Importer) LoadBytes(source string, data []byte) (*index.Directory, error) {
	text, encodingName, err := Decode(data, im.candidates)
	if err != nil {
		im.log.Warn("Could not determine encoding",
			"source", source,
			"candidates", CandidateNames(im.candidates),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %s: %w", direrrors.ErrEncoding, source, err)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	// CRM exports carry stray quotes in unquoted cells; keep them literally.
	reader.LazyQuotes = true

	header, err := readHeader(reader)
	if err != nil {
		return nil, err
	}

	headerSet := make(map[string]struct{}, len(header))
	columns := make(map[string]int, len(header))
	for i, name := range header {
		headerSet[name] = struct{}{}
		columns[name] = i
	}

	schema := im.detectSchema(headerSet)
	im.log.Debug("Header schema selected", "source", source, "variant", schema.Variant)

	var warnings []model.HeaderMismatchWarning
	if missing := schema.Missing(headerSet); len(missing) > 0 {
		w := model.HeaderMismatchWarning{Missing: missing}
		warnings = append(warnings, w)
		im.log.Warn(w.Message(), "source", source, "variant", schema.Variant)
	}

	idx := index.NewPhoneIndex()
	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			im.log.Error("Failed to load data", "source", source, "error", err)
			return nil, fmt.Errorf("%w: %s: %w", direrrors.ErrImport, source, err)
		}

		line, _ := reader.FieldPos(0)
		row := rowReader{record: record, columns: columns}
		ingestRow(idx, schema, row, line)
		rows++
	}

	dir := &index.Directory{
		ID:       uuid.NewString(),
		Source:   source,
		Encoding: encodingName,
		Schema:   schema,
		Index:    idx,
		Rows:     rows,
		LoadedAt: im.now().UTC(),
		Warnings: warnings,
	}

	im.log.Info("Directory loaded",
		"directory_id", dir.ID,
		"source", source,
		"encoding", encodingName,
		"variant", schema.Variant,
		"rows", rows,
		"numbers", idx.Len(),
	)
	return dir, nil
}

func readHeader(reader *csv.Reader) ([]string, error) {
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, direrrors.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", direrrors.ErrImport, err)
	}

	blank := true
	for i := range header {
		header[i] = sanitizer.TrimAndNormalize(header[i])
		if header[i] != "" {
			blank = false
		}
	}
	if blank {
		return nil, direrrors.ErrEmptyFile
	}
	return header, nil
}

// detectSchema picks the first alternate variant whose info columns appear
// in the header, falling back to the first schema.
func (im *Importer) detectSchema(header map[string]struct{}) model.Schema {
	for _, s := range im.schemas[1:] {
		if s.UsesInfoColumns(header) {
			return s
		}
	}
	return im.schemas[0]
}

type rowReader struct {
	record  []string
	columns map[string]int
}

// get returns the trimmed value of column, or "" when the column is absent
// from the header or the row is short.
func (r rowReader) get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return sanitizer.Cell(r.record[i])
}

func ingestRow(idx *index.PhoneIndex, schema model.Schema, row rowReader, line int) {
	contact := &model.Contact{
		Reference: row.get(schema.ReferenceColumn),
		Fields:    make(map[string]string, len(schema.InfoColumns)),
		Line:      line,
	}
	for _, col := range schema.InfoColumns {
		contact.Fields[col] = row.get(col)
	}
	for _, col := range schema.CountryColumns {
		if v := row.get(col); v != "" {
			contact.Country = v
			break
		}
	}

	seen := make(map[string]struct{}, len(schema.PhoneColumns))
	for _, col := range schema.PhoneColumns {
		key := sanitizer.Digits(row.get(col))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		idx.Add(key, contact)
		seen[key] = struct{}{}
	}
}
