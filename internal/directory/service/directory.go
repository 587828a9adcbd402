package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	direrrors "phonechecker/internal/directory/errors"
	"phonechecker/internal/directory/importer"
	"phonechecker/internal/directory/index"
	"phonechecker/internal/directory/matcher"
	"phonechecker/internal/directory/validator"
	"phonechecker/pkg/config"
	apperrors "phonechecker/pkg/errors"
	"phonechecker/pkg/model"
)

type DirectoryService interface {
	Load(ctx context.Context, path string) (model.LoadSummary, error)
	// LoadFromDataDir loads a path relative to the configured data directory.
	LoadFromDataDir(ctx context.Context, name string) (model.LoadSummary, error)
	LoadBytes(ctx context.Context, name string, data []byte) (model.LoadSummary, error)
	// LoadIfExists loads path when the file exists and returns nil otherwise.
	LoadIfExists(ctx context.Context, path string) (*model.LoadSummary, error)

	Search(ctx context.Context, query string) (model.SearchResult, error)
	Status(ctx context.Context) model.DirectoryStatus
	Loaded() bool
}

type directoryService struct {
	importer  *importer.Importer
	matcher   *matcher.Matcher
	validator *validator.DirectoryValidator
	cfg       *config.Config

	// loadMu serializes loads so swaps happen in call order.
	loadMu sync.Mutex

	mu      sync.RWMutex
	current *index.Directory
}

func NewDirectoryService(
	importer *importer.Importer,
	matcher *matcher.Matcher,
	validator *validator.DirectoryValidator,
	cfg *config.Config,
) DirectoryService {
	return &directoryService{
		importer:  importer,
		matcher:   matcher,
		validator: validator,
		cfg:       cfg,
	}
}

// NewFromConfig validates the configured schemas and wires an importer and
// a matcher from cfg.
func NewFromConfig(cfg *config.Config) (DirectoryService, error) {
	v := validator.NewDirectoryValidator(cfg.Log)
	if err := v.ValidateSchemas(cfg.Schemas); err != nil {
		return nil, apperrors.Validation("Invalid directory schemas", map[string]any{
			"error": err.Error(),
		})
	}

	opts := matcher.Options{
		MinPartialLength: cfg.MinPartialSearchLength,
		CallingCodes:     cfg.CountryCodes,
	}
	if cfg.ContactURLEnabled {
		opts.ContactURL = &matcher.URLDecorator{
			Base:   cfg.ContactURLBase,
			Suffix: cfg.ContactURLSuffix,
		}
	}

	return NewDirectoryService(
		importer.NewImporter(cfg.Schemas, cfg.Log),
		matcher.New(opts),
		v,
		cfg,
	), nil
}

func (s *directoryService) Load(ctx context.Context, path string) (model.LoadSummary, error) {
	if err := s.validator.ValidateLoadRequest(&model.LoadRequest{Path: path}); err != nil {
		return model.LoadSummary{}, apperrors.Validation("Invalid load request", map[string]any{
			"error": err.Error(),
		})
	}
	if err := ctx.Err(); err != nil {
		return model.LoadSummary{}, apperrors.Timeout("Load cancelled")
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	dir, err := s.importer.Load(path)
	return s.swap(path, dir, err)
}

func (s *directoryService) LoadFromDataDir(ctx context.Context, name string) (model.LoadSummary, error) {
	if err := s.validator.ValidateLoadRequest(&model.LoadRequest{Path: name}); err != nil {
		return model.LoadSummary{}, apperrors.Validation("Invalid load request", map[string]any{
			"error": err.Error(),
		})
	}

	path, err := resolveDataPath(s.cfg.DataDir, name)
	if err != nil {
		s.cfg.Log.Warn("Rejected load path",
			"path", name,
			"data_dir", s.cfg.DataDir,
		)
		return model.LoadSummary{}, apperrors.PathNotAllowed(name, err)
	}

	return s.Load(ctx, path)
}

// resolveDataPath joins name onto root, rejecting absolute names and names
// whose cleaned form leaves root.
func resolveDataPath(root, name string) (string, error) {
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", fmt.Errorf("%w: %s", direrrors.ErrOutsideDataDir, name)
	}

	base, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", direrrors.ErrOutsideDataDir, err)
	}
	full := filepath.Join(base, name)

	rel, err := filepath.Rel(base, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", direrrors.ErrOutsideDataDir, name)
	}
	return full, nil
}

func (s *directoryService) LoadBytes(ctx context.Context, name string, data []byte) (model.LoadSummary, error) {
	if name == "" {
		return model.LoadSummary{}, apperrors.InvalidInput("Source name cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return model.LoadSummary{}, apperrors.Timeout("Load cancelled")
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	dir, err := s.importer.LoadBytes(name, data)
	return s.swap(name, dir, err)
}

func (s *directoryService) LoadIfExists(ctx context.Context, path string) (*model.LoadSummary, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s.cfg.Log.Info("Default directory file not found, waiting for a load request",
			"file", path,
		)
		return nil, nil
	}

	summary, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// swap installs dir as the current directory. A failed load clears the
// current directory so searches never run against stale data.
func (s *directoryService) swap(source string, dir *index.Directory, err error) (model.LoadSummary, error) {
	if err != nil {
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()

		s.cfg.Log.Error("Failed to load directory",
			"source", source,
			"error", err,
		)
		return model.LoadSummary{}, mapImportError(source, err)
	}

	s.mu.Lock()
	s.current = dir
	s.mu.Unlock()

	summary := dir.Summary()
	s.cfg.Log.Info("Directory swapped in",
		"id", summary.ID,
		"source", summary.Source,
		"encoding", summary.Encoding,
		"variant", summary.Variant,
		"rows", summary.Rows,
		"numbers", summary.Numbers,
	)
	return summary, nil
}

func mapImportError(source string, err error) error {
	switch {
	case errors.Is(err, direrrors.ErrEncoding):
		return apperrors.EncodingFailed(source, err)
	case errors.Is(err, direrrors.ErrEmptyFile):
		return apperrors.EmptyFile(source, err)
	case errors.Is(err, direrrors.ErrImport):
		return apperrors.ImportFailed(source, err)
	default:
		return apperrors.Internal("Failed to load directory", err)
	}
}

func (s *directoryService) Search(ctx context.Context, query string) (model.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return model.SearchResult{}, apperrors.Timeout("Search cancelled")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return model.SearchResult{}, apperrors.NoDataLoaded(direrrors.ErrNoDataLoaded)
	}

	result := s.matcher.Search(query, s.current.Index, s.current.Schema)

	s.cfg.Log.Debug("Search completed",
		"directory_id", s.current.ID,
		"query", result.Query,
		"status", result.Status,
		"matches", len(result.Matches),
	)
	return result, nil
}

func (s *directoryService) Status(ctx context.Context) model.DirectoryStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return model.DirectoryStatus{Loaded: false}
	}
	summary := s.current.Summary()
	return model.DirectoryStatus{Loaded: true, Directory: &summary}
}

func (s *directoryService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}
