package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	direrrors "phonechecker/internal/directory/errors"
	"phonechecker/pkg/config"
	apperrors "phonechecker/pkg/errors"
	"phonechecker/pkg/logger"
	"phonechecker/pkg/model"
)

const header = "Phone 1;Phone 2;Last Name;First Name;Role;Company - Name;Internal reference\n"

func testConfig() *config.Config {
	return &config.Config{
		Schemas:                model.DefaultSchemas(),
		MinPartialSearchLength: 3,
		CountryCodes:           []string{"33", "49"},
		ContactURLEnabled:      true,
		ContactURLBase:         "https://ui.boondmanager.com/contacts/",
		ContactURLSuffix:       "/overview",
		Log:                    logger.Discard(),
	}
}

func newService(t *testing.T) DirectoryService {
	t.Helper()
	svc, err := NewFromConfig(testConfig())
	require.NoError(t, err)
	return svc
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok, "expected *AppError, got %T", err)
	return appErr.Code
}

func TestSearch_NoDataLoaded(t *testing.T) {
	svc := newService(t)

	_, err := svc.Search(context.Background(), "0612345678")
	assert.Equal(t, apperrors.CodeNoDataLoaded, appCode(t, err))
	assert.ErrorIs(t, err, direrrors.ErrNoDataLoaded)
	assert.False(t, svc.Loaded())
	assert.Equal(t, model.DirectoryStatus{Loaded: false}, svc.Status(context.Background()))
}

func TestLoadThenSearch(t *testing.T) {
	svc := newService(t)
	path := writeFile(t, "contacts.csv", header+
		"+33 6 12 34 56 78;;Dupont;Jean;CTO;Acme;CCON1\n"+
		"0049 30 1234567;;Müller;Anna;CEO;Beta;CCON2\n")

	summary, err := svc.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "contacts.csv", summary.Source)
	assert.Equal(t, 2, summary.Rows)
	assert.Equal(t, 2, summary.Numbers)
	assert.Equal(t, "Loaded: contacts.csv. 2 Numbers.", summary.Status())

	res, err := svc.Search(context.Background(), "06 12 34 56 78")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "Jean", res.Matches[0].FirstName)
	assert.Equal(t, "https://ui.boondmanager.com/contacts/1/overview", res.Matches[0].URL)

	status := svc.Status(context.Background())
	require.True(t, status.Loaded)
	assert.Equal(t, summary.ID, status.Directory.ID)
}

func TestReloadReplacesIndex(t *testing.T) {
	svc := newService(t)
	first := writeFile(t, "first.csv", header+"0612345678;;Dupont;Jean;;;R1\n")
	second := writeFile(t, "second.csv", header+"0798765432;;Martin;Paul;;;R2\n")

	_, err := svc.Load(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.Load(context.Background(), second)
	require.NoError(t, err)

	res, err := svc.Search(context.Background(), "0612345678")
	require.NoError(t, err)
	assert.Equal(t, model.StatusNoMatch, res.Status, "indexes are never merged")

	res, err = svc.Search(context.Background(), "98765")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "R2", res.Matches[0].Reference)
}

func TestFailedReloadInvalidatesIndex(t *testing.T) {
	svc := newService(t)
	good := writeFile(t, "good.csv", header+"0612345678;;Dupont;Jean;;;R1\n")
	empty := writeFile(t, "empty.csv", "")

	_, err := svc.Load(context.Background(), good)
	require.NoError(t, err)

	_, err = svc.Load(context.Background(), empty)
	assert.Equal(t, apperrors.CodeEmptyFile, appCode(t, err))
	assert.False(t, svc.Loaded())

	_, err = svc.Search(context.Background(), "0612345678")
	assert.Equal(t, apperrors.CodeNoDataLoaded, appCode(t, err))
}

func TestLoadErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode string
	}{
		{
			name:     "empty path",
			path:     func(*testing.T) string { return "" },
			wantCode: apperrors.CodeValidation,
		},
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.csv") },
			wantCode: apperrors.CodeImport,
		},
		{
			name:     "blank header",
			path:     func(t *testing.T) string { return writeFile(t, "blank.csv", ";;\n") },
			wantCode: apperrors.CodeEmptyFile,
		},
		{
			name: "malformed quoting",
			path: func(t *testing.T) string {
				return writeFile(t, "bad.csv", header+"06\"12;;Dupont;Jean;;;R1\n")
			},
			wantCode: apperrors.CodeImport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			_, err := svc.Load(context.Background(), tt.path(t))
			assert.Equal(t, tt.wantCode, appCode(t, err))
		})
	}
}

func TestLoadBytes(t *testing.T) {
	svc := newService(t)

	summary, err := svc.LoadBytes(context.Background(), "upload.csv", []byte(header+"0612345678;;Dupont;Jean;;;R1\n"))
	require.NoError(t, err)
	assert.Equal(t, "upload.csv", summary.Source)
	assert.True(t, svc.Loaded())

	_, err = svc.LoadBytes(context.Background(), "", []byte(header))
	assert.Equal(t, apperrors.CodeInvalidInput, appCode(t, err))
}

func TestLoadIfExists(t *testing.T) {
	svc := newService(t)

	summary, err := svc.LoadIfExists(context.Background(), filepath.Join(t.TempDir(), "contacts.csv"))
	require.NoError(t, err)
	assert.Nil(t, summary)
	assert.False(t, svc.Loaded())

	path := writeFile(t, "contacts.csv", header+"0612345678;;Dupont;Jean;;;R1\n")
	summary, err = svc.LoadIfExists(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Numbers)
}

func TestSearch_Statuses(t *testing.T) {
	svc := newService(t)
	_, err := svc.LoadBytes(context.Background(), "c.csv", []byte(header+"0612345678;;Dupont;Jean;;;R1\n"))
	require.NoError(t, err)

	res, err := svc.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.Equal(t, model.StatusEmptyQuery, res.Status)

	res, err = svc.Search(context.Background(), "06")
	require.NoError(t, err)
	assert.Equal(t, model.StatusTooShort, res.Status)

	res, err = svc.Search(context.Background(), strings.Repeat("1", 65))
	require.NoError(t, err)
	assert.Equal(t, model.StatusNoMatch, res.Status)
}

func TestSearch_LongPastedQuery(t *testing.T) {
	svc := newService(t)
	_, err := svc.LoadBytes(context.Background(), "c.csv", []byte(header+"+33 6 12 34 56 78;;Dupont;Jean;;;R1\n"))
	require.NoError(t, err)

	query := "Numero releve dans la signature du mail de Jean Dupont, service achats, ligne directe : 06 12 34 56 78"
	require.Greater(t, len(query), 64)

	res, err := svc.Search(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "R1", res.Matches[0].Reference)

	res, err = svc.Search(context.Background(), "Tel. portable de Jean: +33 (0)6 12 34 56 78 (bureau Paris, ext 12)")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Status)
}

func TestCancelledContext(t *testing.T) {
	svc := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.LoadBytes(ctx, "c.csv", []byte(header))
	assert.Equal(t, apperrors.CodeTimeout, appCode(t, err))

	_, err = svc.Search(ctx, "0612345678")
	assert.Equal(t, apperrors.CodeTimeout, appCode(t, err))
}

func TestNewFromConfig_InvalidSchemas(t *testing.T) {
	cfg := testConfig()
	cfg.Schemas = []model.Schema{{Variant: "xx"}}

	_, err := NewFromConfig(cfg)
	assert.Equal(t, apperrors.CodeValidation, appCode(t, err))
}

func TestConcurrentSearchDuringReload(t *testing.T) {
	svc := newService(t)
	a := []byte(header + "0612345678;;Dupont;Jean;;;A\n")
	b := []byte(header + "0612345678;;Martin;Paul;;;B\n")
	_, err := svc.LoadBytes(context.Background(), "a.csv", a)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			data := a
			if i%2 == 0 {
				data = b
			}
			_, _ = svc.LoadBytes(context.Background(), "reload.csv", data)
		}(i)
		go func() {
			defer wg.Done()
			res, err := svc.Search(context.Background(), "0612345678")
			if err != nil {
				return
			}
			// Each search sees exactly one complete directory.
			if assert.Len(t, res.Matches, 1) {
				assert.Contains(t, []string{"A", "B"}, res.Matches[0].Reference)
			}
		}()
	}
	wg.Wait()
}

func TestResolveDataPath(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "plain file", path: "contacts.csv", want: filepath.Join(root, "contacts.csv")},
		{name: "nested file", path: "exports/2024/contacts.csv", want: filepath.Join(root, "exports", "2024", "contacts.csv")},
		{name: "dot segments that stay inside", path: "exports/../contacts.csv", want: filepath.Join(root, "contacts.csv")},
		{name: "parent directory", path: "../x.csv", wantErr: true},
		{name: "deep escape", path: "exports/../../../etc/passwd", wantErr: true},
		{name: "absolute path", path: "/etc/passwd", wantErr: true},
		{name: "root itself", path: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDataPath(root, tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, direrrors.ErrOutsideDataDir)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFromDataDir(t *testing.T) {
	cfg := testConfig()
	cfg.DataDir = t.TempDir()
	svc, err := NewFromConfig(cfg)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "contacts.csv"),
		[]byte(header+"0612345678;;Dupont;Jean;;;R1\n"), 0o600))
	outside := writeFile(t, "outside.csv", header+"0698765432;;Martin;Paul;;;R2\n")

	summary, err := svc.LoadFromDataDir(context.Background(), "contacts.csv")
	require.NoError(t, err)
	assert.Equal(t, "contacts.csv", summary.Source)

	for _, path := range []string{outside, "../" + filepath.Base(filepath.Dir(outside)) + "/outside.csv"} {
		_, err = svc.LoadFromDataDir(context.Background(), path)
		assert.Equal(t, apperrors.CodeInvalidInput, appCode(t, err), "path %q", path)
		assert.ErrorIs(t, err, direrrors.ErrOutsideDataDir)
	}
	assert.True(t, svc.Loaded(), "a rejected path leaves the current directory in place")

	_, err = svc.LoadFromDataDir(context.Background(), "")
	assert.Equal(t, apperrors.CodeValidation, appCode(t, err))
}
