package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steamcollection/internal/catalog"
	"steamcollection/internal/config"
	"steamcollection/internal/discovery"
	"steamcollection/internal/logger"
	"steamcollection/internal/postman"
	"steamcollection/pkg/metadata"
)

func fixture(t *testing.T) []byte {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("..", "discovery", "testdata", "supported_api_list.json"))
	require.NoError(t, err)

	return raw
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Steam.BaseURL = baseURL
	cfg.Output.Path = filepath.Join(t.TempDir(), "steam_api_collection.json")

	return cfg
}

func TestGenerator_Run_EndToEnd(t *testing.T) {
	raw := fixture(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ISteamWebAPIUtil/GetSupportedAPIList/v1/", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		_, _ = w.Write(raw)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)
	gen := NewFromConfig(cfg, logger.Nop())

	result, err := gen.Run(context.Background(), "secret")
	require.NoError(t, err)

	assert.Equal(t, cfg.Output.Path, result.OutputPath)
	assert.Equal(t, 3, result.Folders)
	assert.Equal(t, 5, result.Items)
	assert.Equal(t, metadata.CalculateHash(raw), result.SourceHash)

	written, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Equal(t, result.Bytes, len(written))

	var c postman.Collection
	require.NoError(t, json.Unmarshal(written, &c))

	assert.Equal(t, "ISteamApps", c.Item[0].Name)
	assert.NotContains(t, c.Info.Description, "secret")

	ok, err := metadata.Verify(c.Info.Description, raw)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerator_Run_NonOKWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)

	_, err := NewFromConfig(cfg, nil).Run(context.Background(), "bad")
	require.ErrorIs(t, err, discovery.ErrUnexpectedStatusCode)

	var statusErr *discovery.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageFetch, stageErr.Stage)
	assert.NoFileExists(t, cfg.Output.Path)
}

func TestGenerator_Run_MalformedWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"apilist":{"interfaces":[{"name":"ISteamApps","methods":[{"name":"GetAppList","httpmethod":"GET"}]}]}}`))
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL)

	_, err := NewFromConfig(cfg, nil).Run(context.Background(), "k")
	require.ErrorIs(t, err, catalog.ErrMalformedInput)
	assert.NoFileExists(t, cfg.Output.Path)
}

type stubFetcher struct {
	resp *discovery.Response
	err  error
}

func (s *stubFetcher) Fetch(context.Context, string) (*discovery.Response, error) {
	return s.resp, s.err
}

func (s *stubFetcher) Endpoint() string {
	return "stub://discovery"
}

type failingWriter struct{}

func (failingWriter) Write(any) (int, error) {
	return 0, errors.New("disk full")
}

func (failingWriter) Path() string {
	return "unused.json"
}

func TestGenerator_Run_WriteErrorPropagates(t *testing.T) {
	raw := fixture(t)

	doc, err := discovery.Decode(raw)
	require.NoError(t, err)

	gen := New(&stubFetcher{resp: &discovery.Response{StatusCode: http.StatusOK, Document: doc, Raw: raw}},
		failingWriter{}, catalog.DefaultOptions(), nil)

	_, err = gen.Run(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGenerator_Run_UsesClockForTitle(t *testing.T) {
	raw := fixture(t)

	doc, err := discovery.Decode(raw)
	require.NoError(t, err)

	opts := catalog.DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC) }

	path := filepath.Join(t.TempDir(), "c.json")
	writer := &recordingWriter{path: path}

	gen := New(&stubFetcher{resp: &discovery.Response{Document: doc, Raw: raw}}, writer, opts, nil)

	result, err := gen.Run(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "Steam Web API 12.31.2025", result.Collection.Info.Name)
	assert.Same(t, result.Collection, writer.got)
}

type recordingWriter struct {
	path string
	got  any
}

func (r *recordingWriter) Write(v any) (int, error) {
	r.got = v

	return 0, nil
}

func (r *recordingWriter) Path() string {
	return r.path
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Steam.BaseURL = "http://localhost:8080"
	cfg.Collection.KeyHeader = "X-Key"

	opts := OptionsFromConfig(cfg)

	assert.Equal(t, "http", opts.Protocol)
	assert.Equal(t, "localhost:8080", opts.Host)
	assert.Equal(t, "X-Key", opts.KeyHeader)
	assert.Equal(t, "Steam Web API", opts.NamePrefix)
}
