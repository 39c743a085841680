package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/marquee/config"
)

const popularDoc = `{
	"page": 1, "total_pages": 1, "total_results": 2,
	"results": [
		{"id": 348, "title": "Alien", "release_date": "1979-05-25", "vote_average": 8.1, "genre_ids": [27, 878]},
		{"id": 550, "title": "Fight Club", "release_date": "1999-10-15", "vote_average": 8.4, "genre_ids": [18]}
	]
}`

const configurationDoc = `{
	"images": {
		"base_url": "http://image.tmdb.org/t/p/",
		"secure_base_url": "https://image.tmdb.org/t/p/",
		"backdrop_sizes": ["w300", "original"],
		"logo_sizes": ["w45", "original"],
		"poster_sizes": ["w92", "w185", "original"],
		"profile_sizes": ["w45", "original"],
		"still_sizes": ["w92", "original"]
	},
	"change_keys": ["title"]
}`

func newFakeTMDb(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"status_code": 7, "status_message": "Invalid API key"}`))
			return
		}
		switch r.URL.Path {
		case "/movie/popular":
			_, _ = w.Write([]byte(popularDoc))
		case "/configuration":
			_, _ = w.Write([]byte(configurationDoc))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status_code": 34, "status_message": "The resource you requested could not be found."}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// runCLI executes the root command against the fake service and returns stdout
func runCLI(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "tmdb:\n  api_key: test-key\n  base_url: " + baseURL + "\nlogging:\n  level: error\n  color: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// flag variables outlive a single execution
	filterExpr, preset, page, allPages, searchYear = "", "", 1, false, 0
	changesStart, changesEnd, remove, forceReload = "", "", false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", path}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMoviePopularWithFilter(t *testing.T) {
	srv := newFakeTMDb(t)

	out, err := runCLI(t, srv.URL, "-o", "json", "movie", "popular", "--filter", "Year < 1990")
	require.NoError(t, err)

	var page struct {
		Results []struct {
			ID int64 `json:"id"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(348), page.Results[0].ID)
}

func TestMoviePopularConsole(t *testing.T) {
	srv := newFakeTMDb(t)

	out, err := runCLI(t, srv.URL, "-o", "console", "movie", "popular")
	require.NoError(t, err)
	assert.Contains(t, out, "Movies (2):")
	assert.Contains(t, out, "Alien (1979) [348]")
	assert.Contains(t, out, "Page 1 of 1 (2 results)")
}

func TestImageURLCommand(t *testing.T) {
	srv := newFakeTMDb(t)

	out, err := runCLI(t, srv.URL, "-o", "console", "image-url", "poster", "/abc.jpg", "w92")
	require.NoError(t, err)
	assert.Equal(t, "https://image.tmdb.org/t/p/w92/abc.jpg\n", out)

	_, err = runCLI(t, srv.URL, "-o", "console", "image-url", "poster", "/abc.jpg", "w500")
	assert.Error(t, err)
}

func TestCommandErrors(t *testing.T) {
	srv := newFakeTMDb(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "invalid id", args: []string{"-o", "console", "movie", "abc"}, wantErr: `invalid id "abc"`},
		{name: "not found", args: []string{"-o", "console", "movie", "1"}, wantErr: "NOT_FOUND"},
		{name: "bad output", args: []string{"-o", "csv", "movie", "popular"}, wantErr: "invalid output format"},
		{name: "bad filter", args: []string{"-o", "console", "movie", "popular", "--filter", "Budget >"}, wantErr: "invalid filter"},
		{name: "unknown preset", args: []string{"-o", "console", "movie", "popular", "--preset", "nope"}, wantErr: "filter 'nope' not found"},
		{name: "inverted window", args: []string{"-o", "console", "changes", "movies", "--start", "2024-01-10", "--end", "2024-01-01"}, wantErr: "is before"},
		{name: "account without session", args: []string{"-o", "console", "account"}, wantErr: "session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, srv.URL, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("550")
	require.NoError(t, err)
	assert.Equal(t, int64(550), id)

	for _, arg := range []string{"", "0", "-3", "tt0137523"} {
		_, err := parseID(arg)
		assert.Error(t, err, arg)
	}
}

func TestChangesWindow(t *testing.T) {
	changesStart, changesEnd = "2024-01-01", "2024-01-10"
	t.Cleanup(func() { changesStart, changesEnd = "", "" })

	window, err := changesWindow()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), window.End)

	changesStart = "01/01/2024"
	_, err = changesWindow()
	assert.ErrorContains(t, err, "invalid --start")
}

func TestClientOptions(t *testing.T) {
	adult := false
	opts := clientOptions(config.TMDbConfig{
		BaseURL:             "https://api.themoviedb.org/3",
		Language:            "en-US",
		Timeout:             time.Second,
		RateLimit:           5,
		SubFetchConcurrency: 2,
		ReadToken:           "token",
		SessionID:           "session",
		IncludeAdult:        &adult,
	})
	assert.Len(t, opts, 8)

	assert.Len(t, clientOptions(config.TMDbConfig{}), 5)
}
