package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaym/subseek/library"
	"github.com/jaym/subseek/match"
)

type stubPlayer struct{}

func (stubPlayer) Name() string { return "stub" }
func (stubPlayer) Args(video string, seek time.Duration) []string {
	return []string{video}
}
func (stubPlayer) Binaries() []string { return []string{"no-such-player"} }

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	fs := afero.NewMemMapFs()
	srt := "1\n00:00:01,000 --> 00:00:03,000\nHello there\n\n2\n00:00:05,000 --> 00:00:07,000\nGoodbye\n"
	require.NoError(t, afero.WriteFile(fs, "/media/Show One/Subtitles/Show One - 1x01.srt", []byte(srt), 0644))
	require.NoError(t, afero.WriteFile(fs, "/media/Show One/Season 1/Show One - 1x01.mp4", []byte("x"), 0644))

	scanner := library.NewScanner(fs, library.ScannerConfig{Roots: []string{"/media"}})
	lib, err := scanner.Scan()
	require.NoError(t, err)

	return NewApiHandler(fs, lib, match.NewNormalizer(nil), stubPlayer{}, "")
}

func TestShowsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shows", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var items []ShowItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Show One", items[0].Name)
	assert.Equal(t, 1, items[0].Subtitles)
	assert.Equal(t, 1, items[0].Videos)
}

func TestSearchEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/Show%20One?q=hello", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var results []SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Hello there", results[0].Text)
	assert.Equal(t, int64(1000), results[0].Start)
	assert.Equal(t, "/media/Show One/Season 1/Show One - 1x01.mp4", results[0].VideoPath)
}

func TestSearchEmptyQuery(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/Show%20One?q=", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSearchUnknownShow(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/Nope?q=hello", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOpenRejectsGet(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestOpenUnmatchedSubtitle(t *testing.T) {
	h := newTestHandler(t)

	body := `{"show":"Show One","subtitle_path":"/media/Show One/Subtitles/other.srt","seek_ms":1000}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/open", strings.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConcurrentSearchRequests(t *testing.T) {
	fs := afero.NewMemMapFs()
	srt := "1\n00:00:01,000 --> 00:00:03,000\nHello there\n"
	require.NoError(t, afero.WriteFile(fs, "/media/Show One/ep1.srt", []byte(srt), 0644))
	require.NoError(t, afero.WriteFile(fs, "/media/Show Two/ep1.srt", []byte(srt), 0644))

	scanner := library.NewScanner(fs, library.ScannerConfig{Roots: []string{"/media"}})
	lib, err := scanner.Scan()
	require.NoError(t, err)

	h := NewApiHandler(fs, lib, match.NewNormalizer(nil), stubPlayer{}, "")

	// Alternating shows forces the handler to rebuild its cue index
	// while other requests are still querying it.
	shows := []string{"/search/Show%20One?q=hello", "/search/Show%20Two?q=hello"}
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(target string) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}(shows[i%2])
	}
	wg.Wait()
}

func TestCORSHeader(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shows", nil))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
