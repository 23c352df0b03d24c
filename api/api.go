package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/jaym/subseek/index"
	"github.com/jaym/subseek/library"
	"github.com/jaym/subseek/match"
	"github.com/jaym/subseek/player"
)

// ApiHandler exposes the engine over HTTP: list shows, search a show's
// subtitles, and open the player at a hit. It keeps at most one show's
// cue index in memory; searching a different show replaces it. The index
// is single-threaded, so mu serializes every request that touches it.
type ApiHandler struct {
	fs         afero.Fs
	lib        *library.Library
	normalizer *match.Normalizer
	plyr       player.Player
	binary     string

	mu          sync.Mutex
	currentShow string
	current     *index.Index
}

func NewApiHandler(fs afero.Fs, lib *library.Library, normalizer *match.Normalizer, plyr player.Player, binary string) http.Handler {
	mux := http.NewServeMux()

	apiHandler := &ApiHandler{
		fs:         fs,
		lib:        lib,
		normalizer: normalizer,
		plyr:       plyr,
		binary:     binary,
	}

	mux.HandleFunc("/shows", apiHandler.showsHandler)
	mux.HandleFunc("/search/{show}", apiHandler.searchHandler)
	mux.HandleFunc("/open", apiHandler.openHandler)

	return allowCORS(mux)
}

func allowCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		h.ServeHTTP(w, r)
	})
}

type ShowItem struct {
	Name      string `json:"name"`
	Subtitles int    `json:"subtitles"`
	Videos    int    `json:"videos"`
}

func (h *ApiHandler) showsHandler(w http.ResponseWriter, r *http.Request) {
	items := make([]ShowItem, 0, len(h.lib.Shows))
	for _, show := range h.lib.Shows {
		items = append(items, ShowItem{
			Name:      show.Name,
			Subtitles: len(show.Subtitles),
			Videos:    len(show.Videos),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

type SearchResult struct {
	SubtitlePath string `json:"subtitle_path"`
	VideoPath    string `json:"video_path,omitempty"`
	Start        int64  `json:"start"`
	End          int64  `json:"end"`
	Text         string `json:"text"`
}

func (h *ApiHandler) searchHandler(w http.ResponseWriter, r *http.Request) {
	showName := r.PathValue("show")
	query := r.URL.Query().Get("q")

	h.mu.Lock()
	ix, ok := h.indexFor(showName)
	if !ok {
		h.mu.Unlock()
		http.Error(w, "Show not found", http.StatusNotFound)
		return
	}

	hits := ix.Query(query)
	h.mu.Unlock()
	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, SearchResult{
			SubtitlePath: hit.SubtitlePath,
			VideoPath:    hit.VideoPath,
			Start:        hit.Cue.Start.Milliseconds(),
			End:          hit.Cue.End.Milliseconds(),
			Text:         hit.Cue.Text,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

type OpenRequest struct {
	Show         string `json:"show"`
	SubtitlePath string `json:"subtitle_path"`
	SeekMS       int64  `json:"seek_ms"`
}

func (h *ApiHandler) openHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	ix, ok := h.indexFor(req.Show)
	if !ok {
		h.mu.Unlock()
		http.Error(w, "Show not found", http.StatusNotFound)
		return
	}

	videoPath, ok := ix.Video(req.SubtitlePath)
	h.mu.Unlock()
	if !ok {
		http.Error(w, "No matching video for subtitle", http.StatusNotFound)
		return
	}

	err := player.Launch(h.plyr, h.binary, videoPath, time.Duration(req.SeekMS)*time.Millisecond)
	if err != nil {
		http.Error(w, "Failed to launch player", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// indexFor returns the cue index for a show, building it on first use and
// discarding the previous show's index when the selection changes.
// Callers must hold h.mu until they are done with the returned index.
func (h *ApiHandler) indexFor(name string) (*index.Index, bool) {
	if h.current != nil && h.currentShow == name {
		return h.current, true
	}

	show, ok := h.lib.Show(name)
	if !ok {
		return nil, false
	}

	matches := match.Match(show.Subtitles, show.Videos, h.normalizer)
	h.current = index.New(h.fs, show, matches)
	h.currentShow = name
	return h.current, true
}
