// Package index answers keyword queries over the subtitle cues of one
// show. An Index is scoped to the show it was built for; selecting a
// different show means building a fresh Index and dropping this one, so
// the cue cache never outlives its show.
package index

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/jaym/subseek/library"
	"github.com/jaym/subseek/subtitle"
)

// Hit is one query result. VideoPath is empty when the subtitle file has
// no matched video; the hit is still shown, it just cannot be launched.
type Hit struct {
	SubtitlePath string        `json:"subtitle_path"`
	VideoPath    string        `json:"video_path,omitempty"`
	Cue          subtitle.Cue  `json:"cue"`
	Seek         time.Duration `json:"seek"`
}

// Index lazily parses and caches the cues of one show's subtitle files.
// Nothing is parsed at construction time; a show the user only browses
// costs nothing. Not safe for concurrent use.
type Index struct {
	fs      afero.Fs
	show    library.Show
	videos  map[string]string
	cues    map[string][]subtitle.Cue
	failed  map[string]error
	skipped int
}

// New builds an Index for show. videos is the subtitle-to-video mapping
// produced by match.Match; it may be nil.
func New(fs afero.Fs, show library.Show, videos map[string]string) *Index {
	return &Index{
		fs:     fs,
		show:   show,
		videos: videos,
		cues:   make(map[string][]subtitle.Cue),
		failed: make(map[string]error),
	}
}

// Query returns every cue whose text contains keyword, case-insensitively.
// Hits are ordered by subtitle file in discovery order, then by cue order
// within the file. A blank keyword returns no hits and no error. Files
// that cannot be read or parsed are skipped; see Failures.
func (ix *Index) Query(keyword string) []Hit {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil
	}
	needle := strings.ToLower(keyword)

	var hits []Hit
	for _, path := range ix.show.Subtitles {
		for _, cue := range ix.cuesFor(path) {
			if !strings.Contains(strings.ToLower(cue.Text), needle) {
				continue
			}
			hits = append(hits, Hit{
				SubtitlePath: path,
				VideoPath:    ix.videos[path],
				Cue:          cue,
				Seek:         cue.Start,
			})
		}
	}
	return hits
}

// Video returns the video path matched to a subtitle file, or false when
// the subtitle has no acceptable match.
func (ix *Index) Video(subtitlePath string) (string, bool) {
	v, ok := ix.videos[subtitlePath]
	return v, ok && v != ""
}

// Failures reports the subtitle files that could not be searched, keyed by
// path. A *subtitle.ParseError means the file contents are broken; any
// other error is an I/O problem with the file itself.
func (ix *Index) Failures() map[string]error {
	return ix.failed
}

// SkippedCues reports how many malformed cue blocks were dropped across
// all files parsed so far.
func (ix *Index) SkippedCues() int {
	return ix.skipped
}

func (ix *Index) cuesFor(path string) []subtitle.Cue {
	if cues, ok := ix.cues[path]; ok {
		return cues
	}
	if _, ok := ix.failed[path]; ok {
		return nil
	}

	cues, stats, err := subtitle.ParseFile(ix.fs, path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("skipping subtitle file")
		ix.failed[path] = err
		return nil
	}
	if stats.Skipped > 0 {
		log.Debug().Str("path", path).Int("skipped", stats.Skipped).Msg("dropped malformed cue blocks")
	}
	ix.skipped += stats.Skipped
	ix.cues[path] = cues
	return cues
}
