package subtitle

import (
	"fmt"
	"time"
)

// Cue is one timed subtitle entry. Index is the cue's position in parse
// order; the index number embedded in the file is ignored because files
// that have been edited or merged often carry stale numbering.
type Cue struct {
	Index int           `json:"index"`
	Start time.Duration `json:"start"`
	End   time.Duration `json:"end"`
	Text  string        `json:"text"`
}

// Stats reports how a parse went. Skipped counts cue blocks that were
// dropped because their timestamp line could not be read.
type Stats struct {
	Parsed  int
	Skipped int
}

// ParseError means the input contained no recognizable cues at all.
// Individual malformed blocks never produce a ParseError.
type ParseError struct {
	Path    string
	Skipped int
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("no parseable cues found (%d blocks skipped)", e.Skipped)
	}
	return fmt.Sprintf("%s: no parseable cues found (%d blocks skipped)", e.Path, e.Skipped)
}

// FormatTimestamp renders an elapsed time as HH:MM:SS,mmm, the form
// subtitle files use and the one surfaced in search results.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
