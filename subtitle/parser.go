package subtitle

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// timestampRegex accepts both SRT ("00:01:02,345") and VTT ("00:01:02.345")
// endpoint styles, with optional trailing cue settings after the arrow.
var timestampRegex = regexp.MustCompile(
	`^(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})\s*-->\s*(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})`)

var markupRegex = regexp.MustCompile(`<[^>]+>`)

// headerRegex matches VTT preamble blocks: the WEBVTT header, NOTE
// comment blocks, and Kind/Language metadata lines. These carry no cue
// and are discarded without counting as malformed.
var headerRegex = regexp.MustCompile(`^(WEBVTT\b|NOTE\b|Kind:|Language:)`)

// Parse reads timed-text content and returns its cues in file order.
// Malformed blocks are skipped and counted in Stats; Parse fails with a
// *ParseError only when the whole input yields zero cues. Parsing the
// same content twice yields identical output.
func Parse(r io.Reader) ([]Cue, Stats, error) {
	var (
		cues  []Cue
		stats Stats
		block []string
	)

	flush := func() {
		if len(block) == 0 {
			return
		}
		cue, ok := parseBlock(block)
		if !ok {
			if !isHeaderBlock(block) {
				stats.Skipped++
			}
			block = block[:0]
			return
		}
		block = block[:0]
		cue.Index = len(cues)
		cues = append(cues, cue)
		stats.Parsed++
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}
	flush()

	if len(cues) == 0 {
		return nil, stats, &ParseError{Skipped: stats.Skipped}
	}
	return cues, stats, nil
}

// ParseFile opens and parses one subtitle file. I/O failures are returned
// as-is so callers can tell an unreadable file from an unparseable one.
func ParseFile(fs afero.Fs, path string) ([]Cue, Stats, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()

	cues, stats, err := Parse(f)
	if err != nil {
		if perr, ok := err.(*ParseError); ok {
			perr.Path = path
		}
		return nil, stats, err
	}
	return cues, stats, nil
}

// parseBlock extracts one cue from a run of non-blank lines. The block may
// begin with a numeric index line (ignored) or header junk (rejected); the
// first line matching the timestamp shape anchors the cue, and everything
// after it is text.
func parseBlock(lines []string) (Cue, bool) {
	for i, line := range lines {
		m := timestampRegex.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		start := timestampFromParts(m[1], m[2], m[3], m[4])
		end := timestampFromParts(m[5], m[6], m[7], m[8])
		if start > end {
			return Cue{}, false
		}
		text := cleanText(lines[i+1:])
		return Cue{Start: start, End: end, Text: text}, true
	}
	return Cue{}, false
}

func isHeaderBlock(lines []string) bool {
	return len(lines) > 0 && headerRegex.MatchString(strings.TrimSpace(lines[0]))
}

func timestampFromParts(h, m, s, ms string) time.Duration {
	hours, _ := strconv.Atoi(h)
	mins, _ := strconv.Atoi(m)
	secs, _ := strconv.Atoi(s)
	// Two-digit fractions ("00:00:01.50") are still milliseconds-scale.
	for len(ms) < 3 {
		ms += "0"
	}
	millis, _ := strconv.Atoi(ms)

	return time.Duration(hours)*time.Hour +
		time.Duration(mins)*time.Minute +
		time.Duration(secs)*time.Second +
		time.Duration(millis)*time.Millisecond
}

// cleanText joins the text lines of a block with newlines and strips
// HTML-like markup tags, leaving the words untouched.
func cleanText(lines []string) string {
	joined := strings.Join(lines, "\n")
	joined = markupRegex.ReplaceAllString(joined, "")
	return strings.TrimSpace(joined)
}
