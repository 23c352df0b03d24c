package match

import (
	"regexp"
	"strings"
)

// Key holds the two normalized forms of a filename. Loose keeps word
// boundaries as single spaces and is used for exact comparison; Tight has
// the separators removed and is used for substring containment.
type Key struct {
	Loose string
	Tight string
}

// DefaultNoiseTokens are release-name fragments that carry no identity:
// resolution, codec, source and cut tags. Stripping is best effort; a tag
// that survives only weakens a match, it never breaks one.
var DefaultNoiseTokens = []string{
	"480p", "720p", "1080p", "2160p", "4k",
	"x264", "x265", "h264", "h265", "hevc", "xvid", "divx",
	"aac", "ac3", "dts", "10bit",
	"bluray", "brrip", "bdrip", "webrip", "webdl", "web", "dl", "dvdrip", "hdtv",
	"proper", "repack", "extended", "remastered", "uncut", "internal",
}

var separatorRegex = regexp.MustCompile(`[\s\-_.()\[\]]+`)

// mediaExtensions is used to peel a doubled extension such as
// "Episode.mp4.srt", where the subtitle was named after the full video
// filename rather than its stem.
var mediaExtensions = map[string]struct{}{
	".mp4": {}, ".mkv": {}, ".avi": {}, ".m4v": {}, ".mov": {}, ".webm": {}, ".wmv": {},
}

// Normalizer turns raw filenames into comparable keys. It is stateless
// apart from its configured noise-token set and safe for concurrent use.
type Normalizer struct {
	noise map[string]struct{}
}

// NewNormalizer builds a Normalizer with the given noise tokens, or
// DefaultNoiseTokens when none are supplied.
func NewNormalizer(noiseTokens []string) *Normalizer {
	if len(noiseTokens) == 0 {
		noiseTokens = DefaultNoiseTokens
	}
	noise := make(map[string]struct{}, len(noiseTokens))
	for _, t := range noiseTokens {
		noise[strings.ToLower(t)] = struct{}{}
	}
	return &Normalizer{noise: noise}
}

// Normalize produces the canonical keys for one filename. The input may be
// a bare name or a full path; only the base name matters. Deterministic and
// side-effect free.
func (n *Normalizer) Normalize(filename string) Key {
	name := strings.ToLower(baseName(filename))
	name = stripExtension(name)

	tokens := separatorRegex.Split(name, -1)
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, noisy := n.noise[tok]; noisy {
			continue
		}
		kept = append(kept, tok)
	}

	return Key{
		Loose: strings.Join(kept, " "),
		Tight: strings.Join(kept, ""),
	}
}

func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// stripExtension removes the final extension, then a second one when the
// remainder still ends in a media container extension (the ".mp4.srt"
// naming convention).
func stripExtension(name string) string {
	name = trimLastExtension(name)
	if i := strings.LastIndex(name, "."); i >= 0 {
		if _, ok := mediaExtensions[name[i:]]; ok {
			name = name[:i]
		}
	}
	return name
}

func trimLastExtension(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
