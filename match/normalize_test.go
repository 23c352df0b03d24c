package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSeparatorStyles(t *testing.T) {
	n := NewNormalizer(nil)

	variants := []string{
		"Show 1x01.srt",
		"show-1x01.srt",
		"Show_1x01.srt",
		"show.1x01.srt",
		"Show (1x01).srt",
	}

	want := n.Normalize(variants[0])
	for _, v := range variants[1:] {
		got := n.Normalize(v)
		assert.Equal(t, want.Tight, got.Tight, "tight keys differ for %q", v)
		assert.Equal(t, want.Loose, got.Loose, "loose keys differ for %q", v)
	}
}

func TestNormalizeForms(t *testing.T) {
	n := NewNormalizer(nil)

	key := n.Normalize("My Show - S01E02.mkv")
	assert.Equal(t, "my show s01e02", key.Loose)
	assert.Equal(t, "myshows01e02", key.Tight)
}

func TestNormalizeStripsNoiseTokens(t *testing.T) {
	n := NewNormalizer(nil)

	key := n.Normalize("My.Show.S01E02.1080p.BluRay.x264.mkv")
	assert.Equal(t, "my show s01e02", key.Loose)
}

func TestNormalizeCustomNoiseTokens(t *testing.T) {
	n := NewNormalizer([]string{"subsgroup"})

	key := n.Normalize("My Show 1x01 [SubsGroup].srt")
	assert.Equal(t, "my show 1x01", key.Loose)

	// 1080p is not in the custom set, so it survives. A kept tag only
	// weakens the match, it never errors.
	key = n.Normalize("My Show 1x01 1080p.srt")
	assert.Equal(t, "my show 1x01 1080p", key.Loose)
}

func TestNormalizeDoubledExtension(t *testing.T) {
	n := NewNormalizer(nil)

	// Subtitles named after the full video filename.
	withDouble := n.Normalize("Episode One.mp4.srt")
	plain := n.Normalize("Episode One.mp4")
	assert.Equal(t, plain.Tight, withDouble.Tight)
}

func TestNormalizeIgnoresDirectory(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t,
		n.Normalize("Show 1x01.srt"),
		n.Normalize("/media/Some Show/Subtitles/Show 1x01.srt"))
}

func TestNormalizeDeterministic(t *testing.T) {
	n := NewNormalizer(nil)

	a := n.Normalize("Weird..Name--  (Tag)_file.720p.srt")
	b := n.Normalize("Weird..Name--  (Tag)_file.720p.srt")
	assert.Equal(t, a, b)
}
