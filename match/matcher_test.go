package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchExact(t *testing.T) {
	subs := []string{"Show1 - 1x01.srt"}
	videos := []string{"Show1 - 1x01.mp4", "Show1 - 1x02.mp4"}

	got := Match(subs, videos, NewNormalizer(nil))

	require.Len(t, got, 1)
	assert.Equal(t, "Show1 - 1x01.mp4", got["Show1 - 1x01.srt"])
}

func TestMatchContainment(t *testing.T) {
	subs := []string{"S01_DISC1_Title1.srt"}
	videos := []string{"S01_DISC1_Title1.mov"}

	got := Match(subs, videos, NewNormalizer(nil))

	require.Len(t, got, 1)
	assert.Equal(t, "S01_DISC1_Title1.mov", got["S01_DISC1_Title1.srt"])
}

func TestMatchContainmentPrefersLargestOverlap(t *testing.T) {
	// The subtitle's tight key is contained in both video keys.
	subs := []string{"Show 1x01.srt"}
	videos := []string{
		"Show 1x01 Extended Fan Edit Directors Commentary.mkv",
		"Show 1x01 v2.mkv",
	}

	got := Match(subs, videos, NewNormalizer(nil))

	require.Len(t, got, 1)
	// Overlap equals the subtitle key length for both, so the tie-break
	// (shortest path) decides.
	assert.Equal(t, "Show 1x01 v2.mkv", got["Show 1x01.srt"])
}

func TestMatchNoDuplicateAssignment(t *testing.T) {
	subs := []string{"a - Show 1x01.srt", "b - Show 1x01.srt"}
	videos := []string{"Show 1x01.mkv"}

	got := Match(subs, videos, NewNormalizer(nil))

	seen := map[string]string{}
	for sub, video := range got {
		if prev, dup := seen[video]; dup {
			t.Fatalf("video %q assigned to both %q and %q", video, prev, sub)
		}
		seen[video] = sub
	}
	// Sorted subtitle order means "a - ..." claims the video first.
	require.Len(t, got, 1)
	assert.Equal(t, "Show 1x01.mkv", got["a - Show 1x01.srt"])
}

func TestMatchUnmatchedSubtitleAbsent(t *testing.T) {
	subs := []string{"Totally Different Name.srt"}
	videos := []string{"Show 1x01.mkv"}

	got := Match(subs, videos, NewNormalizer(nil))
	assert.Empty(t, got)
}

func TestMatchExactTieBreak(t *testing.T) {
	subs := []string{"Show 1x01.srt"}
	videos := []string{
		"b/Show 1x01.mkv",
		"a/Show 1x01.mkv",
	}

	got := Match(subs, videos, NewNormalizer(nil))
	assert.Equal(t, "a/Show 1x01.mkv", got["Show 1x01.srt"])
}

func TestMatchDeterministicAcrossInputOrder(t *testing.T) {
	subsA := []string{"Show 1x02.srt", "Show 1x01.srt"}
	subsB := []string{"Show 1x01.srt", "Show 1x02.srt"}
	videos := []string{"Show 1x01.mkv", "Show 1x02.mkv"}

	n := NewNormalizer(nil)
	assert.Equal(t, Match(subsA, videos, n), Match(subsB, videos, n))
}

func TestMatchEmptyInputs(t *testing.T) {
	n := NewNormalizer(nil)
	assert.Empty(t, Match(nil, []string{"Show 1x01.mkv"}, n))
	assert.Empty(t, Match([]string{"Show 1x01.srt"}, nil, n))
}
