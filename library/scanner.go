package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultSubtitleExtensions and DefaultVideoExtensions are the extension
// sets used when the config does not override them. Classification is by
// extension only; the scanner never opens the files it lists.
var (
	DefaultSubtitleExtensions = []string{".srt", ".vtt", ".txt"}
	DefaultVideoExtensions    = []string{".mp4", ".mkv", ".avi", ".m4v", ".mov", ".webm", ".wmv"}
)

// ScannerConfig selects the media roots to walk and how files beneath them
// are classified.
type ScannerConfig struct {
	Roots              []string
	SubtitleExtensions []string
	VideoExtensions    []string
}

// Scanner enumerates media roots and groups their files into Shows by
// top-level folder. It holds no state between Scan calls; every call
// re-reads the filesystem.
type Scanner struct {
	fs      afero.Fs
	roots   []string
	subExts map[string]struct{}
	vidExts map[string]struct{}
}

func NewScanner(fs afero.Fs, cfg ScannerConfig) *Scanner {
	subExts := cfg.SubtitleExtensions
	if len(subExts) == 0 {
		subExts = DefaultSubtitleExtensions
	}
	vidExts := cfg.VideoExtensions
	if len(vidExts) == 0 {
		vidExts = DefaultVideoExtensions
	}
	return &Scanner{
		fs:      fs,
		roots:   cfg.Roots,
		subExts: extensionSet(subExts),
		vidExts: extensionSet(vidExts),
	}
}

// Scan walks every configured root and returns the discovered Library.
// A missing root is logged and skipped so one stale preference entry does
// not hide the rest of the collection.
func (s *Scanner) Scan() (*Library, error) {
	groups := make(map[string]*Show)
	var order []string

	for _, root := range s.roots {
		if _, err := s.fs.Stat(root); err != nil {
			log.Warn().Str("root", root).Err(err).Msg("skipping unreadable media root")
			continue
		}
		err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if strings.HasPrefix(info.Name(), ".") && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			ext := strings.ToLower(filepath.Ext(path))
			_, isSub := s.subExts[ext]
			_, isVid := s.vidExts[ext]
			if !isSub && !isVid {
				return nil
			}

			name := showName(root, path)
			show, ok := groups[name]
			if !ok {
				show = &Show{Name: name, Root: root}
				groups[name] = show
				order = append(order, name)
			}
			if isSub {
				show.Subtitles = append(show.Subtitles, path)
			} else {
				show.Videos = append(show.Videos, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
	}

	lib := &Library{}
	sort.Strings(order)
	for _, name := range order {
		show := groups[name]
		if len(show.Subtitles) == 0 {
			log.Debug().Str("show", name).Msg("dropping show with no subtitle files")
			continue
		}
		sort.Strings(show.Subtitles)
		sort.Strings(show.Videos)
		lib.Shows = append(lib.Shows, *show)
	}

	log.Info().Int("shows", len(lib.Shows)).Msg("library scan complete")
	return lib, nil
}

// showName derives the display name: the first path element under the
// root, or the root folder itself for files placed directly in it.
func showName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Base(root)
	}
	rel = filepath.ToSlash(rel)
	if i := strings.Index(rel, "/"); i >= 0 {
		return rel[:i]
	}
	return filepath.Base(root)
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}
	return set
}
