package subseek

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jaym/subseek/index"
	"github.com/jaym/subseek/library"
	"github.com/jaym/subseek/match"
	"github.com/jaym/subseek/subtitle"
)

var searchCmd = &cobra.Command{
	Use:   "search show keyword",
	Short: "Search a show's subtitles for a keyword",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ix, err := buildIndex(args[0])
		cobra.CheckErr(err)

		hits := ix.Query(args[1])
		printHits(cmd, hits)
		reportFailures(cmd, ix)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// buildIndex scans the library, locates the named show, computes its
// subtitle-to-video mapping and returns a fresh cue index for it.
func buildIndex(showName string) (*index.Index, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	fs := afero.NewOsFs()
	scanner := library.NewScanner(fs, cfg.scannerConfig())
	lib, err := scanner.Scan()
	if err != nil {
		return nil, err
	}

	show, ok := lib.Show(showName)
	if !ok {
		return nil, fmt.Errorf("show %q not found (run 'subseek shows' to list them)", showName)
	}

	matches := match.Match(show.Subtitles, show.Videos, cfg.normalizer())
	return index.New(fs, show, matches), nil
}

func printHits(cmd *cobra.Command, hits []index.Hit) {
	lastFile := ""
	for i, hit := range hits {
		if hit.SubtitlePath != lastFile {
			cmd.Printf("%s\n", filepath.Base(hit.SubtitlePath))
			lastFile = hit.SubtitlePath
		}
		launchable := " "
		if hit.VideoPath == "" {
			launchable = "!"
		}
		text := strings.ReplaceAll(hit.Cue.Text, "\n", " ")
		cmd.Printf("  [%3d]%s %s --> %s  %s\n",
			i,
			launchable,
			subtitle.FormatTimestamp(hit.Cue.Start),
			subtitle.FormatTimestamp(hit.Cue.End),
			text)
	}
	if len(hits) == 0 {
		cmd.Println("no matches")
		return
	}
	cmd.Printf("%d matches ('!' marks hits with no matched video)\n", len(hits))
}

func reportFailures(cmd *cobra.Command, ix *index.Index) {
	for path, err := range ix.Failures() {
		cmd.PrintErrf("warning: skipped %s: %v\n", filepath.Base(path), err)
	}
}
