package subseek

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jaym/subseek/player"
	"github.com/jaym/subseek/subtitle"
)

var playCmd = &cobra.Command{
	Use:   "play show keyword",
	Short: "Search a show and open the player at a hit",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		hitNum, _ := cmd.Flags().GetInt("hit")

		cfg, err := LoadConfig()
		cobra.CheckErr(err)

		plyr, ok := player.Lookup(cfg.Player.Name)
		if !ok {
			cobra.CheckErr(fmt.Errorf("unknown player %q (known: %v)", cfg.Player.Name, player.Names()))
		}

		ix, err := buildIndex(args[0])
		cobra.CheckErr(err)

		hits := ix.Query(args[1])
		if len(hits) == 0 {
			cmd.Println("no matches")
			return
		}
		if hitNum < 0 || hitNum >= len(hits) {
			cobra.CheckErr(fmt.Errorf("hit %d out of range (0..%d)", hitNum, len(hits)-1))
		}

		hit := hits[hitNum]
		if hit.VideoPath == "" {
			cobra.CheckErr(fmt.Errorf("no matching video file found for %s", filepath.Base(hit.SubtitlePath)))
		}

		err = player.Launch(plyr, cfg.Player.Binary, hit.VideoPath, hit.Seek)
		cobra.CheckErr(err)

		cmd.Printf("opening %s at %s\n", filepath.Base(hit.VideoPath), subtitle.FormatTimestamp(hit.Seek))
	},
}

func init() {
	playCmd.Flags().Int("hit", 0, "which hit to open, as numbered by search output")

	rootCmd.AddCommand(playCmd)
}
