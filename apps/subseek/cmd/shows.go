package subseek

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jaym/subseek/library"
)

var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "List the shows discovered under the configured media roots",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadConfig()
		cobra.CheckErr(err)

		scanner := library.NewScanner(afero.NewOsFs(), cfg.scannerConfig())
		lib, err := scanner.Scan()
		cobra.CheckErr(err)

		for _, show := range lib.Shows {
			cmd.Printf("%-40s %3d subtitles  %3d videos\n", show.Name, len(show.Subtitles), len(show.Videos))
		}
	},
}

func init() {
	rootCmd.AddCommand(showsCmd)
}
