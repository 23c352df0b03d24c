package subseek

import (
	"github.com/spf13/cobra"

	processor "github.com/jaym/subseek/processors"
)

var extractCmd = &cobra.Command{
	Use: "extract",
}

var extractSubs = &cobra.Command{
	Use:   "subs video_file",
	Short: "Extract an embedded subtitle stream to a sidecar .srt",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lang, _ := cmd.Flags().GetString("language")

		cfg, err := LoadConfig()
		cobra.CheckErr(err)
		if lang == "" {
			lang = cfg.Extractor.Language
		}

		p := processor.NewSubtitleExtractor(processor.SubtitleExtractorConfig{Language: lang})
		out, err := p.Run(args[0])
		cobra.CheckErr(err)

		cmd.Println(out)
	},
}

func init() {
	extractSubs.Flags().StringP("language", "l", "", "subtitle stream language tag (default from config)")

	extractCmd.AddCommand(extractSubs)
	rootCmd.AddCommand(extractCmd)
}
