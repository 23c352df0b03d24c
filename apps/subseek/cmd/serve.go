package subseek

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jaym/subseek/api"
	"github.com/jaym/subseek/library"
	"github.com/jaym/subseek/player"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search engine over HTTP",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadConfig()
		cobra.CheckErr(err)

		plyr, ok := player.Lookup(cfg.Player.Name)
		if !ok {
			cobra.CheckErr(fmt.Errorf("unknown player %q (known: %v)", cfg.Player.Name, player.Names()))
		}

		fs := afero.NewOsFs()
		scanner := library.NewScanner(fs, cfg.scannerConfig())
		lib, err := scanner.Scan()
		cobra.CheckErr(err)

		httpHandler := api.NewApiHandler(fs, lib, cfg.normalizer(), plyr, cfg.Player.Binary)

		log.Info().Str("addr", cfg.Server.Listen).Msg("Listening")
		err = http.ListenAndServe(cfg.Server.Listen, httpHandler)
		cobra.CheckErr(err)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
