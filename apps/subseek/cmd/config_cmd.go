package subseek

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadConfig()
		cobra.CheckErr(err)

		o, _ := json.MarshalIndent(cfg, "", "  ")
		cmd.Println(string(o))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
