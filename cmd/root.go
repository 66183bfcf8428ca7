package cmd

import (
	"github.com/spf13/cobra"

	"github.com/khadija-altaf/folio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio server",
	Long: `Folio serves a personal portfolio website: eight pages rendered on the
server, live updates over a websocket, a contact form and per-visitor theme
preferences. The same content can be exported as a static site or browsed
in the terminal.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.ConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
