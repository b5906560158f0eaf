package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ppmsite",
	Short: "PPM Consultants marketing website",
	Long: `ppmsite serves the PPM Consultants marketing site: the home page hero
carousel, services, about, clients and contact pages. It stores contact
form submissions and page analytics in a local SQLite database and can
export the whole site as static HTML.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".ppmsite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
