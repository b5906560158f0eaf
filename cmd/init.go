package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppmconsultants/ppmsite/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ppmsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site server and writes a .ppmsite.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Run `ppmsite serve` to start the site on port %d.\n", cfg.Port)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
