package cmd

import (
	"github.com/spf13/cobra"
)

const appName = "cfbdump"

// Execute builds and runs the cfbdump root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: appName + " - inspect Compound File Binary (OLE2) containers",
	}

	rootCmd.AddCommand(defineListCommand())
	rootCmd.AddCommand(defineCatCommand())
	rootCmd.AddCommand(defineInfoCommand())

	return rootCmd.Execute()
}
