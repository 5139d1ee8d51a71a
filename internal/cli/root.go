package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "dasher",
	Short:         "Compare operating hours and write paste-ready remarks",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln(Error("error: " + err.Error()))
	}
	return err
}
