package cli

import "github.com/spf13/cobra"

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage comparison defaults",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configResetCmd,
	},
}.Build()
