package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lokeshsukhwal/Dasher/internal/config"
)

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Reset the configuration to the defaults",
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		var confirm ConfirmFunc
		if yes {
			confirm = AlwaysYes()
		} else {
			confirm = NewConfirmFunc()
		}

		return runConfigReset(cmd, homeDir, confirm)
	},
}.Build()

func runConfigReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	confirmed, err := confirm("Reset configuration to defaults?")
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	cfg := config.DefaultConfig()
	if err := config.Save(homeDir, &cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("configuration reset to defaults"))
	return nil
}
