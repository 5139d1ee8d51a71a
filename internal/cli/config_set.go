package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lokeshsukhwal/Dasher/internal/config"
)

var configSetCmd = LeafCommand{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Save(homeDir, cfg); err != nil {
		return err
	}

	stored, _ := cfg.Get(key)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to %s", key, Primary(stored))))
	return nil
}
