package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lokeshsukhwal/Dasher/internal/config"
)

var configGetCmd = LeafCommand{
	Use:   "get [key]",
	Short: "Show one or all configuration values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		return runConfigGet(cmd, homeDir, key)
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if key != "" {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, value)
		return nil
	}

	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("Configuration (%s):", Silent(config.Path(homeDir)))))
	for _, k := range config.Keys {
		value, _ := cfg.Get(k)
		_, _ = fmt.Fprintf(w, "  %s = %s\n", k, Primary(value))
	}
	return nil
}
