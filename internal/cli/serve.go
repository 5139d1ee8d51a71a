package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lokeshsukhwal/Dasher/internal/config"
	"github.com/lokeshsukhwal/Dasher/internal/server"
)

var serveCmd = LeafCommand{
	Use:   "serve",
	Short: "Serve the comparison over HTTP",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "addr", Usage: "listen address (default from config)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr, _ := cmd.Flags().GetString("addr")
		cfg, err := config.Load(homeDir)
		if err != nil {
			return err
		}
		logger, err := server.NewLogger(cfg.Log.Level)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return runServe(ctx, cmd, cfg, addr, logger)
	},
}.Build()

func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config, addr string, logger *zap.Logger) error {
	if addr == "" {
		addr = cfg.Server.Addr
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("listening on %s", Primary(addr))))
	if err := server.New(addr, cfg.ReportOptions(), logger).Run(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
