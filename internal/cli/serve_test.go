package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lokeshsukhwal/Dasher/internal/config"
)

func TestRunServeStopsOnCancelledContext(t *testing.T) {
	cfg := config.DefaultConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd, stdout := bufferedCmd()
	err := runServe(ctx, cmd, &cfg, "127.0.0.1:0", zap.NewNop())

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "listening on")
}

func TestRunServeBadAddr(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Addr = "256.0.0.1:bad"

	cmd, _ := bufferedCmd()
	err := runServe(context.Background(), cmd, &cfg, "", zap.NewNop())

	assert.ErrorContains(t, err, "serving")
}
