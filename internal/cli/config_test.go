package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokeshsukhwal/Dasher/internal/config"
)

func bufferedCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	return cmd, stdout
}

// mockConfirm returns a ConfirmFunc that returns a pre-determined answer.
func mockConfirm(answer bool) ConfirmFunc {
	return func(_ string) (bool, error) {
		return answer, nil
	}
}

func TestConfigGetAll(t *testing.T) {
	cmd, stdout := bufferedCmd()

	require.NoError(t, runConfigGet(cmd, t.TempDir(), ""))

	out := stdout.String()
	for _, key := range config.Keys {
		assert.Contains(t, out, key)
	}
	assert.Contains(t, out, "Monday")
}

func TestConfigGetKey(t *testing.T) {
	cmd, stdout := bufferedCmd()

	require.NoError(t, runConfigGet(cmd, t.TempDir(), "compare.tolerance_minutes"))
	assert.Equal(t, "3\n", stdout.String())

	err := runConfigGet(cmd, t.TempDir(), "compare.nope")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigSetPersists(t *testing.T) {
	home := t.TempDir()
	cmd, stdout := bufferedCmd()

	require.NoError(t, runConfigSet(cmd, home, "compare.week_start", "sun"))
	assert.Contains(t, stdout.String(), "compare.week_start set to")
	assert.Contains(t, stdout.String(), "Sunday")

	cfg, err := config.Load(home)
	require.NoError(t, err)
	assert.Equal(t, "Sunday", cfg.Compare.WeekStart)
}

func TestConfigSetInvalid(t *testing.T) {
	home := t.TempDir()
	cmd, _ := bufferedCmd()

	assert.Error(t, runConfigSet(cmd, home, "compare.tolerance_minutes", "120"))
	assert.NoFileExists(t, config.Path(home))
}

func TestConfigReset(t *testing.T) {
	home := t.TempDir()
	cmd, stdout := bufferedCmd()
	require.NoError(t, runConfigSet(cmd, home, "log.level", "debug"))

	require.NoError(t, runConfigReset(cmd, home, AlwaysYes()))

	assert.Contains(t, stdout.String(), "configuration reset to defaults")
	cfg, err := config.Load(home)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *cfg)
}

func TestConfigResetAborted(t *testing.T) {
	home := t.TempDir()
	cmd, _ := bufferedCmd()

	err := runConfigReset(cmd, home, mockConfirm(false))

	assert.EqualError(t, err, "aborted")
	assert.NoFileExists(t, config.Path(home))
}

func TestConfigResetConfirmError(t *testing.T) {
	cmd, _ := bufferedCmd()
	confirm := func(string) (bool, error) { return false, errors.New("interrupted") }

	assert.EqualError(t, runConfigReset(cmd, t.TempDir(), confirm), "interrupted")
}

func TestConfigCommandTree(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"get", "set", "reset"}, names)
}
