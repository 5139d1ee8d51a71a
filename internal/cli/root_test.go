package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootHasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = cmd.Name()
	}

	assert.Contains(t, names, "compare")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "version")
}

func TestRootUseName(t *testing.T) {
	assert.Equal(t, "dasher", rootCmd.Use)
}
