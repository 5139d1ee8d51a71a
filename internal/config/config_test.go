package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lokeshsukhwal/Dasher/internal/hours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Set("compare.tolerance_minutes", "5"))
	require.NoError(t, cfg.Set("compare.week_start", "sun"))
	require.NoError(t, cfg.Set("server.addr", "127.0.0.1:9000"))

	require.NoError(t, Save(home, &cfg))
	assert.FileExists(t, filepath.Join(home, ".dasher", "config.toml"))

	loaded, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
	assert.Equal(t, "Sunday", loaded.Compare.WeekStart)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(Dir(home), 0755))
	require.NoError(t, os.WriteFile(Path(home), []byte("[compare]\ntolerance_minutes = 10\n"), 0644))

	cfg, err := Load(home)

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Compare.ToleranceMinutes)
	assert.Equal(t, "Monday", cfg.Compare.WeekStart)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[compare\n"},
		{"tolerance out of range", "[compare]\ntolerance_minutes = 90\n"},
		{"unknown week start", "[compare]\nweek_start = \"someday\"\n"},
		{"unknown level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			require.NoError(t, os.MkdirAll(Dir(home), 0755))
			require.NoError(t, os.WriteFile(Path(home), []byte(tt.content), 0644))

			_, err := Load(home)
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DASHER_ADDR", ":9999")
	t.Setenv("DASHER_LOG_LEVEL", "DEBUG")

	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestSet(t *testing.T) {
	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"compare.tolerance_minutes", "0", false},
		{"compare.tolerance_minutes", "60", false},
		{"compare.tolerance_minutes", "61", true},
		{"compare.tolerance_minutes", "-1", true},
		{"compare.tolerance_minutes", "three", true},
		{"compare.week_start", "Tues", false},
		{"compare.week_start", "Funday", true},
		{"compare.old_format", "free-text", false},
		{"compare.new_format", "yaml", true},
		{"log.level", "warn", false},
		{"log.level", "verbose", true},
		{"nope.key", "x", true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			before := cfg

			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, before, cfg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetNormalizes(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Set("compare.week_start", "thu"))
	require.NoError(t, cfg.Set("compare.old_format", "free"))

	assert.Equal(t, "Thursday", cfg.Compare.WeekStart)
	assert.Equal(t, "freetext", cfg.Compare.OldDialect)
}

func TestGet(t *testing.T) {
	cfg := DefaultConfig()

	for _, key := range Keys {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}

	v, err := cfg.Get("compare.tolerance_minutes")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	_, err = cfg.Get("compare.missing")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestReportOptions(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Set("compare.week_start", "sunday"))
	require.NoError(t, cfg.Set("compare.new_format", "auto"))
	require.NoError(t, cfg.Set("compare.tolerance_minutes", "7"))

	opts := cfg.ReportOptions()

	assert.Equal(t, hours.Sunday, opts.WeekStart)
	assert.Equal(t, hours.Detect, opts.NewDialect)
	assert.Equal(t, hours.Compact, opts.OldDialect)
	assert.Equal(t, 7, opts.ToleranceMinutes)
}
