package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
)

var envKeys = []string{"TABELL_URL", "KAMPER_URL", "CLUB_NAME", "NFF_OUTPUT", "NFF_TIMEZONE", "NFF_TIMEOUT", "DEBUG_SAVE_HTML"}

func clearEnv(t *testing.T) {
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nff.json5"))
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileAndLocalOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nff.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// json5 allows comments
		clubName: "Nordbyen IL",
		timeout: "10s",
	}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nff.local.json5"), []byte(`{output: "out/nordbyen.json"}`), 0o644))

	clearEnv(t)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Nordbyen IL", cfg.ClubName)
	require.Equal(t, "out/nordbyen.json", cfg.Output)
	require.Equal(t, "10s", cfg.Timeout)
	require.Equal(t, DefaultStandingsURL, cfg.StandingsURL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nff.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{clubName: "Nordbyen IL"}`), 0o644))

	clearEnv(t)
	t.Setenv("CLUB_NAME", "Sørbyen")
	t.Setenv("TABELL_URL", "https://example.com/tabell")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Sørbyen", cfg.ClubName)
	require.Equal(t, "https://example.com/tabell", cfg.StandingsURL)
	require.Equal(t, DefaultFixturesURL, cfg.FixturesURL)
}

func TestLoadDebugSaveHTML(t *testing.T) {
	cases := map[string]string{
		"1":          DefaultDebugDir,
		"true":       DefaultDebugDir,
		"ON":         DefaultDebugDir,
		"0":          "",
		"false":      "",
		"tmp/pages ": "tmp/pages",
	}
	for env, want := range cases {
		clearEnv(t)
		t.Setenv("DEBUG_SAVE_HTML", env)
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, want, cfg.DebugHTMLDir, "DEBUG_SAVE_HTML=%q", env)
	}
}

func TestLoadBadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nff.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{clubName: `), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nff.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.StandingsURL = "ftp://example.com"
	cfg.FixturesURL = ""
	cfg.Timezone = "Mars/Olympus"
	cfg.Timeout = "-1s"
	cfg.Output = " "

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"standings url", "fixtures url", "timezone", "timeout must be positive", "output path"} {
		require.Contains(t, err.Error(), want)
	}
}

func TestLocationAndTimeout(t *testing.T) {
	cfg := Defaults()
	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "Europe/Oslo", loc.String())

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, d)
}
