package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

const (
	DefaultStandingsURL = "https://www.fotball.no/fotballdata/turnering/hjem/?fiksId=200088&underside=tabell"
	DefaultFixturesURL  = "https://www.fotball.no/fotballdata/turnering/hjem/?fiksId=200088&underside=kamper"
	DefaultClubName     = "Elvebyen FK"
	DefaultOutput       = "data/elvebyen.json"
	DefaultUserAgent    = "Mozilla/5.0"
	DefaultTimezone     = "Europe/Oslo"
	DefaultTimeout      = 30 * time.Second
	// DefaultDebugDir is used when DEBUG_SAVE_HTML is a plain on switch.
	DefaultDebugDir = "debug"
)

type Config struct {
	StandingsURL string `json:"standingsUrl"`
	FixturesURL  string `json:"fixturesUrl"`
	ClubName     string `json:"clubName"`
	Output       string `json:"output"`
	UserAgent    string `json:"userAgent"`
	Timezone     string `json:"timezone"`
	// Timeout is a Go duration string such as "30s".
	Timeout string `json:"timeout"`
	// DebugHTMLDir receives a copy of every fetched page when set.
	DebugHTMLDir string `json:"debugHtmlDir"`
}

func Defaults() Config {
	return Config{
		StandingsURL: DefaultStandingsURL,
		FixturesURL:  DefaultFixturesURL,
		ClubName:     DefaultClubName,
		Output:       DefaultOutput,
		UserAgent:    DefaultUserAgent,
		Timezone:     DefaultTimezone,
		Timeout:      DefaultTimeout.String(),
	}
}

// Load builds the configuration from, in increasing priority: defaults, the
// json5 file at path, its ".local" sibling and the environment. Missing files
// are skipped.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		file, err := ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := mergo.Merge(&cfg, file, mergo.WithOverride); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg, os.Getenv)
	return cfg, nil
}

// ReadFile reads <name>.<ext> and merges <name>.local.<ext> over it.
// os.ErrNotExist is returned when neither exists.
func ReadFile(name string) (Config, error) {
	var out Config
	found := false

	ext := filepath.Ext(name)
	local := strings.TrimSuffix(name, ext) + ".local" + ext

	for _, p := range []string{name, local} {
		b, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return out, err
		}
		var c Config
		if err := json5.Unmarshal(b, &c); err != nil {
			return out, fmt.Errorf("%s: %w", p, err)
		}
		if err := mergo.Merge(&out, c, mergo.WithOverride); err != nil {
			return out, err
		}
		if found {
			slog.Info("merging config with local overrides", "local", p)
		}
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	for key, dst := range map[string]*string{
		"TABELL_URL":      &cfg.StandingsURL,
		"KAMPER_URL":      &cfg.FixturesURL,
		"CLUB_NAME":       &cfg.ClubName,
		"NFF_OUTPUT":      &cfg.Output,
		"NFF_TIMEZONE":    &cfg.Timezone,
		"NFF_TIMEOUT":     &cfg.Timeout,
	} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	if dir := debugDir(getenv("DEBUG_SAVE_HTML")); dir != "" {
		cfg.DebugHTMLDir = dir
	}
}

// debugDir interprets DEBUG_SAVE_HTML: a boolean-looking value switches the
// dump on in DefaultDebugDir, "0"/"false"/"no"/"off" leaves it off, anything
// else is the directory.
func debugDir(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "", "0", "false", "no", "off":
		return ""
	case "1", "true", "yes", "on":
		return DefaultDebugDir
	}
	return v
}

// Location returns the time zone fixture times are given in.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c Config) TimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(c.Timeout)
}

func (c Config) Validate() error {
	var errs []error
	for name, raw := range map[string]string{"standings url": c.StandingsURL, "fixtures url": c.FixturesURL} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s %q is not an http(s) url", name, raw))
		}
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if d, err := c.TimeoutDuration(); err != nil {
		errs = append(errs, fmt.Errorf("timeout: %w", err))
	} else if d <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", d))
	}
	return errors.Join(errs...)
}
