package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nigeltao/taopick/internal/picker"
	"github.com/nigeltao/taopick/internal/wsnav"
)

// isolate points HOME at an empty dir and clears the env vars Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"TAOPICK_CONFIG", "MONITORS_LAYOUT", "TAOPICK_MONITORS_LAYOUT", "TAOPICK_DEBUG"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load("")
	require.NoError(t, err)
	require.False(t, c.Debug)
	require.Equal(t, picker.DefaultAlphabet, c.Picker.Alphabet)
	require.Equal(t, picker.DefaultFont, c.Picker.Font)
	require.Equal(t, KeymapEvdev, c.Picker.Keymap)
	require.Equal(t, 50, c.Picker.GrabAttempts)
	require.Equal(t, 10*time.Millisecond, c.Picker.GrabInterval)
	require.Equal(t, uint32(0xff2cc4), c.Picker.Foreground)
	require.Equal(t, uint32(0), c.Picker.Background)
	require.Equal(t, "Mod4-o", c.Keys.QuickFocus)
	require.Equal(t, "Mod4-Mod1-n", c.Keys.WorkspaceNext)
	require.Equal(t, "Mod4-Mod1-p", c.Keys.WorkspacePrev)
	require.Equal(t, "Mod4-l", c.Keys.ScreenNext)
	require.Equal(t, "Mod4-h", c.Keys.ScreenPrev)
	require.Equal(t, wsnav.Forward, c.ScreenDirection())
	require.Equal(t, picker.DefaultStyle, c.Style())
}

func TestLoadHomeFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".config", "taopick", "config.toml"), `
debug = true

[picker]
alphabet = "fdsa"
grab_interval = "25ms"
foreground = 0x00ff00

[keys]
quick_focus = "Mod4-space"

[monitors]
layout = "left"
`)
	c, err := Load("")
	require.NoError(t, err)
	require.True(t, c.Debug)
	require.Equal(t, "fdsa", c.Picker.Alphabet)
	require.Equal(t, 25*time.Millisecond, c.Picker.GrabInterval)
	require.Equal(t, uint32(0x00ff00), c.Picker.Foreground)
	require.Equal(t, "Mod4-space", c.Keys.QuickFocus)
	require.Equal(t, "Mod4-l", c.Keys.ScreenNext)
	require.Equal(t, wsnav.Backward, c.ScreenDirection())
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "taopick.toml")
	writeConfig(t, path, "[picker]\ngrab_attempts = 3\n")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, c.Picker.GrabAttempts)

	t.Setenv("TAOPICK_CONFIG", path)
	c, err = Load("")
	require.NoError(t, err)
	require.Equal(t, 3, c.Picker.GrabAttempts)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want wsnav.Direction
	}{
		{"unset", nil, wsnav.Forward},
		{"left", map[string]string{"MONITORS_LAYOUT": "left"}, wsnav.Backward},
		{"right", map[string]string{"MONITORS_LAYOUT": "right"}, wsnav.Forward},
		{"prefixed wins", map[string]string{"MONITORS_LAYOUT": "right", "TAOPICK_MONITORS_LAYOUT": "left"}, wsnav.Backward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			c, err := Load("")
			require.NoError(t, err)
			require.Equal(t, tt.want, c.ScreenDirection())
		})
	}

	isolate(t)
	t.Setenv("TAOPICK_DEBUG", "true")
	t.Setenv("TAOPICK_PICKER_KEYMAP", "server")
	c, err := Load("")
	require.NoError(t, err)
	require.True(t, c.Debug)
	require.Equal(t, KeymapServer, c.Picker.Keymap)
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"empty alphabet", func(c *Config) { c.Picker.Alphabet = "" }, "empty"},
		{"duplicate", func(c *Config) { c.Picker.Alphabet = "asa" }, "twice"},
		{"unreachable", func(c *Config) { c.Picker.Alphabet = "as;" }, "no key produces"},
		{"server skips key check", func(c *Config) {
			c.Picker.Alphabet = "as;"
			c.Picker.Keymap = KeymapServer
		}, ""},
		{"bad keymap", func(c *Config) { c.Picker.Keymap = "qwerty" }, "picker.keymap"},
		{"no attempts", func(c *Config) { c.Picker.GrabAttempts = 0 }, "grab_attempts"},
		{"negative interval", func(c *Config) { c.Picker.GrabInterval = -time.Second }, "grab_interval"},
		{"bad modifier", func(c *Config) { c.Keys.ScreenNext = "Super-l" }, "keys.screen_next"},
		{"disabled key", func(c *Config) { c.Keys.ScreenNext = "" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckKey(t *testing.T) {
	for _, s := range []string{"", "o", "Mod4-o", "mod4-Mod1-n", "Control-Shift-Return", "Any-F1"} {
		require.NoError(t, CheckKey(s), s)
	}
	for _, s := range []string{"Mod4-", "Hyper-x", "Mod4-Meta-x"} {
		require.Error(t, CheckKey(s), s)
	}
}
