// Package config loads taopick's settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nigeltao/taopick/internal/picker"
	"github.com/nigeltao/taopick/internal/wsnav"
)

// Config holds application configuration.
type Config struct {
	Debug    bool           `mapstructure:"debug"`
	Picker   PickerConfig   `mapstructure:"picker"`
	Keys     KeysConfig     `mapstructure:"keys"`
	Monitors MonitorsConfig `mapstructure:"monitors"`
}

// PickerConfig holds quick focus settings.
type PickerConfig struct {
	Alphabet     string        `mapstructure:"alphabet"`
	Font         string        `mapstructure:"font"`
	Keymap       string        `mapstructure:"keymap"`
	GrabAttempts int           `mapstructure:"grab_attempts"`
	GrabInterval time.Duration `mapstructure:"grab_interval"`
	Foreground   uint32        `mapstructure:"foreground"`
	Background   uint32        `mapstructure:"background"`
}

// KeysConfig holds the global key bindings, in xgbutil's "Mod4-Mod1-n" form.
type KeysConfig struct {
	QuickFocus    string `mapstructure:"quick_focus"`
	WorkspaceNext string `mapstructure:"workspace_next"`
	WorkspacePrev string `mapstructure:"workspace_prev"`
	ScreenNext    string `mapstructure:"screen_next"`
	ScreenPrev    string `mapstructure:"screen_prev"`
}

// MonitorsConfig describes the physical output arrangement.
type MonitorsConfig struct {
	Layout string `mapstructure:"layout"`
}

const (
	KeymapEvdev  = "evdev"
	KeymapServer = "server"
)

// Load reads configuration from file and env. path, if non-empty, names the
// config file. Otherwise TAOPICK_CONFIG does, falling back to
// ~/.config/taopick/config.toml. Env var overrides use prefix TAOPICK_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("debug", false)
	v.SetDefault("picker.alphabet", picker.DefaultAlphabet)
	v.SetDefault("picker.font", picker.DefaultFont)
	v.SetDefault("picker.keymap", KeymapEvdev)
	v.SetDefault("picker.grab_attempts", picker.DefaultGrabAttempts)
	v.SetDefault("picker.grab_interval", picker.DefaultGrabInterval)
	v.SetDefault("picker.foreground", picker.DefaultStyle.Foreground)
	v.SetDefault("picker.background", picker.DefaultStyle.Background)
	v.SetDefault("keys.quick_focus", "Mod4-o")
	v.SetDefault("keys.workspace_next", "Mod4-Mod1-n")
	v.SetDefault("keys.workspace_prev", "Mod4-Mod1-p")
	v.SetDefault("keys.screen_next", "Mod4-l")
	v.SetDefault("keys.screen_prev", "Mod4-h")
	v.SetDefault("monitors.layout", "")

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("TAOPICK_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "taopick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TAOPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("monitors.layout", "TAOPICK_MONITORS_LAYOUT", "MONITORS_LAYOUT"); err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the settings that would otherwise only fail mid-pick.
func (c Config) Validate() error {
	p := c.Picker
	if p.Alphabet == "" {
		return errors.New("picker.alphabet is empty")
	}
	seen := map[rune]bool{}
	for _, r := range p.Alphabet {
		if seen[r] {
			return fmt.Errorf("picker.alphabet: %q appears twice", r)
		}
		seen[r] = true
	}
	switch p.Keymap {
	case KeymapEvdev:
		// The server keymap is only known once connected.
		if err := picker.EvdevKeymap().Check(p.Alphabet); err != nil {
			return fmt.Errorf("picker.alphabet: %w", err)
		}
	case KeymapServer:
	default:
		return fmt.Errorf("picker.keymap: want %q or %q, got %q", KeymapEvdev, KeymapServer, p.Keymap)
	}
	if p.GrabAttempts < 1 {
		return fmt.Errorf("picker.grab_attempts: want at least 1, got %d", p.GrabAttempts)
	}
	if p.GrabInterval < 0 {
		return fmt.Errorf("picker.grab_interval: negative %v", p.GrabInterval)
	}
	for _, b := range c.Keys.Bindings() {
		if err := CheckKey(b.Key); err != nil {
			return fmt.Errorf("keys.%s: %w", b.Name, err)
		}
	}
	return nil
}

// Style returns the label colours and font.
func (c Config) Style() picker.Style {
	return picker.Style{
		Font:       c.Picker.Font,
		Foreground: c.Picker.Foreground,
		Background: c.Picker.Background,
	}
}

// ScreenDirection is the direction "next screen" moves in.
func (c Config) ScreenDirection() wsnav.Direction {
	return wsnav.ParseDirection(c.Monitors.Layout)
}

// Binding is one named key binding.
type Binding struct {
	Name string
	Key  string
}

// Bindings lists the key bindings in a fixed order.
func (k KeysConfig) Bindings() []Binding {
	return []Binding{
		{"quick_focus", k.QuickFocus},
		{"workspace_next", k.WorkspaceNext},
		{"workspace_prev", k.WorkspacePrev},
		{"screen_next", k.ScreenNext},
		{"screen_prev", k.ScreenPrev},
	}
}

var modifiers = map[string]bool{
	"shift": true, "lock": true, "control": true,
	"mod1": true, "mod2": true, "mod3": true, "mod4": true, "mod5": true,
	"any": true,
}

// CheckKey checks that s is a "Mod-Mod-key" string with known modifiers and
// a single key. An empty string disables the binding. Whether the key exists
// is left to the X server.
func CheckKey(s string) error {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "-")
	key := parts[len(parts)-1]
	if key == "" {
		return fmt.Errorf("%q has no key", s)
	}
	for _, m := range parts[:len(parts)-1] {
		if !modifiers[strings.ToLower(m)] {
			return fmt.Errorf("%q: unknown modifier %q", s, m)
		}
	}
	return nil
}
