package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/jessebraham/camper/internal/format"
)

// Config is the top-level camper configuration.
type Config struct {
	FanID    uint32 `mapstructure:"fan_id" yaml:"fan_id,omitempty"`
	Identity string `mapstructure:"identity" yaml:"identity,omitempty"`
	Library  string `mapstructure:"library" yaml:"library,omitempty"`
	Format   string `mapstructure:"format" yaml:"format,omitempty"`
}

// Valid reports whether the configuration is complete enough to run any
// subcommand other than configure: a positive fan ID, a non-empty identity
// cookie, an existing library directory, and a known audio format.
func (c *Config) Valid() bool {
	if c.FanID == 0 || c.Identity == "" {
		return false
	}
	if info, err := os.Stat(ExpandHome(c.Library)); err != nil || !info.IsDir() {
		return false
	}
	_, err := format.Parse(c.Format)
	return err == nil
}

// String renders the configuration for `camper configure --print`. The
// identity cookie is printed verbatim — it only ever goes to the user's own
// terminal.
func (c *Config) String() string {
	var b strings.Builder
	if c.FanID != 0 {
		fmt.Fprintf(&b, "fan_id:   %d\n", c.FanID)
	}
	if c.Identity != "" {
		fmt.Fprintf(&b, "identity: %s\n", c.Identity)
	}
	if c.Library != "" {
		fmt.Fprintf(&b, "library:  %s\n", c.Library)
	}
	if c.Format != "" {
		fmt.Fprintf(&b, "format:   %s\n", c.Format)
	}
	return b.String()
}
