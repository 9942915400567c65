// Package config holds the nlsockaddr configuration, loaded from a TOML file
// and overridden by command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownKeys is returned when the configuration file has options we don't know.
var ErrUnknownKeys = errors.New("unknown configuration options")

// Config of the tool.
type Config struct {
	// Protocol is the netlink protocol name: "route" or "netfilter".
	Protocol string `toml:"protocol"`
	// Groups is a list of multicast group names, separated by commas.
	Groups string `toml:"groups"`
	// Pid is the port id of the address, 0 lets the kernel choose one.
	Pid uint32 `toml:"pid"`
	// Bind binds a raw socket to the address.
	Bind bool `toml:"bind"`
	// Listen is the number of messages to receive from the subscribed groups.
	Listen int `toml:"listen"`
	// NetNSPid selects the network namespace of this process for Listen.
	NetNSPid int `toml:"netns_pid"`

	LogFile string `toml:"log_file"`
	Debug   bool   `toml:"debug"`
}

// Default returns the configuration used when there's no file.
func Default() Config {
	return Config{
		Protocol: "route",
		Groups:   "link",
	}
}

// Load reads the TOML file path over the default configuration.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("loading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}
	return cfg, nil
}
