package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "nlsockaddr.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
protocol = "netfilter"
groups = "conntrack-new,conntrack-destroy"
pid = 1234
listen = 10
netns_pid = 1
debug = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal("Load error:", err)
	}
	expected := Config{
		Protocol: "netfilter",
		Groups:   "conntrack-new,conntrack-destroy",
		Pid:      1234,
		Listen:   10,
		NetNSPid: 1,
		Debug:    true,
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Error("config mismatch (-want +got):\n", diff)
	}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `pid = 1`))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Protocol != "route" || cfg.Groups != "link" || cfg.Pid != 1 {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := Load(writeConfig(t, `gruops = "link"`))
		if !errors.Is(err, ErrUnknownKeys) {
			t.Error("expected ErrUnknownKeys, got", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected an error")
		}
	})
}
