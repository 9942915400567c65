//go:build linux
// +build linux

package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/evilsocket/nlsockaddr/config"
)

func TestLoadConfigFlagsOverride(t *testing.T) {
	defer func() {
		cfg = config.Default()
		configFile = ""
	}()

	configFile = filepath.Join(t.TempDir(), "nlsockaddr.toml")
	content := "protocol = \"netfilter\"\ngroups = \"conntrack\"\npid = 10\n"
	if err := os.WriteFile(configFile, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	if err := flag.Set("groups", "conntrack-new"); err != nil {
		t.Fatal(err)
	}

	if err := loadConfig(); err != nil {
		t.Fatal("loadConfig error:", err)
	}
	if cfg.Protocol != "netfilter" || cfg.Pid != 10 {
		t.Errorf("file options not applied: %+v", cfg)
	}
	if cfg.Groups != "conntrack-new" {
		t.Error("command line groups not applied:", cfg.Groups)
	}
}

func TestUint32Value(t *testing.T) {
	var v uint32
	u := uint32Value{&v}
	if err := u.Set("0x10"); err != nil || v != 16 || u.String() != "16" {
		t.Error("unexpected value:", v, err)
	}
	if err := u.Set("4294967296"); err == nil {
		t.Error("expected an out of range error")
	}
}
