//go:build linux
// +build linux

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/evilsocket/nlsockaddr/config"
	"github.com/evilsocket/nlsockaddr/log"
	"github.com/evilsocket/nlsockaddr/netlink"
	"github.com/evilsocket/nlsockaddr/sockets"
	"golang.org/x/sys/unix"
)

var (
	configFile = ""
	cfg        = config.Default()
)

func init() {
	flag.StringVar(&configFile, "config", configFile, "TOML configuration file, flags override its options.")
	flag.StringVar(&cfg.Protocol, "protocol", cfg.Protocol, "Netlink protocol: route or netfilter.")
	flag.StringVar(&cfg.Groups, "groups", cfg.Groups, "Comma separated list of multicast groups (link,notify,ipv4,...).")
	flag.BoolVar(&cfg.Bind, "bind", cfg.Bind, "Bind a raw netlink socket to the address.")
	flag.IntVar(&cfg.Listen, "listen", cfg.Listen, "Receive this number of messages from the subscribed groups.")
	flag.IntVar(&cfg.NetNSPid, "netns-pid", cfg.NetNSPid, "Listen in the network namespace of this pid.")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of the standard output.")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logs.")
	flag.Var(uint32Value{&cfg.Pid}, "pid", "Port id of the address, 0 lets the kernel choose it.")
}

type uint32Value struct {
	v *uint32
}

func (u uint32Value) String() string {
	if u.v == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*u.v), 10)
}

func (u uint32Value) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return err
	}
	*u.v = uint32(v)
	return nil
}

// loadConfig reads the configuration file, and applies again the flags
// given on the command line on top of it.
func loadConfig() error {
	if configFile == "" {
		return nil
	}
	given := map[string]string{}
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			given[f.Name] = f.Value.String()
		}
	})

	fileCfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	cfg = fileCfg
	for name, value := range given {
		if err := flag.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

func setupLogging() {
	if cfg.Debug {
		log.SetLogLevel(log.DEBUG)
	} else {
		log.SetLogLevel(log.INFO)
	}
	if cfg.LogFile != "" {
		if err := log.OpenFile(cfg.LogFile); err != nil {
			log.Fatal("%s", err)
		}
	}
}

func run[G netlink.GroupSet](addr netlink.Address[G]) error {
	log.Info("%s", addr)
	log.Raw("%s\n", hex.EncodeToString(addr.Serialize()))

	if cfg.Bind {
		fd, err := sockets.Open(addr.Protocol(), addr)
		if err != nil {
			return err
		}
		defer unix.Close(fd)
		pid, err := sockets.LocalPort(fd)
		if err != nil {
			return err
		}
		log.Important("bound to %s, port id %d", addr.Family(), pid)
	}

	if cfg.Listen > 0 {
		return listen(addr)
	}
	return nil
}

func listen[G netlink.GroupSet](addr netlink.Address[G]) error {
	c, err := sockets.Dial(addr, cfg.NetNSPid)
	if err != nil {
		return err
	}
	defer c.Close()

	log.Info("waiting for %d messages on %s", cfg.Listen, addr.Groups())
	for received := 0; received < cfg.Listen; {
		msgs, err := c.Receive()
		if err != nil {
			return fmt.Errorf("receive: %w", err)
		}
		for _, m := range msgs {
			log.Info("message type %d, %d bytes, from pid %d", m.Header.Type, m.Header.Length, m.Header.PID)
		}
		received += len(msgs)
	}
	return nil
}

func main() {
	flag.Parse()
	if err := loadConfig(); err != nil {
		log.Fatal("%s", err)
	}
	setupLogging()
	defer log.Close()

	proto, err := netlink.ParseProtocol(cfg.Protocol)
	if err != nil {
		log.Fatal("%s", err)
	}

	switch proto {
	case netlink.ProtocolRoute:
		var groups netlink.RouteGroups
		if groups, err = netlink.ParseRouteGroups(cfg.Groups); err == nil {
			err = run(netlink.New(netlink.RouteFamily(), cfg.Pid, groups))
		}
	case netlink.ProtocolNetfilter:
		var groups netlink.NetfilterGroups
		if groups, err = netlink.ParseNetfilterGroups(cfg.Groups); err == nil {
			err = run(netlink.New(netlink.NetfilterFamily(), cfg.Pid, groups))
		}
	}
	if err != nil {
		log.Error("%s", err)
		log.Close()
		os.Exit(1)
	}
}
