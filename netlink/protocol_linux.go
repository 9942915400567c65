package netlink

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// Supported reports whether netlink addresses can be built on this platform.
const Supported = true

// Netlink protocols with a group set type in this package.
const (
	ProtocolRoute     Protocol = unix.NETLINK_ROUTE
	ProtocolNetfilter Protocol = unix.NETLINK_NETFILTER
)

var (
	// ErrUnknownProtocol is returned when parsing a protocol name we don't know.
	ErrUnknownProtocol = errors.New("unknown netlink protocol")
	// ErrUnknownGroup is returned when parsing a multicast group name we don't know.
	ErrUnknownGroup = errors.New("unknown netlink multicast group")

	protocolNames = map[Protocol]string{
		ProtocolRoute:     "route",
		ProtocolNetfilter: "netfilter",
	}
)

func (p Protocol) String() string {
	if name, found := protocolNames[p]; found {
		return name
	}
	return fmt.Sprintf("protocol(%d)", int(p))
}

// ParseProtocol returns the protocol named name ("route", "netfilter").
func ParseProtocol(name string) (Protocol, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range protocolNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
}
