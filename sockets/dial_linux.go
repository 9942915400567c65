package sockets

import (
	"fmt"

	"github.com/evilsocket/nlsockaddr/log"
	"github.com/evilsocket/nlsockaddr/netlink"
	mdnetlink "github.com/mdlayher/netlink"
	"github.com/vishvananda/netlink/nl"
	"github.com/vishvananda/netns"
)

// Conn is a netlink connection subscribed to the groups of an address.
type Conn struct {
	*mdnetlink.Conn

	ns netns.NsHandle
}

// Dial opens a connection to the protocol of addr, subscribed to its groups.
// If netnsPid is greater than 0, the socket is created in the network
// namespace of that process.
// The port id is always assigned by the kernel.
func Dial[G netlink.GroupSet](addr netlink.Address[G], netnsPid int) (*Conn, error) {
	c := &Conn{ns: netns.None()}
	cfg := &mdnetlink.Config{Groups: uint32(addr.Groups())}

	if netnsPid > 0 {
		ns, err := netns.GetFromPid(netnsPid)
		if err != nil {
			return nil, fmt.Errorf("netns of pid %d: %w", netnsPid, err)
		}
		c.ns = ns
		cfg.NetNS = int(ns)
	}
	if addr.Port() != 0 {
		log.Warning("Dial %s: ignoring pid %d, it'll be assigned by the kernel", addr.Family(), addr.Port())
	}

	conn, err := mdnetlink.Dial(int(addr.Protocol()), cfg)
	if err != nil {
		c.closeNS()
		return nil, fmt.Errorf("dial %s: %w", addr.Family(), err)
	}
	c.Conn = conn
	log.Debug("netlink connection opened: %s", addr)
	return c, nil
}

func (c *Conn) closeNS() {
	if c.ns.IsOpen() {
		c.ns.Close()
	}
}

// Close closes the connection and its namespace handle.
func (c *Conn) Close() error {
	err := c.Conn.Close()
	c.closeNS()
	return err
}

// Subscribe opens a socket of the protocol of addr with the vishvananda/netlink
// helpers, joining one group per flag of the address.
func Subscribe[G netlink.GroupSet](addr netlink.Address[G]) (*nl.NetlinkSocket, error) {
	groups := netlink.GroupNumbers(addr.Groups())
	s, err := nl.Subscribe(int(addr.Protocol()), groups...)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s to %v: %w", addr.Family(), groups, err)
	}
	return s, nil
}
