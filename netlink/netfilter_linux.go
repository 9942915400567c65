package netlink

import "golang.org/x/sys/unix"

// NetfilterGroups is the multicast group mask of NETLINK_NETFILTER sockets.
type NetfilterGroups uint32

// NETLINK_NETFILTER multicast groups, the NF_NETLINK_ masks of the kernel.
const (
	NetfilterConntrackNew        NetfilterGroups = 1 << (unix.NFNLGRP_CONNTRACK_NEW - 1)
	NetfilterConntrackUpdate     NetfilterGroups = 1 << (unix.NFNLGRP_CONNTRACK_UPDATE - 1)
	NetfilterConntrackDestroy    NetfilterGroups = 1 << (unix.NFNLGRP_CONNTRACK_DESTROY - 1)
	NetfilterConntrackExpNew     NetfilterGroups = 1 << (unix.NFNLGRP_CONNTRACK_EXP_NEW - 1)
	NetfilterConntrackExpUpdate  NetfilterGroups = 1 << (unix.NFNLGRP_CONNTRACK_EXP_UPDATE - 1)
	NetfilterConntrackExpDestroy NetfilterGroups = 1 << (unix.NFNLGRP_CONNTRACK_EXP_DESTROY - 1)
	NetfilterNFTables            NetfilterGroups = 1 << (unix.NFNLGRP_NFTABLES - 1)
	NetfilterAcctQuota           NetfilterGroups = 1 << (unix.NFNLGRP_ACCT_QUOTA - 1)
	NetfilterNFTrace             NetfilterGroups = 1 << (unix.NFNLGRP_NFTRACE - 1)
)

var netfilterGroupNames = []groupName{
	{uint32(NetfilterConntrackNew), "conntrack-new"},
	{uint32(NetfilterConntrackUpdate), "conntrack-update"},
	{uint32(NetfilterConntrackDestroy), "conntrack-destroy"},
	{uint32(NetfilterConntrackExpNew), "conntrack-exp-new"},
	{uint32(NetfilterConntrackExpUpdate), "conntrack-exp-update"},
	{uint32(NetfilterConntrackExpDestroy), "conntrack-exp-destroy"},
	{uint32(NetfilterNFTables), "nftables"},
	{uint32(NetfilterAcctQuota), "acct-quota"},
	{uint32(NetfilterNFTrace), "nftrace"},
}

var netfilterGroupAliases = map[string]func() uint32{
	"conntrack": func() uint32 { return uint32(NetfilterConntrackAll()) },
	"expect":    func() uint32 { return uint32(NetfilterExpectAll()) },
}

// NetfilterConntrackAll returns the conntrack new, update and destroy groups.
func NetfilterConntrackAll() NetfilterGroups {
	return Union(NetfilterConntrackNew, NetfilterConntrackUpdate, NetfilterConntrackDestroy)
}

// NetfilterExpectAll returns the conntrack expectation groups.
func NetfilterExpectAll() NetfilterGroups {
	return Union(NetfilterConntrackExpNew, NetfilterConntrackExpUpdate, NetfilterConntrackExpDestroy)
}

// ParseNetfilterGroups parses a list of group names such as "conntrack-new,conntrack-destroy".
func ParseNetfilterGroups(s string) (NetfilterGroups, error) {
	mask, err := parseGroups(s, netfilterGroupNames, netfilterGroupAliases)
	return NetfilterGroups(mask), err
}

// Protocol returns ProtocolNetfilter.
func (NetfilterGroups) Protocol() Protocol { return ProtocolNetfilter }

// Union returns g with the flags of others added.
func (g NetfilterGroups) Union(others ...NetfilterGroups) NetfilterGroups {
	return g | Union(others...)
}

// Contains reports whether any flag of flag is in g.
func (g NetfilterGroups) Contains(flag NetfilterGroups) bool { return Contains(g, flag) }

func (g NetfilterGroups) String() string {
	return formatGroups(uint32(g), netfilterGroupNames)
}
