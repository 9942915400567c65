package netlink

import "golang.org/x/sys/unix"

// Family is the address family of a netlink socket bound to the protocol
// that owns the group set G. The protocol is a property of G, so a Family
// can't disagree with the groups it accepts.
type Family[G GroupSet] struct{}

// RouteFamily returns the family of NETLINK_ROUTE sockets.
func RouteFamily() Family[RouteGroups] {
	return Family[RouteGroups]{}
}

// NetfilterFamily returns the family of NETLINK_NETFILTER sockets.
func NetfilterFamily() Family[NetfilterGroups] {
	return Family[NetfilterGroups]{}
}

// Family returns AF_NETLINK.
func (Family[G]) Family() uint16 {
	return unix.AF_NETLINK
}

// Protocol returns the netlink protocol of the group set G.
func (Family[G]) Protocol() Protocol {
	var groups G
	return groups.Protocol()
}

func (f Family[G]) String() string {
	return "netlink(" + f.Protocol().String() + ")"
}
