package netlink

import "golang.org/x/sys/unix"

// RouteGroups is the multicast group mask of NETLINK_ROUTE sockets.
type RouteGroups uint32

// NETLINK_ROUTE multicast groups.
const (
	RouteLink       RouteGroups = unix.RTMGRP_LINK
	RouteNotify     RouteGroups = unix.RTMGRP_NOTIFY
	RouteNeigh      RouteGroups = unix.RTMGRP_NEIGH
	RouteTC         RouteGroups = unix.RTMGRP_TC
	RouteIPv4Addr   RouteGroups = unix.RTMGRP_IPV4_IFADDR
	RouteIPv4MRoute RouteGroups = unix.RTMGRP_IPV4_MROUTE
	RouteIPv4Route  RouteGroups = unix.RTMGRP_IPV4_ROUTE
	RouteIPv4Rule   RouteGroups = unix.RTMGRP_IPV4_RULE
	RouteIPv6Addr   RouteGroups = unix.RTMGRP_IPV6_IFADDR
	RouteIPv6MRoute RouteGroups = unix.RTMGRP_IPV6_MROUTE
	RouteIPv6Route  RouteGroups = unix.RTMGRP_IPV6_ROUTE
	RouteIPv6IfInfo RouteGroups = unix.RTMGRP_IPV6_IFINFO
	RouteIPv6Prefix RouteGroups = unix.RTMGRP_IPV6_PREFIX
	// the kernel has no RTMGRP_ mask for this group.
	RouteIPv6Rule RouteGroups = 1 << (unix.RTNLGRP_IPV6_RULE - 1)
)

var routeGroupNames = []groupName{
	{uint32(RouteLink), "link"},
	{uint32(RouteNotify), "notify"},
	{uint32(RouteNeigh), "neigh"},
	{uint32(RouteTC), "tc"},
	{uint32(RouteIPv4Addr), "ipv4-addr"},
	{uint32(RouteIPv4MRoute), "ipv4-mroute"},
	{uint32(RouteIPv4Route), "ipv4-route"},
	{uint32(RouteIPv4Rule), "ipv4-rule"},
	{uint32(RouteIPv6Addr), "ipv6-addr"},
	{uint32(RouteIPv6MRoute), "ipv6-mroute"},
	{uint32(RouteIPv6Route), "ipv6-route"},
	{uint32(RouteIPv6IfInfo), "ipv6-ifinfo"},
	{uint32(RouteIPv6Prefix), "ipv6-prefix"},
	{uint32(RouteIPv6Rule), "ipv6-rule"},
}

var routeGroupAliases = map[string]func() uint32{
	"ipv4": func() uint32 { return uint32(RouteIPv4All()) },
	"ipv6": func() uint32 { return uint32(RouteIPv6All()) },
	"all":  func() uint32 { return uint32(RouteAll()) },
}

// RouteIPv4All returns every IPv4 group: addresses, multicast routes,
// routes and rules.
func RouteIPv4All() RouteGroups {
	return Union(RouteIPv4Addr, RouteIPv4MRoute, RouteIPv4Route, RouteIPv4Rule)
}

// RouteIPv6All returns every IPv6 group.
func RouteIPv6All() RouteGroups {
	return Union(RouteIPv6Addr, RouteIPv6MRoute, RouteIPv6Route, RouteIPv6Rule, RouteIPv6IfInfo, RouteIPv6Prefix)
}

// RouteAll returns every named NETLINK_ROUTE group.
func RouteAll() RouteGroups {
	return Union(RouteLink, RouteNotify, RouteNeigh, RouteTC, RouteIPv4All(), RouteIPv6All())
}

// ParseRouteGroups parses a list of group names such as "link,notify,ipv4".
func ParseRouteGroups(s string) (RouteGroups, error) {
	mask, err := parseGroups(s, routeGroupNames, routeGroupAliases)
	return RouteGroups(mask), err
}

// Protocol returns ProtocolRoute.
func (RouteGroups) Protocol() Protocol { return ProtocolRoute }

// Union returns g with the flags of others added.
func (g RouteGroups) Union(others ...RouteGroups) RouteGroups {
	return g | Union(others...)
}

// Contains reports whether any flag of flag is in g.
func (g RouteGroups) Contains(flag RouteGroups) bool { return Contains(g, flag) }

func (g RouteGroups) String() string {
	return formatGroups(uint32(g), routeGroupNames)
}
