// Package netlink builds AF_NETLINK socket addresses (struct sockaddr_nl).
//
// An address is made of the netlink protocol of the socket, the port id
// and the mask of multicast groups the socket subscribes to. Every protocol
// has its own group set type (RouteGroups, NetfilterGroups), and a Family is
// parameterized by that type, so the compiler rejects an address that mixes
// the groups of one protocol with the family of another:
//
//	addr := netlink.New(netlink.RouteFamily(), 0, netlink.RouteLink.Union(netlink.RouteNotify))
//	err := addr.WithRawView(func(ptr unsafe.Pointer, size uint32) error {
//		// hand ptr and size to bind(2)
//	})
//
// The package never opens sockets. Everything but the RawSockaddr interface
// is only available on Linux.
package netlink
