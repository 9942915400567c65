package main

import (
	"fmt"

	"github.com/evilsocket/nlsockaddr/netlink"
)

func main() {
	var groups netlink.NetfilterGroups = netlink.NetfilterConntrackNew
	fmt.Println(netlink.New(netlink.RouteFamily(), 0, groups))
}
