package main

import (
	"fmt"

	"github.com/evilsocket/nlsockaddr/netlink"
)

func main() {
	var family netlink.Family[netlink.RouteGroups] = netlink.NetfilterFamily()
	fmt.Println(family)
}
