package main

import (
	"fmt"

	"github.com/evilsocket/nlsockaddr/netlink"
)

func main() {
	fmt.Println(netlink.New(netlink.RouteFamily(), 0, netlink.RouteLink))
	fmt.Println(netlink.New(netlink.NetfilterFamily(), 0, netlink.NetfilterConntrackNew))
}
