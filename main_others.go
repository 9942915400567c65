//go:build !linux
// +build !linux

package main

import (
	"runtime"

	"github.com/evilsocket/nlsockaddr/log"
	"github.com/evilsocket/nlsockaddr/netlink"
)

func main() {
	if !netlink.Supported {
		log.Fatal("netlink sockets are not available on %s", runtime.GOOS)
	}
}
