// Package sockets opens netlink sockets bound to the addresses built by
// package netlink. It's only available on Linux.
package sockets
