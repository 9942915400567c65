//go:build !linux
// +build !linux

package netlink

// Supported reports whether netlink addresses can be built on this platform.
const Supported = false
