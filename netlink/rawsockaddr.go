package netlink

import "unsafe"

// Protocol is a kernel netlink subsystem, the protocol argument of socket(2).
type Protocol int

// RawSockaddr is implemented by addresses that can be handed to socket
// syscalls as a pointer and a length.
//
// The pointer passed to fn is only valid until fn returns. It must not be
// stored, and the memory it points to must not be written.
type RawSockaddr interface {
	WithRawView(fn func(ptr unsafe.Pointer, size uint32) error) error
}
