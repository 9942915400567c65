package netlink

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/vishvananda/netlink/nl"
	"golang.org/x/sys/unix"
)

const sizeofAddress = unix.SizeofSockaddrNetlink

var nativeEndian = nl.NativeEndian()

// Address is a netlink socket address (struct sockaddr_nl).
//
//	offset size field
//	0      2    family, AF_NETLINK
//	2      2    padding, 0
//	4      4    port id
//	8      4    multicast groups mask
//
// Fields are in host byte order.
type Address[G GroupSet] struct {
	raw unix.RawSockaddrNetlink
}

var (
	_ RawSockaddr = Address[RouteGroups]{}
	_ RawSockaddr = Address[NetfilterGroups]{}
)

// New returns the address of a socket of the given family, with port id
// port and subscribed to groups. A port of 0 lets the kernel pick one.
func New[G GroupSet](family Family[G], port uint32, groups G) Address[G] {
	return Address[G]{
		raw: unix.RawSockaddrNetlink{
			Family: family.Family(),
			Pid:    port,
			Groups: uint32(groups),
		},
	}
}

// Family returns the family of the address.
func (a Address[G]) Family() Family[G] { return Family[G]{} }

// Protocol returns the netlink protocol of the address.
func (a Address[G]) Protocol() Protocol { return a.Family().Protocol() }

// Port returns the port id.
func (a Address[G]) Port() uint32 { return a.raw.Pid }

// Groups returns the multicast groups.
func (a Address[G]) Groups() G { return G(a.raw.Groups) }

// Len returns the size of the serialized address.
func (a Address[G]) Len() int { return sizeofAddress }

// Serialize returns the address laid out as struct sockaddr_nl.
func (a Address[G]) Serialize() []byte {
	b := make([]byte, sizeofAddress)
	nativeEndian.PutUint16(b[0:2], a.raw.Family)
	nativeEndian.PutUint16(b[2:4], a.raw.Pad)
	nativeEndian.PutUint32(b[4:8], a.raw.Pid)
	nativeEndian.PutUint32(b[8:12], a.raw.Groups)
	return b
}

// Sockaddr returns the address as accepted by unix.Bind and unix.Connect.
func (a Address[G]) Sockaddr() *unix.SockaddrNetlink {
	return &unix.SockaddrNetlink{
		Family: a.raw.Family,
		Pid:    a.raw.Pid,
		Groups: a.raw.Groups,
	}
}

// WithRawView calls fn with a pointer to the raw sockaddr_nl of the address
// and its size, and returns what fn returns. The pointer is valid until fn
// returns and must not be kept or written to.
func (a Address[G]) WithRawView(fn func(ptr unsafe.Pointer, size uint32) error) error {
	raw := a.raw
	err := fn(unsafe.Pointer(&raw), sizeofAddress)
	runtime.KeepAlive(&raw)
	return err
}

func (a Address[G]) String() string {
	return fmt.Sprintf("%s pid=%d groups=%s", a.Family(), a.raw.Pid, a.Groups())
}
