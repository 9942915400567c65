package sockets

import (
	"errors"
	"os"
	"unsafe"

	"github.com/evilsocket/nlsockaddr/log"
	"github.com/evilsocket/nlsockaddr/netlink"
	"golang.org/x/sys/unix"
)

// ErrNotNetlink is returned when a socket doesn't have a netlink address.
var ErrNotNetlink = errors.New("not a netlink socket")

// Bind binds the socket fd to sa with bind(2).
func Bind(fd int, sa netlink.RawSockaddr) error {
	return sa.WithRawView(func(ptr unsafe.Pointer, size uint32) error {
		_, _, errno := unix.Syscall(unix.SYS_BIND, uintptr(fd), uintptr(ptr), uintptr(size))
		if errno != 0 {
			return os.NewSyscallError("bind", errno)
		}
		return nil
	})
}

// Open returns a raw netlink socket of protocol proto bound to sa.
func Open(proto netlink.Protocol, sa netlink.RawSockaddr) (int, error) {
	fd, err := unix.Socket(unix.AF_NETLINK, unix.SOCK_RAW|unix.SOCK_CLOEXEC, int(proto))
	if err != nil {
		return -1, os.NewSyscallError("socket", err)
	}
	if err := Bind(fd, sa); err != nil {
		unix.Close(fd)
		return -1, err
	}
	log.Debug("netlink socket %d bound, protocol %s", fd, proto)
	return fd, nil
}

// LocalPort returns the port id the socket fd is bound to.
func LocalPort(fd int) (uint32, error) {
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return 0, os.NewSyscallError("getsockname", err)
	}
	nlsa, ok := sa.(*unix.SockaddrNetlink)
	if !ok {
		return 0, ErrNotNetlink
	}
	return nlsa.Pid, nil
}
