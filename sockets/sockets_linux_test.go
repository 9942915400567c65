package sockets

import (
	"errors"
	"os"
	"testing"

	"github.com/evilsocket/nlsockaddr/netlink"
	"golang.org/x/sys/unix"
)

func TestBindBadFd(t *testing.T) {
	err := Bind(-1, netlink.New(netlink.RouteFamily(), 0, netlink.RouteLink))
	if !errors.Is(err, unix.EBADF) {
		t.Error("expected EBADF, got", err)
	}
}

func TestLocalPortNotNetlink(t *testing.T) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Skip("unable to create a unix socket:", err)
	}
	defer unix.Close(fd)
	if _, err := LocalPort(fd); !errors.Is(err, ErrNotNetlink) {
		t.Error("expected ErrNotNetlink, got", err)
	}
}

// TestNetlinkSockets opens real netlink sockets. Route and link groups can be
// joined by unprivileged users, but sockets are not always available in
// restricted environments.
func TestNetlinkSockets(t *testing.T) {
	if os.Getenv("NETLINK_TESTS") == "" {
		t.Skip("Skipping netlink tests. Use NETLINK_TESTS=1 to launch these tests.")
	}
	addr := netlink.New(netlink.RouteFamily(), 0, netlink.RouteLink|netlink.RouteIPv4Addr)

	t.Run("Open", func(t *testing.T) {
		fd, err := Open(addr.Protocol(), addr)
		if err != nil {
			t.Fatal("Open error:", err)
		}
		defer unix.Close(fd)

		pid, err := LocalPort(fd)
		if err != nil {
			t.Fatal("LocalPort error:", err)
		}
		if pid == 0 {
			t.Error("the kernel didn't assign a port id")
		}

		// the same port id can't be bound twice.
		taken := netlink.New(netlink.RouteFamily(), pid, netlink.RouteLink)
		if fd2, err := Open(taken.Protocol(), taken); err == nil {
			unix.Close(fd2)
			t.Error("port id", pid, "bound twice")
		}
	})

	t.Run("Dial", func(t *testing.T) {
		c, err := Dial(addr, 0)
		if err != nil {
			t.Fatal("Dial error:", err)
		}
		if err := c.Close(); err != nil {
			t.Error("Close error:", err)
		}
	})

	t.Run("Subscribe", func(t *testing.T) {
		s, err := Subscribe(addr)
		if err != nil {
			t.Fatal("Subscribe error:", err)
		}
		defer s.Close()
		if pid, err := s.GetPid(); err != nil || pid == 0 {
			t.Error("unexpected pid:", pid, err)
		}
	})
}
