package netlink

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestFamily(t *testing.T) {
	if f := RouteFamily(); f.Family() != unix.AF_NETLINK || f.Protocol() != ProtocolRoute {
		t.Error("unexpected route family:", f.Family(), f.Protocol())
	}
	if f := NetfilterFamily(); f.Family() != unix.AF_NETLINK || f.Protocol() != ProtocolNetfilter {
		t.Error("unexpected netfilter family:", f.Family(), f.Protocol())
	}

	// the zero value is as good as the constructor.
	var f Family[RouteGroups]
	if f.Protocol() != ProtocolRoute || f != RouteFamily() {
		t.Error("zero Family[RouteGroups] is not the route family")
	}
	if New(f, 0, RouteLink).Protocol() != ProtocolRoute {
		t.Error("address protocol differs from its family")
	}
}

func goBuild(t *testing.T, dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join("testdata", dir, "*.go"))
	if err != nil || len(files) == 0 {
		t.Fatal("no sources in testdata/", dir, err)
	}
	args := append([]string{"build", "-o", os.DevNull}, files...)
	out, err := exec.Command("go", args...).CombinedOutput()
	return string(out), err
}

// TestFamilyGroupsMismatch checks that the compiler rejects groups of one
// protocol used with the family of another.
func TestFamilyGroupsMismatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping compilation tests in short mode.")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not found")
	}
	if out, err := goBuild(t, "match"); err != nil {
		t.Skip("unable to build the reference program: ", err, "\n", out)
	}

	for _, dir := range []string{"mismatch/groups", "mismatch/family"} {
		t.Run(dir, func(t *testing.T) {
			out, err := goBuild(t, dir)
			if err == nil {
				t.Fatal("mismatched protocol and groups compiled")
			}
			if !strings.Contains(out, "RouteGroups") || !strings.Contains(out, "NetfilterGroups") {
				t.Error("unexpected compiler output:", out)
			}
		})
	}
}
