package netlink

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// GroupSet is the multicast group mask of a single netlink protocol.
// Each flag occupies one bit of the mask.
type GroupSet interface {
	~uint32
	fmt.Stringer

	// Protocol returns the netlink protocol the groups belong to.
	Protocol() Protocol
}

// Union returns the set with every flag of sets. With no arguments it
// returns the empty set.
func Union[G GroupSet](sets ...G) G {
	var u G
	for _, s := range sets {
		u |= s
	}
	return u
}

// Contains reports whether any flag of flag is in set.
func Contains[G GroupSet](set, flag G) bool {
	return set&flag != 0
}

// GroupNumbers returns the kernel group numbers (1-based) of the flags of
// set, the values expected by setsockopt(NETLINK_ADD_MEMBERSHIP).
func GroupNumbers[G GroupSet](set G) []uint {
	mask := uint32(set)
	groups := make([]uint, 0, bits.OnesCount32(mask))
	for mask != 0 {
		n := bits.TrailingZeros32(mask)
		groups = append(groups, uint(n)+1)
		mask &^= 1 << n
	}
	return groups
}

type groupName struct {
	mask uint32
	name string
}

func formatGroups(mask uint32, names []groupName) string {
	if mask == 0 {
		return "none"
	}
	var parts []string
	for _, g := range names {
		if mask&g.mask != 0 {
			parts = append(parts, g.name)
			mask &^= g.mask
		}
	}
	if mask != 0 {
		parts = append(parts, fmt.Sprintf("%#x", mask))
	}
	return strings.Join(parts, "|")
}

// parseGroups accepts a list of names, aliases or numeric masks separated
// by commas, pipes or blanks.
func parseGroups(s string, names []groupName, aliases map[string]func() uint32) (uint32, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	})

	var mask uint32
Next:
	for _, f := range fields {
		f = strings.ToLower(f)
		if f == "none" {
			continue
		}
		for _, g := range names {
			if g.name == f {
				mask |= g.mask
				continue Next
			}
		}
		if alias, found := aliases[f]; found {
			mask |= alias()
			continue
		}
		if v, err := strconv.ParseUint(f, 0, 32); err == nil {
			mask |= uint32(v)
			continue
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, f)
	}
	return mask, nil
}
