// Package subnet holds the address math for logical networks. Everything
// here is pure computation over netip values, no I/O and no store access.
package subnet

import (
	"fmt"
	"net/netip"
)

// Address families, matching the API wire values.
const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// Info is a parsed subnet with its derived properties.
type Info struct {
	prefix netip.Prefix
}

// Parse parses a CIDR subnet. The address must be the base of the prefix,
// 192.0.2.1/24 is rejected while 192.0.2.0/24 is accepted.
func Parse(cidr string) (Info, error) {
	p, err := netip.ParsePrefix(cidr)
	if err != nil {
		return Info{}, fmt.Errorf("invalid subnet %q: %w", cidr, err)
	}
	p = netip.PrefixFrom(p.Addr().Unmap(), p.Bits())
	if p.Addr() != p.Masked().Addr() {
		return Info{}, fmt.Errorf("invalid subnet %q: host bits set", cidr)
	}
	return Info{prefix: p}, nil
}

// ParseAddr parses a bare IP address, normalizing 4-in-6 mapped forms.
func ParseAddr(s string) (netip.Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("invalid IP address %q", s)
	}
	return a.Unmap(), nil
}

// AddrFamily returns the family wire value of an address.
func AddrFamily(a netip.Addr) string {
	if a.Is4() {
		return FamilyIPv4
	}
	return FamilyIPv6
}

// Prefix returns the underlying parsed prefix.
func (i Info) Prefix() netip.Prefix {
	return i.prefix
}

// String returns the canonical CIDR form.
func (i Info) String() string {
	return i.prefix.String()
}

// Family returns "ipv4" or "ipv6".
func (i Info) Family() string {
	return AddrFamily(i.prefix.Addr())
}

// Bits returns the prefix length.
func (i Info) Bits() int {
	return i.prefix.Bits()
}

// Netmask returns the dotted quad mask for IPv4 subnets and the prefix
// length form (e.g. "/64") for IPv6 subnets.
func (i Info) Netmask() string {
	if !i.prefix.Addr().Is4() {
		return fmt.Sprintf("/%d", i.prefix.Bits())
	}
	var m [4]byte
	for b := 0; b < i.prefix.Bits(); b++ {
		m[b/8] |= 1 << (7 - b%8)
	}
	return fmt.Sprintf("%d.%d.%d.%d", m[0], m[1], m[2], m[3])
}

// Network returns the base address of the subnet.
func (i Info) Network() netip.Addr {
	return i.prefix.Addr()
}

// Broadcast returns the broadcast address. The second return is false for
// IPv6, which has no broadcast.
func (i Info) Broadcast() (netip.Addr, bool) {
	if !i.prefix.Addr().Is4() {
		return netip.Addr{}, false
	}
	return i.lastAddr(), true
}

// UsableRange returns the first and last host address of the subnet. For
// IPv4 the network and broadcast addresses are excluded, so /31 and /32
// subnets have no usable range and ok is false. For IPv6 only the base
// address is excluded.
func (i Info) UsableRange() (first, last netip.Addr, ok bool) {
	if i.prefix.Addr().Is4() {
		if i.prefix.Bits() > 30 {
			return netip.Addr{}, netip.Addr{}, false
		}
		return i.prefix.Addr().Next(), i.lastAddr().Prev(), true
	}
	if i.prefix.Bits() > 127 {
		return netip.Addr{}, netip.Addr{}, false
	}
	return i.prefix.Addr().Next(), i.lastAddr(), true
}

// Contains reports whether the address is inside the subnet.
func (i Info) Contains(a netip.Addr) bool {
	return i.prefix.Contains(a.Unmap())
}

// InUsableRange reports whether the address may be handed out, i.e. it is
// inside the subnet and is neither the network nor the broadcast address.
func (i Info) InUsableRange(a netip.Addr) bool {
	first, last, ok := i.UsableRange()
	if !ok {
		return false
	}
	a = a.Unmap()
	return a.Compare(first) >= 0 && a.Compare(last) <= 0
}

// Overlaps reports whether the two subnets share any address.
func (i Info) Overlaps(other Info) bool {
	return i.prefix.Overlaps(other.prefix)
}

// Size returns the total number of addresses in the subnet. ok is false
// when the count does not fit in a uint64.
func (i Info) Size() (uint64, bool) {
	host := i.prefix.Addr().BitLen() - i.prefix.Bits()
	if host >= 64 {
		return 0, false
	}
	return 1 << uint(host), true
}

// lastAddr returns the highest address of the prefix.
func (i Info) lastAddr() netip.Addr {
	if i.prefix.Addr().Is4() {
		a := i.prefix.Addr().As4()
		for b := i.prefix.Bits(); b < 32; b++ {
			a[b/8] |= 1 << (7 - b%8)
		}
		return netip.AddrFrom4(a)
	}
	a := i.prefix.Addr().As16()
	for b := i.prefix.Bits(); b < 128; b++ {
		a[b/8] |= 1 << (7 - b%8)
	}
	return netip.AddrFrom16(a)
}
