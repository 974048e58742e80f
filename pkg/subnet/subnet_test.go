package subnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDerivesIPv4Properties(t *testing.T) {
	info, err := Parse("192.0.2.0/24")
	require.NoError(t, err)

	assert.Equal(t, "ipv4", info.Family())
	assert.Equal(t, "255.255.255.0", info.Netmask())
	assert.Equal(t, "192.0.2.0", info.Network().String())

	bcast, ok := info.Broadcast()
	require.True(t, ok)
	assert.Equal(t, "192.0.2.255", bcast.String())

	first, last, ok := info.UsableRange()
	require.True(t, ok)
	assert.Equal(t, "192.0.2.1", first.String())
	assert.Equal(t, "192.0.2.254", last.String())

	size, ok := info.Size()
	require.True(t, ok)
	assert.Equal(t, uint64(256), size)
}

func TestParseDerivesIPv6Properties(t *testing.T) {
	info, err := Parse("2001:db8:1::/64")
	require.NoError(t, err)

	assert.Equal(t, "ipv6", info.Family())
	assert.Equal(t, "/64", info.Netmask())

	_, ok := info.Broadcast()
	assert.False(t, ok)

	first, last, ok := info.UsableRange()
	require.True(t, ok)
	assert.Equal(t, "2001:db8:1::1", first.String())
	assert.Equal(t, "2001:db8:1::ffff:ffff:ffff:ffff", last.String())

	_, ok = info.Size()
	assert.False(t, ok)
}

func TestParseRejectsMalformedSubnets(t *testing.T) {
	tests := []struct {
		name  string
		cidr  string
	}{
		{name: "not a cidr", cidr: "10.0.0.0"},
		{name: "garbage", cidr: "not-a-subnet"},
		{name: "host bits set", cidr: "192.0.2.1/24"},
		{name: "bad prefix length", cidr: "10.0.0.0/33"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.cidr)
			assert.Error(t, err)
		})
	}
}

func TestNetmaskWidths(t *testing.T) {
	tests := []struct {
		cidr string
		mask string
	}{
		{cidr: "10.0.0.0/8", mask: "255.0.0.0"},
		{cidr: "172.16.0.0/12", mask: "255.240.0.0"},
		{cidr: "192.168.1.0/26", mask: "255.255.255.192"},
		{cidr: "10.1.2.4/30", mask: "255.255.255.252"},
	}
	for _, tc := range tests {
		t.Run(tc.cidr, func(t *testing.T) {
			info, err := Parse(tc.cidr)
			require.NoError(t, err)
			assert.Equal(t, tc.mask, info.Netmask())
		})
	}
}

func TestUsableRangeSmallSubnets(t *testing.T) {
	info, err := Parse("10.0.0.4/30")
	require.NoError(t, err)
	first, last, ok := info.UsableRange()
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5", first.String())
	assert.Equal(t, "10.0.0.6", last.String())

	for _, cidr := range []string{"10.0.0.0/31", "10.0.0.1/32"} {
		info, err := Parse(cidr)
		require.NoError(t, err)
		_, _, ok := info.UsableRange()
		assert.False(t, ok, cidr)
	}
}

func TestInUsableRangeExcludesNetworkAndBroadcast(t *testing.T) {
	info, err := Parse("192.0.2.0/24")
	require.NoError(t, err)

	assert.False(t, info.InUsableRange(netip.MustParseAddr("192.0.2.0")))
	assert.True(t, info.InUsableRange(netip.MustParseAddr("192.0.2.1")))
	assert.True(t, info.InUsableRange(netip.MustParseAddr("192.0.2.254")))
	assert.False(t, info.InUsableRange(netip.MustParseAddr("192.0.2.255")))
	assert.False(t, info.InUsableRange(netip.MustParseAddr("192.0.3.1")))
}

func TestOverlaps(t *testing.T) {
	a, err := Parse("10.0.0.0/24")
	require.NoError(t, err)
	b, err := Parse("10.0.0.128/25")
	require.NoError(t, err)
	c, err := Parse("10.0.1.0/24")
	require.NoError(t, err)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
}

func TestParseAddr(t *testing.T) {
	a, err := ParseAddr("192.0.2.7")
	require.NoError(t, err)
	assert.Equal(t, "ipv4", AddrFamily(a))

	// 4-in-6 mapped addresses normalize to plain v4
	a, err = ParseAddr("::ffff:192.0.2.7")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.7", a.String())

	_, err = ParseAddr("192.0.2.300")
	assert.Error(t, err)

	a, err = ParseAddr("2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, "ipv6", AddrFamily(a))
}
