package ipam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabella232/sdc-napi/pkg/types"
)

func TestUUIDMatcher(t *testing.T) {
	const id = "8a9f51e9-21cb-4d86-9fa2-26f0a2b5a810"

	t.Run("an exact uuid matches case insensitively", func(t *testing.T) {
		match, err := uuidMatcher(id)
		require.NoError(t, err)
		assert.True(t, match(id))
		assert.True(t, match("8A9F51E9-21CB-4D86-9FA2-26F0A2B5A810"))
		assert.False(t, match("00000000-0000-0000-0000-000000000000"))
	})

	t.Run("a trailing wildcard matches by prefix", func(t *testing.T) {
		match, err := uuidMatcher("8a9f51e9*")
		require.NoError(t, err)
		assert.True(t, match(id))
		assert.False(t, match("9a9f51e9-21cb-4d86-9fa2-26f0a2b5a810"))
	})

	t.Run("a bare wildcard matches everything", func(t *testing.T) {
		match, err := uuidMatcher("*")
		require.NoError(t, err)
		assert.True(t, match(id))
		assert.True(t, match("anything"))
	})

	t.Run("a non trailing wildcard is rejected", func(t *testing.T) {
		_, err := uuidMatcher("*8a9f51e9")
		apiErr := apiError(t, err)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "only UUID prefixes are allowed", apiErr.Errors[0].Message)
	})

	t.Run("more than one wildcard is rejected", func(t *testing.T) {
		_, err := uuidMatcher("8a*9f*")
		apiErr := apiError(t, err)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "need only 1 wildcard", apiErr.Errors[0].Message)
	})

	t.Run("a prefix with foreign characters is rejected", func(t *testing.T) {
		_, err := uuidMatcher("xyz!*")
		apiErr := apiError(t, err)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "invalid uuid prefix", apiErr.Errors[0].Message)
	})

	t.Run("a non uuid without wildcard is rejected", func(t *testing.T) {
		_, err := uuidMatcher("8a9f51e9")
		apiErr := apiError(t, err)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "invalid uuid", apiErr.Errors[0].Message)
	})
}

func TestNetworkPredicate(t *testing.T) {
	owner := "c2a9cddb-1d07-4f35-a2e5-e4a2ce008468"
	networks := []types.Network{
		{UUID: "a", Name: "admin", NicTag: "admin", VlanID: 0, Family: types.FamilyIPv4},
		{UUID: "b", Name: "external", NicTag: "external", VlanID: 5, Family: types.FamilyIPv4, OwnerUUIDs: []string{owner}},
		{UUID: "c", Name: "overlay", NicTag: "fabric", Family: types.FamilyIPv6, Fabric: true, OwnerUUID: owner},
	}

	matching := func(t *testing.T, f types.NetworkFilter) []string {
		t.Helper()
		match, err := networkPredicate(f)
		require.NoError(t, err)
		var out []string
		for _, n := range networks {
			if match(n) {
				out = append(out, n.UUID)
			}
		}
		return out
	}

	t.Run("empty filter matches all", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, matching(t, types.NetworkFilter{}))
	})

	t.Run("params combine with AND", func(t *testing.T) {
		f := types.NetworkFilter{Family: ptr(types.FamilyIPv4), NicTag: []string{"external"}}
		assert.Equal(t, []string{"b"}, matching(t, f))
	})

	t.Run("list params match any element", func(t *testing.T) {
		f := types.NetworkFilter{Name: []string{"admin", "overlay"}}
		assert.Equal(t, []string{"a", "c"}, matching(t, f))
	})

	t.Run("owner matches the owner list and the fabric owner", func(t *testing.T) {
		f := types.NetworkFilter{OwnerUUID: ptr(owner)}
		assert.Equal(t, []string{"b", "c"}, matching(t, f))
	})

	t.Run("provisionable_by includes ownerless networks", func(t *testing.T) {
		f := types.NetworkFilter{ProvisionableBy: ptr("d7e1b4a2-9663-44f0-89a5-6d7a84c3a1df")}
		assert.Equal(t, []string{"a", "c"}, matching(t, f))

		f = types.NetworkFilter{ProvisionableBy: ptr(owner)}
		assert.Equal(t, []string{"a", "b", "c"}, matching(t, f))
	})

	t.Run("fabric selects one side", func(t *testing.T) {
		assert.Equal(t, []string{"c"}, matching(t, types.NetworkFilter{Fabric: ptr(true)}))
		assert.Equal(t, []string{"a", "b"}, matching(t, types.NetworkFilter{Fabric: ptr(false)}))
	})

	t.Run("a malformed owner filter is rejected", func(t *testing.T) {
		_, err := networkPredicate(types.NetworkFilter{OwnerUUID: ptr("nope")})
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeInvalidParameters, apiErr.Code)

		_, err = networkPredicate(types.NetworkFilter{ProvisionableBy: ptr("nope")})
		assert.Error(t, err)
	})
}

func TestApplyLimit(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	t.Run("zero values fall back to the defaults", func(t *testing.T) {
		assert.Equal(t, items, applyLimit(items, types.Limit{}))
	})

	t.Run("pages slice in order", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, applyLimit(items, types.Limit{Size: 2, Page: 1}))
		assert.Equal(t, []int{3, 4}, applyLimit(items, types.Limit{Size: 2, Page: 2}))
		assert.Equal(t, []int{5}, applyLimit(items, types.Limit{Size: 2, Page: 3}))
	})

	t.Run("a page past the end is empty", func(t *testing.T) {
		assert.Empty(t, applyLimit(items, types.Limit{Size: 2, Page: 4}))
	})
}
