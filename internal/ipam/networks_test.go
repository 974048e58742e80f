package ipam

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabella232/sdc-napi/internal/nictags"
	"github.com/isabella232/sdc-napi/internal/storage"
	"github.com/isabella232/sdc-napi/pkg/types"
)

func testCore(t testing.TB) *Core {
	store := storage.NewMemStore()
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return NewCore(store, nictags.NewStatic([]string{"admin", "external"}), Options{})
}

func ptr[T any](v T) *T {
	return &v
}

// adminCreate is the canonical admin network payload used across the
// manager tests. One resolver sits inside the subnet, one outside.
func adminCreate() types.NetworkCreate {
	return types.NetworkCreate{
		Name:             "admin",
		Subnet:           "192.0.2.0/24",
		VlanID:           0,
		NicTag:           "admin",
		Gateway:          "192.0.2.1",
		Resolvers:        []string{"192.0.2.2", "8.8.8.8"},
		ProvisionStartIP: "192.0.2.10",
		ProvisionEndIP:   "192.0.2.250",
	}
}

func apiError(t *testing.T, err error) *types.Error {
	t.Helper()
	var apiErr *types.Error
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func fieldMessages(e *types.Error) []string {
	out := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		out = append(out, f.Field+": "+f.Message)
	}
	return out
}

func TestCreateNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("derives subnet properties and seeds infrastructure", func(t *testing.T) {
		core := testCore(t)

		n, etag, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)
		require.NotEmpty(t, etag)
		assert.NotEmpty(t, n.UUID)
		assert.Equal(t, "192.0.2.0/24", n.Subnet)
		assert.Equal(t, "255.255.255.0", n.Netmask)
		assert.Equal(t, types.FamilyIPv4, n.Family)
		assert.Equal(t, types.DefaultMTU, n.MTU)
		assert.False(t, n.Fabric)

		// the gateway and the in subnet resolver are reserved, the
		// outside resolver is not seeded
		records, count, err := core.IPs.List(ctx, n.UUID, types.IPFilter{}, types.Limit{})
		require.NoError(t, err)
		assert.Equal(t, uint(2), count)
		require.Len(t, records, 2)
		assert.Equal(t, "192.0.2.1", records[0].IP)
		assert.Equal(t, "192.0.2.2", records[1].IP)
		for _, r := range records {
			assert.True(t, r.Reserved)
			assert.False(t, r.Free)
			assert.Equal(t, types.BelongsToOther, r.BelongsToType)
			assert.Equal(t, n.UUID, r.BelongsToUUID)
		}
	})

	t.Run("collects every field error", func(t *testing.T) {
		core := testCore(t)

		_, _, err := core.Networks.Create(ctx, types.NetworkCreate{})
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeInvalidParameters, apiErr.Code)
		// name, subnet, nic_tag and both provision bounds are missing
		assert.Len(t, apiErr.Errors, 5, "got %v", fieldMessages(apiErr))
	})

	t.Run("rejects bad inputs with field errors", func(t *testing.T) {
		core := testCore(t)

		p := adminCreate()
		p.Gateway = "203.0.113.1"
		p.MTU = 100
		p.OwnerUUIDs = []string{"not-a-uuid"}
		_, _, err := core.Networks.Create(ctx, p)
		apiErr := apiError(t, err)
		assert.Len(t, apiErr.Errors, 3, "got %v", fieldMessages(apiErr))
	})

	t.Run("rejects a subnet with host bits set", func(t *testing.T) {
		core := testCore(t)

		p := adminCreate()
		p.Subnet = "192.0.2.1/24"
		_, _, err := core.Networks.Create(ctx, p)
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeInvalidParameters, apiErr.Code)
	})

	t.Run("rejects an inverted provision range", func(t *testing.T) {
		core := testCore(t)

		p := adminCreate()
		p.ProvisionStartIP = "192.0.2.250"
		p.ProvisionEndIP = "192.0.2.10"
		_, _, err := core.Networks.Create(ctx, p)
		apiErr := apiError(t, err)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "provision_start_ip", apiErr.Errors[0].Field)
	})

	t.Run("rejects an unknown nic tag", func(t *testing.T) {
		core := testCore(t)

		p := adminCreate()
		p.NicTag = "underlay"
		_, _, err := core.Networks.Create(ctx, p)
		apiErr := apiError(t, err)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "nic_tag", apiErr.Errors[0].Field)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		core := testCore(t)

		first, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		p := adminCreate()
		p.Subnet = "198.51.100.0/24"
		p.Gateway = "198.51.100.1"
		p.Resolvers = nil
		p.ProvisionStartIP = "198.51.100.10"
		p.ProvisionEndIP = "198.51.100.250"
		_, _, err = core.Networks.Create(ctx, p)
		apiErr := apiError(t, err)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, types.ReasonDuplicate, apiErr.Errors[0].Code)
		assert.Equal(t, fmt.Sprintf("name already used by network %s", first.UUID), apiErr.Errors[0].Message)
	})

	t.Run("overlap on the same nic tag is a conflict", func(t *testing.T) {
		core := testCore(t)

		first, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		p := types.NetworkCreate{
			Name:             "dmz",
			Subnet:           "192.0.2.128/25",
			NicTag:           "admin",
			ProvisionStartIP: "192.0.2.130",
			ProvisionEndIP:   "192.0.2.200",
		}
		_, _, err = core.Networks.Create(ctx, p)
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeSubnetConflict, apiErr.Code)
		assert.Contains(t, apiErr.Message, first.UUID)
	})

	t.Run("the same subnet on another nic tag is fine", func(t *testing.T) {
		core := testCore(t)

		_, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		p := adminCreate()
		p.Name = "external"
		p.NicTag = "external"
		_, _, err = core.Networks.Create(ctx, p)
		assert.NoError(t, err)
	})
}

func TestGetNetwork(t *testing.T) {
	ctx := context.Background()
	core := testCore(t)

	created, etag, err := core.Networks.Create(ctx, adminCreate())
	require.NoError(t, err)

	t.Run("by uuid", func(t *testing.T) {
		n, gotEtag, err := core.Networks.Get(ctx, created.UUID)
		require.NoError(t, err)
		assert.Equal(t, created.UUID, n.UUID)
		assert.Equal(t, etag, gotEtag)
	})

	t.Run("the admin alias resolves to the admin network", func(t *testing.T) {
		n, gotEtag, err := core.Networks.Get(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, created.UUID, n.UUID)
		assert.Equal(t, etag, gotEtag)
	})

	t.Run("a malformed uuid is a validation error", func(t *testing.T) {
		_, _, err := core.Networks.Get(ctx, "nonsense")
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeInvalidParameters, apiErr.Code)
	})

	t.Run("an unknown uuid is not found", func(t *testing.T) {
		_, _, err := core.Networks.Get(ctx, uuid.NewString())
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeResourceNotFound, apiErr.Code)
		assert.Equal(t, "network not found", apiErr.Message)
	})
}

func TestListNetworks(t *testing.T) {
	ctx := context.Background()
	core := testCore(t)

	var uuids []string
	for i, name := range []string{"one", "two", "three"} {
		p := types.NetworkCreate{
			Name:             name,
			Subnet:           fmt.Sprintf("10.%d.0.0/24", i),
			NicTag:           "admin",
			ProvisionStartIP: fmt.Sprintf("10.%d.0.10", i),
			ProvisionEndIP:   fmt.Sprintf("10.%d.0.250", i),
		}
		n, _, err := core.Networks.Create(ctx, p)
		require.NoError(t, err)
		uuids = append(uuids, n.UUID)
	}

	t.Run("keeps creation order", func(t *testing.T) {
		networks, count, err := core.Networks.List(ctx, types.NetworkFilter{}, types.Limit{})
		require.NoError(t, err)
		assert.Equal(t, uint(3), count)
		require.Len(t, networks, 3)
		for i, n := range networks {
			assert.Equal(t, uuids[i], n.UUID)
		}
	})

	t.Run("name list matches any element", func(t *testing.T) {
		networks, count, err := core.Networks.List(ctx, types.NetworkFilter{Name: []string{"one", "three"}}, types.Limit{})
		require.NoError(t, err)
		assert.Equal(t, uint(2), count)
		require.Len(t, networks, 2)
		assert.Equal(t, "one", networks[0].Name)
		assert.Equal(t, "three", networks[1].Name)
	})

	t.Run("pagination keeps the total count", func(t *testing.T) {
		networks, count, err := core.Networks.List(ctx, types.NetworkFilter{}, types.Limit{Size: 2, Page: 2})
		require.NoError(t, err)
		assert.Equal(t, uint(3), count)
		require.Len(t, networks, 1)
		assert.Equal(t, "three", networks[0].Name)
	})

	t.Run("a bad filter fails before the store is read", func(t *testing.T) {
		_, _, err := core.Networks.List(ctx, types.NetworkFilter{UUID: ptr("a*b*")}, types.Limit{})
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeInvalidParameters, apiErr.Code)
	})
}

func TestUpdateNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("applies mutable fields and bumps the etag", func(t *testing.T) {
		core := testCore(t)
		n, etag, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		u := types.NetworkUpdate{
			Gateway:     ptr("192.0.2.5"),
			Description: ptr("updated"),
		}
		updated, newEtag, err := core.Networks.Update(ctx, n.UUID, u, etag)
		require.NoError(t, err)
		assert.Equal(t, "192.0.2.5", updated.Gateway)
		assert.Equal(t, "updated", updated.Description)
		assert.NotEqual(t, etag, newEtag)

		// the moved gateway gets its reservation seeded
		rec, _, err := core.IPs.Get(ctx, n.UUID, "192.0.2.5")
		require.NoError(t, err)
		assert.True(t, rec.Reserved)
		assert.Equal(t, types.BelongsToOther, rec.BelongsToType)
	})

	t.Run("a stale etag fails the precondition", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		_, _, err = core.Networks.Update(ctx, n.UUID, types.NetworkUpdate{Description: ptr("x")}, "stale")
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodePreconditionFailed, apiErr.Code)
	})

	t.Run("no etag means unconditional", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		updated, _, err := core.Networks.Update(ctx, n.UUID, types.NetworkUpdate{MTU: ptr(9000)}, "")
		require.NoError(t, err)
		assert.Equal(t, 9000, updated.MTU)
	})

	t.Run("renaming onto a taken name is rejected", func(t *testing.T) {
		core := testCore(t)
		first, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		p := adminCreate()
		p.Name = "backup"
		p.Subnet = "198.51.100.0/24"
		p.Gateway = "198.51.100.1"
		p.Resolvers = nil
		p.ProvisionStartIP = "198.51.100.10"
		p.ProvisionEndIP = "198.51.100.250"
		second, _, err := core.Networks.Create(ctx, p)
		require.NoError(t, err)

		_, _, err = core.Networks.Update(ctx, second.UUID, types.NetworkUpdate{Name: ptr("admin")}, "")
		apiErr := apiError(t, err)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, fmt.Sprintf("name already used by network %s", first.UUID), apiErr.Errors[0].Message)
	})

	t.Run("collects every field error", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		u := types.NetworkUpdate{
			Gateway: ptr("not-an-ip"),
			MTU:     ptr(100),
		}
		_, _, err = core.Networks.Update(ctx, n.UUID, u, "")
		apiErr := apiError(t, err)
		assert.Len(t, apiErr.Errors, 2, "got %v", fieldMessages(apiErr))
	})
}

func TestDeleteNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the network and its ip records", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		require.NoError(t, core.Networks.Delete(ctx, n.UUID, DeleteOpts{}))

		_, _, err = core.Networks.Get(ctx, n.UUID)
		assert.True(t, types.IsNotFound(err))
	})

	t.Run("infrastructure records do not block", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		// the seeded gateway and resolver are the only records
		assert.NoError(t, core.Networks.Delete(ctx, n.UUID, DeleteOpts{}))
	})

	t.Run("tenant reservations block and are named", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		zone := uuid.NewString()
		u := types.IPUpdate{
			BelongsToUUID: ptr(zone),
			BelongsToType: ptr(types.BelongsToZone),
		}
		_, _, err = core.IPs.Update(ctx, n.UUID, "192.0.2.50", u, "")
		require.NoError(t, err)

		err = core.Networks.Delete(ctx, n.UUID, DeleteOpts{})
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeInUse, apiErr.Code)
		assert.Equal(t, "network is in use", apiErr.Message)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, zone, apiErr.Errors[0].Field)
		assert.Equal(t, types.ReasonUsedBy, apiErr.Errors[0].Code)
		assert.Equal(t, fmt.Sprintf("in use by zone %s", zone), apiErr.Errors[0].Message)

		// force skips the tenant check
		require.NoError(t, core.Networks.Delete(ctx, n.UUID, DeleteOpts{Force: true}))
	})

	t.Run("pool membership blocks even with force", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		pool, _, err := core.Pools.Create(ctx, types.PoolCreate{Name: "default", Networks: []string{n.UUID}})
		require.NoError(t, err)

		err = core.Networks.Delete(ctx, n.UUID, DeleteOpts{Force: true})
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodeInUse, apiErr.Code)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, pool.UUID, apiErr.Errors[0].Field)
		assert.Equal(t, fmt.Sprintf("in use by network_pool %s", pool.UUID), apiErr.Errors[0].Message)
	})

	t.Run("the excluded pool does not block", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		pool, _, err := core.Pools.Create(ctx, types.PoolCreate{Name: "default", Networks: []string{n.UUID}})
		require.NoError(t, err)

		assert.NoError(t, core.Networks.Delete(ctx, n.UUID, DeleteOpts{FromPool: pool.UUID}))
	})

	t.Run("a stale etag fails the precondition", func(t *testing.T) {
		core := testCore(t)
		n, _, err := core.Networks.Create(ctx, adminCreate())
		require.NoError(t, err)

		err = core.Networks.Delete(ctx, n.UUID, DeleteOpts{Etag: "stale"})
		apiErr := apiError(t, err)
		assert.Equal(t, types.CodePreconditionFailed, apiErr.Code)
	})
}

func TestNetworkNamingScope(t *testing.T) {
	existing := []types.Network{
		{UUID: "a", Name: "web"},
		{UUID: "b", Name: "db", Fabric: true, OwnerUUID: "owner-1"},
	}

	t.Run("plain names are global", func(t *testing.T) {
		assert.Equal(t, "a", findName(existing, types.Network{UUID: "x", Name: "web"}))
		assert.Empty(t, findName(existing, types.Network{UUID: "x", Name: "other"}))
	})

	t.Run("fabric names are scoped per owner", func(t *testing.T) {
		assert.Equal(t, "b", findName(existing, types.Network{UUID: "x", Name: "db", Fabric: true, OwnerUUID: "owner-1"}))
		assert.Empty(t, findName(existing, types.Network{UUID: "x", Name: "db", Fabric: true, OwnerUUID: "owner-2"}))
		// a fabric name does not collide with a plain one
		assert.Empty(t, findName(existing, types.Network{UUID: "x", Name: "web", Fabric: true, OwnerUUID: "owner-1"}))
	})

	t.Run("a network never collides with itself", func(t *testing.T) {
		assert.Empty(t, findName(existing, types.Network{UUID: "a", Name: "web"}))
	})
}

func TestOverlapScope(t *testing.T) {
	plain := types.Network{NicTag: "admin"}
	fabric := types.Network{Fabric: true, OwnerUUID: "owner-1", VlanID: 2}

	assert.True(t, overlapScope(plain, types.Network{NicTag: "admin"}))
	assert.False(t, overlapScope(plain, types.Network{NicTag: "external"}))
	assert.False(t, overlapScope(plain, fabric))

	assert.True(t, overlapScope(fabric, types.Network{Fabric: true, OwnerUUID: "owner-1", VlanID: 2}))
	assert.False(t, overlapScope(fabric, types.Network{Fabric: true, OwnerUUID: "owner-2", VlanID: 2}))
	assert.False(t, overlapScope(fabric, types.Network{Fabric: true, OwnerUUID: "owner-1", VlanID: 3}))
}
