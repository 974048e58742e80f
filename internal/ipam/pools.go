package ipam

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/isabella232/sdc-napi/internal/storage"
	"github.com/isabella232/sdc-napi/pkg/types"
)

// Pools manages network pools, ordered groups of same family networks
// treated as one provisioning target. Membership protects the member
// networks from deletion.
type Pools struct {
	store    storage.Store
	networks *Networks
}

// Create validates the member list and persists the pool. The family and
// nic tags are derived from the members.
func (m *Pools) Create(ctx context.Context, p types.PoolCreate) (types.NetworkPool, string, error) {
	fields := validatePoolParams(p.Name, p.Networks, p.OwnerUUIDs)
	if len(fields) > 0 {
		return types.NetworkPool{}, "", types.NewValidationError(fields...)
	}

	family, nicTags, err := m.resolveMembers(ctx, p.Networks)
	if err != nil {
		return types.NetworkPool{}, "", err
	}

	pools, err := m.snapshot(ctx)
	if err != nil {
		return types.NetworkPool{}, "", err
	}
	for _, other := range pools {
		if other.Name == p.Name {
			return types.NetworkPool{}, "", types.NewValidationError(
				types.DuplicateParam("name", fmt.Sprintf("name already used by pool %s", other.UUID)))
		}
	}

	pool := types.NetworkPool{
		UUID:        uuid.NewString(),
		Name:        p.Name,
		Networks:    p.Networks,
		Family:      family,
		NicTags:     nicTags,
		OwnerUUIDs:  p.OwnerUUIDs,
		Description: p.Description,
	}
	raw, err := json.Marshal(pool)
	if err != nil {
		return types.NetworkPool{}, "", types.NewInternal(err.Error())
	}
	etag, err := m.store.Create(ctx, storage.BucketPools, pool.UUID, raw)
	if err != nil {
		return types.NetworkPool{}, "", storeFailure(err, "failed to store pool")
	}

	log.Debug().Str("uuid", pool.UUID).Strs("networks", pool.Networks).Msg("network pool created")
	return pool, etag, nil
}

// Get returns a pool by uuid.
func (m *Pools) Get(ctx context.Context, id string) (types.NetworkPool, string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return types.NetworkPool{}, "", types.NewValidationError(types.InvalidParam("uuid", "invalid uuid"))
	}
	rec, err := m.store.Get(ctx, storage.BucketPools, id)
	if errors.Is(err, storage.ErrNotFound) {
		return types.NetworkPool{}, "", types.NewNotFound("network pool")
	}
	if err != nil {
		return types.NetworkPool{}, "", storeFailure(err, "failed to get pool")
	}
	var pool types.NetworkPool
	if err := json.Unmarshal(rec.Value, &pool); err != nil {
		return types.NetworkPool{}, "", types.NewInternal(fmt.Sprintf("corrupt pool record %s", id))
	}
	return pool, rec.Etag, nil
}

// List returns the pools matching the filter in creation order, plus the
// total match count before pagination.
func (m *Pools) List(ctx context.Context, filter types.PoolFilter, limit types.Limit) ([]types.NetworkPool, uint, error) {
	match, err := poolPredicate(filter)
	if err != nil {
		return nil, 0, err
	}
	pools, err := m.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	filtered := make([]types.NetworkPool, 0, len(pools))
	for _, p := range pools {
		if match(p) {
			filtered = append(filtered, p)
		}
	}
	return applyLimit(filtered, limit), uint(len(filtered)), nil
}

// Update applies the mutable fields. A non nil member list replaces the
// whole membership and is validated like a create.
func (m *Pools) Update(ctx context.Context, id string, u types.PoolUpdate, etag string) (types.NetworkPool, string, error) {
	pool, _, err := m.Get(ctx, id)
	if err != nil {
		return types.NetworkPool{}, "", err
	}

	var fields []types.FieldError
	if u.Name != nil {
		switch {
		case *u.Name == "":
			fields = append(fields, types.MissingParam("name"))
		case len(*u.Name) > 64:
			fields = append(fields, types.InvalidParam("name", "must be at most 64 characters"))
		default:
			pool.Name = *u.Name
		}
	}
	if u.Networks != nil {
		fields = append(fields, validatePoolParams(pool.Name, *u.Networks, nil)...)
		pool.Networks = *u.Networks
	}
	if u.OwnerUUIDs != nil {
		for _, o := range *u.OwnerUUIDs {
			if _, err := uuid.Parse(o); err != nil {
				fields = append(fields, types.InvalidParam("owner_uuids", fmt.Sprintf("invalid uuid %q", o)))
			}
		}
		pool.OwnerUUIDs = *u.OwnerUUIDs
	}
	if u.Description != nil {
		pool.Description = *u.Description
	}
	if len(fields) > 0 {
		return types.NetworkPool{}, "", types.NewValidationError(fields...)
	}

	if u.Networks != nil {
		family, nicTags, err := m.resolveMembers(ctx, pool.Networks)
		if err != nil {
			return types.NetworkPool{}, "", err
		}
		pool.Family = family
		pool.NicTags = nicTags
	}

	if u.Name != nil {
		pools, err := m.snapshot(ctx)
		if err != nil {
			return types.NetworkPool{}, "", err
		}
		for _, other := range pools {
			if other.UUID != pool.UUID && other.Name == pool.Name {
				return types.NetworkPool{}, "", types.NewValidationError(
					types.DuplicateParam("name", fmt.Sprintf("name already used by pool %s", other.UUID)))
			}
		}
	}

	raw, err := json.Marshal(pool)
	if err != nil {
		return types.NetworkPool{}, "", types.NewInternal(err.Error())
	}
	newEtag, err := m.store.Update(ctx, storage.BucketPools, pool.UUID, raw, etag)
	if errors.Is(err, storage.ErrNotFound) {
		return types.NetworkPool{}, "", types.NewNotFound("network pool")
	}
	if errors.Is(err, storage.ErrEtagMismatch) {
		return types.NetworkPool{}, "", types.NewPreconditionFailed(fmt.Sprintf("stale etag for pool %s", pool.UUID))
	}
	if err != nil {
		return types.NetworkPool{}, "", storeFailure(err, "failed to update pool")
	}

	log.Debug().Str("uuid", pool.UUID).Msg("network pool updated")
	return pool, newEtag, nil
}

// Delete removes a pool. Member networks are left in place.
func (m *Pools) Delete(ctx context.Context, id string, etag string) error {
	pool, _, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	err = m.store.Delete(ctx, storage.BucketPools, pool.UUID, etag)
	if errors.Is(err, storage.ErrNotFound) {
		return types.NewNotFound("network pool")
	}
	if errors.Is(err, storage.ErrEtagMismatch) {
		return types.NewPreconditionFailed(fmt.Sprintf("stale etag for pool %s", pool.UUID))
	}
	if err != nil {
		return storeFailure(err, "failed to delete pool")
	}

	log.Debug().Str("uuid", pool.UUID).Str("actor", actorFromCtx(ctx)).Msg("network pool deleted")
	return nil
}

// referencing returns the pools containing the given network.
func (m *Pools) referencing(ctx context.Context, networkUUID string) ([]types.NetworkPool, error) {
	pools, err := m.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.NetworkPool
	for _, p := range pools {
		if inList(p.Networks, networkUUID) {
			out = append(out, p)
		}
	}
	return out, nil
}

// snapshot returns all pools decoded from the store in creation order.
func (m *Pools) snapshot(ctx context.Context) ([]types.NetworkPool, error) {
	records, err := m.store.List(ctx, storage.BucketPools)
	if err != nil {
		return nil, storeFailure(err, "failed to list pools")
	}
	pools := make([]types.NetworkPool, 0, len(records))
	for _, rec := range records {
		var p types.NetworkPool
		if err := json.Unmarshal(rec.Value, &p); err != nil {
			return nil, types.NewInternal(fmt.Sprintf("corrupt pool record %s", rec.Key))
		}
		pools = append(pools, p)
	}
	return pools, nil
}

// resolveMembers fetches all member networks and derives the pool family
// and nic tag union. Unknown members and mixed families are validation
// errors naming the offending entries.
func (m *Pools) resolveMembers(ctx context.Context, members []string) (string, []string, error) {
	var fields []types.FieldError
	family := ""
	var nicTags []string
	for _, member := range members {
		n, _, err := m.networks.Get(ctx, member)
		if types.IsNotFound(err) {
			fields = append(fields, types.InvalidParam("networks", fmt.Sprintf("unknown network %s", member)))
			continue
		}
		if err != nil {
			return "", nil, err
		}
		if family == "" {
			family = n.Family
		} else if n.Family != family {
			fields = append(fields, types.InvalidParam("networks", "all networks must share the same address family"))
		}
		if !inList(nicTags, n.NicTag) {
			nicTags = append(nicTags, n.NicTag)
		}
	}
	if len(fields) > 0 {
		return "", nil, types.NewValidationError(fields...)
	}
	return family, nicTags, nil
}

// validatePoolParams checks the shape of a pool payload without touching
// the store.
func validatePoolParams(name string, members []string, owners []string) []types.FieldError {
	var fields []types.FieldError

	if name == "" {
		fields = append(fields, types.MissingParam("name"))
	} else if len(name) > 64 {
		fields = append(fields, types.InvalidParam("name", "must be at most 64 characters"))
	}

	if len(members) == 0 {
		fields = append(fields, types.MissingParam("networks"))
	} else if len(members) > types.MaxPoolNetworks {
		fields = append(fields, types.InvalidParam("networks", fmt.Sprintf("must have at most %d networks", types.MaxPoolNetworks)))
	}
	seen := map[string]bool{}
	for _, member := range members {
		if _, err := uuid.Parse(member); err != nil {
			fields = append(fields, types.InvalidParam("networks", fmt.Sprintf("invalid uuid %q", member)))
			continue
		}
		if seen[member] {
			fields = append(fields, types.DuplicateParam("networks", fmt.Sprintf("network %s listed twice", member)))
		}
		seen[member] = true
	}

	for _, o := range owners {
		if _, err := uuid.Parse(o); err != nil {
			fields = append(fields, types.InvalidParam("owner_uuids", fmt.Sprintf("invalid uuid %q", o)))
		}
	}
	return fields
}
