package ipam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/netip"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/isabella232/sdc-napi/internal/nictags"
	"github.com/isabella232/sdc-napi/internal/storage"
	"github.com/isabella232/sdc-napi/pkg/subnet"
	"github.com/isabella232/sdc-napi/pkg/types"
)

// Networks manages the logical network inventory. Writes go through the
// store's conditional primitives; overlap and name checks read a snapshot
// first, so two racing creates can in theory both pass the check. That
// window is accepted, the inventory is small and mutations are rare.
type Networks struct {
	store storage.Store
	tags  nictags.Checker
	pools *Pools
}

// DeleteOpts control a network delete.
type DeleteOpts struct {
	// Force skips the tenant reservation check.
	Force bool
	// Etag makes the delete conditional when set.
	Etag string
	// FromPool excludes one pool from the in-use check. Set when the
	// delete runs as part of removing the network from that pool.
	FromPool string
}

// Create validates the payload, derives the subnet properties, checks the
// inventory for conflicts and persists the network together with its
// infrastructure ip records.
func (m *Networks) Create(ctx context.Context, p types.NetworkCreate) (types.Network, string, error) {
	n, info, err := m.buildNetwork(p, false)
	if err != nil {
		return types.Network{}, "", err
	}
	return m.persist(ctx, n, info)
}

// Get returns a network by uuid. The name "admin" is accepted as an alias
// for the administrative network.
func (m *Networks) Get(ctx context.Context, id string) (types.Network, string, error) {
	if id == types.AdminNetworkName {
		networks, err := m.snapshot(ctx)
		if err != nil {
			return types.Network{}, "", err
		}
		for _, n := range networks {
			if !n.Fabric && n.Name == types.AdminNetworkName {
				return m.Get(ctx, n.UUID)
			}
		}
		return types.Network{}, "", types.NewNotFound("network")
	}

	if _, err := uuid.Parse(id); err != nil {
		return types.Network{}, "", types.NewValidationError(types.InvalidParam("uuid", "invalid uuid"))
	}
	rec, err := m.store.Get(ctx, storage.BucketNetworks, id)
	if errors.Is(err, storage.ErrNotFound) {
		return types.Network{}, "", types.NewNotFound("network")
	}
	if err != nil {
		return types.Network{}, "", storeFailure(err, "failed to get network")
	}
	var n types.Network
	if err := json.Unmarshal(rec.Value, &n); err != nil {
		return types.Network{}, "", types.NewInternal(fmt.Sprintf("corrupt network record %s", id))
	}
	return n, rec.Etag, nil
}

// List returns the networks matching the filter in creation order, plus
// the total match count before pagination.
func (m *Networks) List(ctx context.Context, filter types.NetworkFilter, limit types.Limit) ([]types.Network, uint, error) {
	match, err := networkPredicate(filter)
	if err != nil {
		return nil, 0, err
	}
	networks, err := m.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	filtered := make([]types.Network, 0, len(networks))
	for _, n := range networks {
		if match(n) {
			filtered = append(filtered, n)
		}
	}
	return applyLimit(filtered, limit), uint(len(filtered)), nil
}

// Update applies the mutable fields and writes the network back. With a
// non empty etag the write fails on a concurrent change.
func (m *Networks) Update(ctx context.Context, id string, u types.NetworkUpdate, etag string) (types.Network, string, error) {
	n, _, err := m.Get(ctx, id)
	if err != nil {
		return types.Network{}, "", err
	}

	updated, info, err := applyNetworkUpdate(n, u)
	if err != nil {
		return types.Network{}, "", err
	}

	if updated.Name != n.Name {
		networks, err := m.snapshot(ctx)
		if err != nil {
			return types.Network{}, "", err
		}
		if other := findName(networks, updated); other != "" {
			return types.Network{}, "", types.NewValidationError(
				types.DuplicateParam("name", fmt.Sprintf("name already used by network %s", other)))
		}
	}

	raw, err := json.Marshal(updated)
	if err != nil {
		return types.Network{}, "", types.NewInternal(err.Error())
	}
	newEtag, err := m.store.Update(ctx, storage.BucketNetworks, n.UUID, raw, etag)
	if errors.Is(err, storage.ErrNotFound) {
		return types.Network{}, "", types.NewNotFound("network")
	}
	if errors.Is(err, storage.ErrEtagMismatch) {
		return types.Network{}, "", types.NewPreconditionFailed(fmt.Sprintf("stale etag for network %s", n.UUID))
	}
	if err != nil {
		return types.Network{}, "", storeFailure(err, "failed to update network")
	}

	// a moved gateway or new resolver gets its reservation seeded; stale
	// infrastructure records are left for the operator to free
	if err := m.seedInfra(ctx, updated, info); err != nil {
		log.Warn().Err(err).Str("uuid", n.UUID).Msg("failed to seed infrastructure records")
	}

	log.Debug().Str("uuid", n.UUID).Msg("network updated")
	return updated, newEtag, nil
}

// Delete removes a network and its ip records. It refuses while pools
// reference the network, and without Force while tenant reservations
// exist.
func (m *Networks) Delete(ctx context.Context, id string, opts DeleteOpts) error {
	n, _, err := m.Get(ctx, id)
	if err != nil {
		return err
	}

	pools, err := m.pools.referencing(ctx, n.UUID)
	if err != nil {
		return err
	}
	var blockers []types.FieldError
	for _, p := range pools {
		if p.UUID == opts.FromPool {
			continue
		}
		blockers = append(blockers, types.UsedBy("network_pool", p.UUID))
	}
	if len(blockers) > 0 {
		return types.NewInUse("network", blockers...)
	}

	if !opts.Force {
		records, err := loadIPRecords(ctx, m.store, n.UUID)
		if err != nil {
			return err
		}
		for _, r := range records {
			if !r.Free && !r.Infrastructure() {
				blockers = append(blockers, types.UsedBy(r.BelongsToType, r.BelongsToUUID))
			}
		}
		if len(blockers) > 0 {
			return types.NewInUse("network", blockers...)
		}
	}

	err = m.store.Delete(ctx, storage.BucketNetworks, n.UUID, opts.Etag)
	if errors.Is(err, storage.ErrNotFound) {
		return types.NewNotFound("network")
	}
	if errors.Is(err, storage.ErrEtagMismatch) {
		return types.NewPreconditionFailed(fmt.Sprintf("stale etag for network %s", n.UUID))
	}
	if err != nil {
		return storeFailure(err, "failed to delete network")
	}

	if err := m.store.DropBucket(ctx, storage.IPBucket(n.UUID)); err != nil {
		return storeFailure(err, fmt.Sprintf("failed to drop ip records of network %s", n.UUID))
	}

	log.Debug().Str("uuid", n.UUID).Str("actor", actorFromCtx(ctx)).Msg("network deleted")
	return nil
}

// buildNetwork validates a create payload and derives the stored entity.
// All field errors are collected before returning. Fabric networks skip
// the nic tag registry check since their tag comes from configuration.
func (m *Networks) buildNetwork(p types.NetworkCreate, fabric bool) (types.Network, subnet.Info, error) {
	var fields []types.FieldError

	if p.Name == "" {
		fields = append(fields, types.MissingParam("name"))
	} else if len(p.Name) > 64 {
		fields = append(fields, types.InvalidParam("name", "must be at most 64 characters"))
	}

	var info subnet.Info
	subnetOK := false
	if p.Subnet == "" {
		fields = append(fields, types.MissingParam("subnet"))
	} else {
		var err error
		if info, err = subnet.Parse(p.Subnet); err != nil {
			fields = append(fields, types.InvalidParam("subnet", err.Error()))
		} else if _, _, ok := info.UsableRange(); !ok {
			fields = append(fields, types.InvalidParam("subnet", "subnet has no usable addresses"))
		} else {
			subnetOK = true
		}
	}

	if p.VlanID < types.MinVlanID || p.VlanID > types.MaxVlanID {
		fields = append(fields, types.InvalidParam("vlan_id", "must be between 0 and 4094"))
	}

	if p.NicTag == "" {
		fields = append(fields, types.MissingParam("nic_tag"))
	} else if !fabric && !m.tags.Exists(p.NicTag) {
		fields = append(fields, types.InvalidParam("nic_tag", "nic tag does not exist"))
	}

	mtu := p.MTU
	if mtu == 0 {
		mtu = types.DefaultMTU
	}
	if mtu < types.MinMTU || mtu > types.MaxMTU {
		fields = append(fields, types.InvalidParam("mtu", fmt.Sprintf("must be between %d and %d", types.MinMTU, types.MaxMTU)))
	}

	gateway := ""
	if p.Gateway != "" {
		gw, err := subnet.ParseAddr(p.Gateway)
		if err != nil {
			fields = append(fields, types.InvalidParam("gateway", "invalid IP address"))
		} else if subnetOK && !info.InUsableRange(gw) {
			fields = append(fields, types.InvalidParam("gateway", "must be within the subnet"))
		} else {
			gateway = gw.String()
		}
	}

	resolvers := make([]string, 0, len(p.Resolvers))
	for _, r := range p.Resolvers {
		a, err := subnet.ParseAddr(r)
		if err != nil {
			fields = append(fields, types.InvalidParam("resolvers", fmt.Sprintf("invalid IP address %q", r)))
			continue
		}
		if subnetOK && subnet.AddrFamily(a) != info.Family() {
			fields = append(fields, types.InvalidParam("resolvers", fmt.Sprintf("address family mismatch for %q", r)))
			continue
		}
		resolvers = append(resolvers, a.String())
	}

	for dest, via := range p.Routes {
		if _, err := subnet.Parse(dest); err != nil {
			if _, err := subnet.ParseAddr(dest); err != nil {
				fields = append(fields, types.InvalidParam("routes", fmt.Sprintf("invalid destination %q", dest)))
			}
		}
		if _, err := subnet.ParseAddr(via); err != nil {
			fields = append(fields, types.InvalidParam("routes", fmt.Sprintf("invalid gateway %q", via)))
		}
	}

	start := m.provisionBound(&fields, info, subnetOK, "provision_start_ip", p.ProvisionStartIP)
	end := m.provisionBound(&fields, info, subnetOK, "provision_end_ip", p.ProvisionEndIP)
	if start.IsValid() && end.IsValid() && start.Compare(end) > 0 {
		fields = append(fields, types.InvalidParam("provision_start_ip", "provision_start_ip must not be after provision_end_ip"))
	}

	for _, o := range p.OwnerUUIDs {
		if _, err := uuid.Parse(o); err != nil {
			fields = append(fields, types.InvalidParam("owner_uuids", fmt.Sprintf("invalid uuid %q", o)))
		}
	}

	if len(fields) > 0 {
		return types.Network{}, subnet.Info{}, types.NewValidationError(fields...)
	}

	n := types.Network{
		UUID:             uuid.NewString(),
		Name:             p.Name,
		Subnet:           info.String(),
		Netmask:          info.Netmask(),
		Family:           info.Family(),
		VlanID:           p.VlanID,
		NicTag:           p.NicTag,
		Gateway:          gateway,
		Resolvers:        resolvers,
		Routes:           p.Routes,
		MTU:              mtu,
		ProvisionStartIP: start.String(),
		ProvisionEndIP:   end.String(),
		OwnerUUIDs:       p.OwnerUUIDs,
		Description:      p.Description,
	}
	return n, info, nil
}

// provisionBound validates one end of the provision range.
func (m *Networks) provisionBound(fields *[]types.FieldError, info subnet.Info, subnetOK bool, name, value string) netip.Addr {
	if value == "" {
		*fields = append(*fields, types.MissingParam(name))
		return netip.Addr{}
	}
	a, err := subnet.ParseAddr(value)
	if err != nil {
		*fields = append(*fields, types.InvalidParam(name, "invalid IP address"))
		return netip.Addr{}
	}
	if subnetOK && !info.InUsableRange(a) {
		*fields = append(*fields, types.InvalidParam(name, "must be within the subnet's usable range"))
		return netip.Addr{}
	}
	return a
}

// persist checks the new network against the inventory, writes it and
// seeds its infrastructure records. On a seeding failure the network is
// rolled back.
func (m *Networks) persist(ctx context.Context, n types.Network, info subnet.Info) (types.Network, string, error) {
	existing, err := m.snapshot(ctx)
	if err != nil {
		return types.Network{}, "", err
	}

	if other := findName(existing, n); other != "" {
		return types.Network{}, "", types.NewValidationError(
			types.DuplicateParam("name", fmt.Sprintf("name already used by network %s", other)))
	}
	for _, other := range existing {
		if !overlapScope(n, other) {
			continue
		}
		otherInfo, err := subnet.Parse(other.Subnet)
		if err != nil {
			continue
		}
		if info.Overlaps(otherInfo) {
			return types.Network{}, "", types.NewSubnetConflict(other.UUID)
		}
	}

	raw, err := json.Marshal(n)
	if err != nil {
		return types.Network{}, "", types.NewInternal(err.Error())
	}
	etag, err := m.store.Create(ctx, storage.BucketNetworks, n.UUID, raw)
	if err != nil {
		return types.Network{}, "", storeFailure(err, "failed to store network")
	}

	if err := m.seedInfra(ctx, n, info); err != nil {
		_ = m.store.Delete(ctx, storage.BucketNetworks, n.UUID, "")
		_ = m.store.DropBucket(ctx, storage.IPBucket(n.UUID))
		return types.Network{}, "", err
	}

	log.Debug().Str("uuid", n.UUID).Str("subnet", n.Subnet).Bool("fabric", n.Fabric).Msg("network created")
	return n, etag, nil
}

// seedInfra reserves the gateway and the in subnet resolvers. Records that
// already exist are left alone.
func (m *Networks) seedInfra(ctx context.Context, n types.Network, info subnet.Info) error {
	var addrs []string
	if n.Gateway != "" {
		addrs = append(addrs, n.Gateway)
	}
	for _, r := range n.Resolvers {
		a, err := subnet.ParseAddr(r)
		if err != nil || !info.Contains(a) {
			continue
		}
		addrs = append(addrs, a.String())
	}

	var result *multierror.Error
	for _, ip := range addrs {
		rec := types.IPRecord{
			IP:            ip,
			NetworkUUID:   n.UUID,
			BelongsToUUID: n.UUID,
			BelongsToType: types.BelongsToOther,
			Reserved:      true,
			Free:          false,
		}
		raw, err := json.Marshal(rec)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if _, err := m.store.Create(ctx, storage.IPBucket(n.UUID), ip, raw); err != nil && !errors.Is(err, storage.ErrExists) {
			result = multierror.Append(result, errors.Wrapf(err, "failed to seed record for %s", ip))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return types.NewStoreUnavailable(err)
	}
	return nil
}

// snapshot returns all networks decoded from the store in creation order.
func (m *Networks) snapshot(ctx context.Context) ([]types.Network, error) {
	records, err := m.store.List(ctx, storage.BucketNetworks)
	if err != nil {
		return nil, storeFailure(err, "failed to list networks")
	}
	networks := make([]types.Network, 0, len(records))
	for _, rec := range records {
		var n types.Network
		if err := json.Unmarshal(rec.Value, &n); err != nil {
			return nil, types.NewInternal(fmt.Sprintf("corrupt network record %s", rec.Key))
		}
		networks = append(networks, n)
	}
	return networks, nil
}

// findName returns the uuid of a network already holding n's name inside
// n's naming scope, or "" when the name is free. Non fabric names are
// global, fabric names are scoped per owner.
func findName(existing []types.Network, n types.Network) string {
	for _, other := range existing {
		if other.UUID == n.UUID || other.Name != n.Name {
			continue
		}
		if n.Fabric != other.Fabric {
			continue
		}
		if n.Fabric && n.OwnerUUID != other.OwnerUUID {
			continue
		}
		return other.UUID
	}
	return ""
}

// overlapScope reports whether two networks compete for address space.
// Plain networks conflict on the same nic tag, fabric networks only
// within the same owner and vlan.
func overlapScope(n, other types.Network) bool {
	if n.Fabric != other.Fabric {
		return false
	}
	if n.Fabric {
		return n.OwnerUUID == other.OwnerUUID && n.VlanID == other.VlanID
	}
	return n.NicTag == other.NicTag
}

// applyNetworkUpdate validates the mutable fields of an update payload
// against the network's subnet and returns the updated entity.
func applyNetworkUpdate(n types.Network, u types.NetworkUpdate) (types.Network, subnet.Info, error) {
	info, err := subnet.Parse(n.Subnet)
	if err != nil {
		return types.Network{}, subnet.Info{}, types.NewInternal(fmt.Sprintf("corrupt subnet on network %s", n.UUID))
	}

	var fields []types.FieldError

	if u.Name != nil {
		switch {
		case *u.Name == "":
			fields = append(fields, types.MissingParam("name"))
		case len(*u.Name) > 64:
			fields = append(fields, types.InvalidParam("name", "must be at most 64 characters"))
		default:
			n.Name = *u.Name
		}
	}

	if u.Gateway != nil {
		if *u.Gateway == "" {
			n.Gateway = ""
		} else if gw, err := subnet.ParseAddr(*u.Gateway); err != nil {
			fields = append(fields, types.InvalidParam("gateway", "invalid IP address"))
		} else if !info.InUsableRange(gw) {
			fields = append(fields, types.InvalidParam("gateway", "must be within the subnet"))
		} else {
			n.Gateway = gw.String()
		}
	}

	if u.Resolvers != nil {
		resolvers := make([]string, 0, len(*u.Resolvers))
		for _, r := range *u.Resolvers {
			a, err := subnet.ParseAddr(r)
			if err != nil {
				fields = append(fields, types.InvalidParam("resolvers", fmt.Sprintf("invalid IP address %q", r)))
				continue
			}
			if subnet.AddrFamily(a) != info.Family() {
				fields = append(fields, types.InvalidParam("resolvers", fmt.Sprintf("address family mismatch for %q", r)))
				continue
			}
			resolvers = append(resolvers, a.String())
		}
		n.Resolvers = resolvers
	}

	if u.Routes != nil {
		for dest, via := range *u.Routes {
			if _, err := subnet.Parse(dest); err != nil {
				if _, err := subnet.ParseAddr(dest); err != nil {
					fields = append(fields, types.InvalidParam("routes", fmt.Sprintf("invalid destination %q", dest)))
				}
			}
			if _, err := subnet.ParseAddr(via); err != nil {
				fields = append(fields, types.InvalidParam("routes", fmt.Sprintf("invalid gateway %q", via)))
			}
		}
		n.Routes = *u.Routes
	}

	if u.MTU != nil {
		if *u.MTU < types.MinMTU || *u.MTU > types.MaxMTU {
			fields = append(fields, types.InvalidParam("mtu", fmt.Sprintf("must be between %d and %d", types.MinMTU, types.MaxMTU)))
		} else {
			n.MTU = *u.MTU
		}
	}

	if u.ProvisionStartIP != nil {
		if a, ok := updateBound(&fields, info, "provision_start_ip", *u.ProvisionStartIP); ok {
			n.ProvisionStartIP = a.String()
		}
	}
	if u.ProvisionEndIP != nil {
		if a, ok := updateBound(&fields, info, "provision_end_ip", *u.ProvisionEndIP); ok {
			n.ProvisionEndIP = a.String()
		}
	}
	start, serr := subnet.ParseAddr(n.ProvisionStartIP)
	end, eerr := subnet.ParseAddr(n.ProvisionEndIP)
	if serr == nil && eerr == nil && start.Compare(end) > 0 {
		fields = append(fields, types.InvalidParam("provision_start_ip", "provision_start_ip must not be after provision_end_ip"))
	}

	if u.OwnerUUIDs != nil {
		for _, o := range *u.OwnerUUIDs {
			if _, err := uuid.Parse(o); err != nil {
				fields = append(fields, types.InvalidParam("owner_uuids", fmt.Sprintf("invalid uuid %q", o)))
			}
		}
		n.OwnerUUIDs = *u.OwnerUUIDs
	}

	if u.Description != nil {
		n.Description = *u.Description
	}

	if len(fields) > 0 {
		return types.Network{}, subnet.Info{}, types.NewValidationError(fields...)
	}
	return n, info, nil
}

// updateBound validates one provision range endpoint of an update.
func updateBound(fields *[]types.FieldError, info subnet.Info, name, value string) (netip.Addr, bool) {
	if value == "" {
		*fields = append(*fields, types.MissingParam(name))
		return netip.Addr{}, false
	}
	a, err := subnet.ParseAddr(value)
	if err != nil {
		*fields = append(*fields, types.InvalidParam(name, "invalid IP address"))
		return netip.Addr{}, false
	}
	if !info.InUsableRange(a) {
		*fields = append(*fields, types.InvalidParam(name, "must be within the subnet's usable range"))
		return netip.Addr{}, false
	}
	return a, true
}
