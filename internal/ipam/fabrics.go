package ipam

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/isabella232/sdc-napi/internal/storage"
	"github.com/isabella232/sdc-napi/pkg/types"
)

// vnetAllocAttempts bounds the random probes for a free overlay id.
const vnetAllocAttempts = 20

// Fabrics manages tenant overlay networking: per owner VLAN namespaces
// and the fabric networks living on them. Every owner gets one vnet id,
// allocated on first use and shared by all their fabric VLANs.
type Fabrics struct {
	store     storage.Store
	networks  *Networks
	fabricTag string
}

// CreateVLAN registers a VLAN in the owner's namespace. The (owner,
// vlan_id) pair is claimed atomically, a second create on the same pair
// fails as a duplicate.
func (m *Fabrics) CreateVLAN(ctx context.Context, owner string, p types.VLANCreate) (types.FabricVLAN, string, error) {
	var fields []types.FieldError
	if _, err := uuid.Parse(owner); err != nil {
		fields = append(fields, types.InvalidParam("owner_uuid", "invalid uuid"))
	}
	if p.Name == "" {
		fields = append(fields, types.MissingParam("name"))
	} else if len(p.Name) > 64 {
		fields = append(fields, types.InvalidParam("name", "must be at most 64 characters"))
	}
	if p.VlanID < types.MinVlanID || p.VlanID > types.MaxVlanID {
		fields = append(fields, types.InvalidParam("vlan_id", "must be between 0 and 4094"))
	}
	if len(fields) > 0 {
		return types.FabricVLAN{}, "", types.NewValidationError(fields...)
	}

	vnetID, err := m.ensureVnet(ctx, owner)
	if err != nil {
		return types.FabricVLAN{}, "", err
	}

	vlan := types.FabricVLAN{
		OwnerUUID:   owner,
		VlanID:      p.VlanID,
		Name:        p.Name,
		VnetID:      vnetID,
		Description: p.Description,
	}
	raw, err := json.Marshal(vlan)
	if err != nil {
		return types.FabricVLAN{}, "", types.NewInternal(err.Error())
	}
	etag, err := m.store.Create(ctx, storage.BucketVLANs, vlanKey(owner, p.VlanID), raw)
	if errors.Is(err, storage.ErrExists) {
		return types.FabricVLAN{}, "", types.NewValidationError(
			types.DuplicateParam("vlan_id", fmt.Sprintf("vlan %d already exists", p.VlanID)))
	}
	if err != nil {
		return types.FabricVLAN{}, "", storeFailure(err, "failed to store vlan")
	}

	log.Debug().Str("owner", owner).Int("vlan_id", p.VlanID).Uint32("vnet_id", vnetID).Msg("fabric vlan created")
	return vlan, etag, nil
}

// GetVLAN returns one VLAN from the owner's namespace.
func (m *Fabrics) GetVLAN(ctx context.Context, owner string, vlanID int) (types.FabricVLAN, string, error) {
	if err := checkVLANPath(owner, vlanID); err != nil {
		return types.FabricVLAN{}, "", err
	}
	rec, err := m.store.Get(ctx, storage.BucketVLANs, vlanKey(owner, vlanID))
	if errors.Is(err, storage.ErrNotFound) {
		return types.FabricVLAN{}, "", types.NewNotFound("vlan")
	}
	if err != nil {
		return types.FabricVLAN{}, "", storeFailure(err, "failed to get vlan")
	}
	var vlan types.FabricVLAN
	if err := json.Unmarshal(rec.Value, &vlan); err != nil {
		return types.FabricVLAN{}, "", types.NewInternal(fmt.Sprintf("corrupt vlan record %s", rec.Key))
	}
	return vlan, rec.Etag, nil
}

// ListVLANs returns the owner's VLANs matching the filter in creation
// order, plus the total match count before pagination.
func (m *Fabrics) ListVLANs(ctx context.Context, owner string, filter types.VLANFilter, limit types.Limit) ([]types.FabricVLAN, uint, error) {
	if _, err := uuid.Parse(owner); err != nil {
		return nil, 0, types.NewValidationError(types.InvalidParam("owner_uuid", "invalid uuid"))
	}
	records, err := m.store.List(ctx, storage.BucketVLANs)
	if err != nil {
		return nil, 0, storeFailure(err, "failed to list vlans")
	}
	match := vlanPredicate(filter)
	filtered := make([]types.FabricVLAN, 0, len(records))
	for _, rec := range records {
		var vlan types.FabricVLAN
		if err := json.Unmarshal(rec.Value, &vlan); err != nil {
			return nil, 0, types.NewInternal(fmt.Sprintf("corrupt vlan record %s", rec.Key))
		}
		if vlan.OwnerUUID == owner && match(vlan) {
			filtered = append(filtered, vlan)
		}
	}
	return applyLimit(filtered, limit), uint(len(filtered)), nil
}

// UpdateVLAN applies the mutable fields. The vlan id, owner and vnet id
// are fixed at creation.
func (m *Fabrics) UpdateVLAN(ctx context.Context, owner string, vlanID int, u types.VLANUpdate, etag string) (types.FabricVLAN, string, error) {
	vlan, _, err := m.GetVLAN(ctx, owner, vlanID)
	if err != nil {
		return types.FabricVLAN{}, "", err
	}

	var fields []types.FieldError
	if u.Name != nil {
		switch {
		case *u.Name == "":
			fields = append(fields, types.MissingParam("name"))
		case len(*u.Name) > 64:
			fields = append(fields, types.InvalidParam("name", "must be at most 64 characters"))
		default:
			vlan.Name = *u.Name
		}
	}
	if u.Description != nil {
		vlan.Description = *u.Description
	}
	if len(fields) > 0 {
		return types.FabricVLAN{}, "", types.NewValidationError(fields...)
	}

	raw, err := json.Marshal(vlan)
	if err != nil {
		return types.FabricVLAN{}, "", types.NewInternal(err.Error())
	}
	newEtag, err := m.store.Update(ctx, storage.BucketVLANs, vlanKey(owner, vlanID), raw, etag)
	if errors.Is(err, storage.ErrNotFound) {
		return types.FabricVLAN{}, "", types.NewNotFound("vlan")
	}
	if errors.Is(err, storage.ErrEtagMismatch) {
		return types.FabricVLAN{}, "", types.NewPreconditionFailed(fmt.Sprintf("stale etag for vlan %d", vlanID))
	}
	if err != nil {
		return types.FabricVLAN{}, "", storeFailure(err, "failed to update vlan")
	}

	log.Debug().Str("owner", owner).Int("vlan_id", vlanID).Msg("fabric vlan updated")
	return vlan, newEtag, nil
}

// DeleteVLAN removes a VLAN once no fabric network lives on it. The
// owner's vnet id stays allocated for their other VLANs.
func (m *Fabrics) DeleteVLAN(ctx context.Context, owner string, vlanID int, etag string) error {
	if _, _, err := m.GetVLAN(ctx, owner, vlanID); err != nil {
		return err
	}

	networks, err := m.networks.snapshot(ctx)
	if err != nil {
		return err
	}
	var blockers []types.FieldError
	for _, n := range networks {
		if n.Fabric && n.OwnerUUID == owner && n.VlanID == vlanID {
			blockers = append(blockers, types.UsedBy("network", n.UUID))
		}
	}
	if len(blockers) > 0 {
		return types.NewInUse("vlan", blockers...)
	}

	err = m.store.Delete(ctx, storage.BucketVLANs, vlanKey(owner, vlanID), etag)
	if errors.Is(err, storage.ErrNotFound) {
		return types.NewNotFound("vlan")
	}
	if errors.Is(err, storage.ErrEtagMismatch) {
		return types.NewPreconditionFailed(fmt.Sprintf("stale etag for vlan %d", vlanID))
	}
	if err != nil {
		return storeFailure(err, "failed to delete vlan")
	}

	log.Debug().Str("owner", owner).Int("vlan_id", vlanID).Str("actor", actorFromCtx(ctx)).Msg("fabric vlan deleted")
	return nil
}

// CreateNetwork provisions a fabric network on an existing VLAN. The nic
// tag comes from the fabric configuration, the vnet id from the VLAN, and
// the owner list is pinned to the tenant.
func (m *Fabrics) CreateNetwork(ctx context.Context, owner string, vlanID int, p types.FabricNetworkCreate) (types.Network, string, error) {
	vlan, _, err := m.GetVLAN(ctx, owner, vlanID)
	if err != nil {
		return types.Network{}, "", err
	}

	create := types.NetworkCreate{
		Name:             p.Name,
		Subnet:           p.Subnet,
		VlanID:           vlanID,
		NicTag:           m.fabricTag,
		Gateway:          p.Gateway,
		Resolvers:        p.Resolvers,
		Routes:           p.Routes,
		MTU:              p.MTU,
		ProvisionStartIP: p.ProvisionStartIP,
		ProvisionEndIP:   p.ProvisionEndIP,
		OwnerUUIDs:       []string{owner},
		Description:      p.Description,
	}
	n, info, err := m.networks.buildNetwork(create, true)
	if err != nil {
		return types.Network{}, "", err
	}
	n.Fabric = true
	n.OwnerUUID = owner
	n.VnetID = vlan.VnetID

	return m.networks.persist(ctx, n, info)
}

// GetNetwork returns a fabric network addressed by its full path. A
// network outside the (owner, vlan) pair is reported as not found.
func (m *Fabrics) GetNetwork(ctx context.Context, owner string, vlanID int, id string) (types.Network, string, error) {
	if err := checkVLANPath(owner, vlanID); err != nil {
		return types.Network{}, "", err
	}
	n, etag, err := m.networks.Get(ctx, id)
	if err != nil {
		return types.Network{}, "", err
	}
	if !n.Fabric || n.OwnerUUID != owner || n.VlanID != vlanID {
		return types.Network{}, "", types.NewNotFound("network")
	}
	return n, etag, nil
}

// ListNetworks returns the fabric networks on one VLAN in creation order,
// plus the total match count before pagination.
func (m *Fabrics) ListNetworks(ctx context.Context, owner string, vlanID int, limit types.Limit) ([]types.Network, uint, error) {
	if _, _, err := m.GetVLAN(ctx, owner, vlanID); err != nil {
		return nil, 0, err
	}
	networks, err := m.networks.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	filtered := make([]types.Network, 0, len(networks))
	for _, n := range networks {
		if n.Fabric && n.OwnerUUID == owner && n.VlanID == vlanID {
			filtered = append(filtered, n)
		}
	}
	return applyLimit(filtered, limit), uint(len(filtered)), nil
}

// DeleteNetwork removes a fabric network addressed by its full path.
func (m *Fabrics) DeleteNetwork(ctx context.Context, owner string, vlanID int, id string, opts DeleteOpts) error {
	n, _, err := m.GetNetwork(ctx, owner, vlanID, id)
	if err != nil {
		return err
	}
	return m.networks.Delete(ctx, n.UUID, opts)
}

// ensureVnet returns the owner's vnet id, allocating one on first use.
// The id is claimed in the vnet bucket before it is bound to the owner,
// so two owners can never share an id. When two requests race for the
// same owner the loser releases its claim and adopts the winner's id.
func (m *Fabrics) ensureVnet(ctx context.Context, owner string) (uint32, error) {
	rec, err := m.store.Get(ctx, storage.BucketOwners, owner)
	if err == nil {
		var ov ownerVnet
		if err := json.Unmarshal(rec.Value, &ov); err != nil {
			return 0, types.NewInternal(fmt.Sprintf("corrupt vnet record for owner %s", owner))
		}
		return ov.VnetID, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return 0, storeFailure(err, "failed to look up vnet id")
	}

	claim, err := json.Marshal(vnetClaim{OwnerUUID: owner})
	if err != nil {
		return 0, types.NewInternal(err.Error())
	}
	for i := 0; i < vnetAllocAttempts; i++ {
		candidate := uint32(rand.Intn(types.MaxVnetID-types.MinVnetID+1) + types.MinVnetID)
		key := strconv.FormatUint(uint64(candidate), 10)
		if _, err := m.store.Create(ctx, storage.BucketVnets, key, claim); err != nil {
			if errors.Is(err, storage.ErrExists) {
				continue
			}
			return 0, storeFailure(err, "failed to claim vnet id")
		}

		bound, err := json.Marshal(ownerVnet{VnetID: candidate})
		if err != nil {
			return 0, types.NewInternal(err.Error())
		}
		_, err = m.store.Create(ctx, storage.BucketOwners, owner, bound)
		if err == nil {
			log.Debug().Str("owner", owner).Uint32("vnet_id", candidate).Msg("vnet id allocated")
			return candidate, nil
		}
		if errors.Is(err, storage.ErrExists) {
			// another request bound this owner first, back out our claim
			_ = m.store.Delete(ctx, storage.BucketVnets, key, "")
			return m.ensureVnet(ctx, owner)
		}
		return 0, storeFailure(err, "failed to bind vnet id")
	}
	return 0, types.NewInternal("unable to allocate a vnet id")
}

// checkVLANPath validates the owner and vlan path parameters.
func checkVLANPath(owner string, vlanID int) error {
	var fields []types.FieldError
	if _, err := uuid.Parse(owner); err != nil {
		fields = append(fields, types.InvalidParam("owner_uuid", "invalid uuid"))
	}
	if vlanID < types.MinVlanID || vlanID > types.MaxVlanID {
		fields = append(fields, types.InvalidParam("vlan_id", "must be between 0 and 4094"))
	}
	if len(fields) > 0 {
		return types.NewValidationError(fields...)
	}
	return nil
}

// vlanKey builds the store key of a fabric VLAN.
func vlanKey(owner string, vlanID int) string {
	return fmt.Sprintf("%s/%d", owner, vlanID)
}

type ownerVnet struct {
	VnetID uint32 `json:"vnet_id"`
}

type vnetClaim struct {
	OwnerUUID string `json:"owner_uuid"`
}
