package ipam

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/isabella232/sdc-napi/pkg/types"
)

// List filtering works on entity snapshots. Each filter compiles into a
// pure predicate; params combine with AND, list valued params match when
// any element matches.

var uuidPrefixChars = regexp.MustCompile(`^[0-9a-f-]+$`)

// uuidMatcher compiles the uuid filter param. A single trailing *
// matches uuids by prefix, anything else has to be a full uuid.
func uuidMatcher(expr string) (func(string) bool, error) {
	expr = strings.ToLower(expr)

	switch strings.Count(expr, "*") {
	case 0:
		if _, err := uuid.Parse(expr); err != nil {
			return nil, types.NewValidationError(types.InvalidParam("uuid", "invalid uuid"))
		}
		return func(id string) bool {
			return strings.ToLower(id) == expr
		}, nil
	case 1:
		if !strings.HasSuffix(expr, "*") {
			return nil, types.NewValidationError(types.InvalidParam("uuid", "only UUID prefixes are allowed"))
		}
		prefix := strings.TrimSuffix(expr, "*")
		if prefix != "" && !uuidPrefixChars.MatchString(prefix) {
			return nil, types.NewValidationError(types.InvalidParam("uuid", "invalid uuid prefix"))
		}
		return func(id string) bool {
			return strings.HasPrefix(strings.ToLower(id), prefix)
		}, nil
	default:
		return nil, types.NewValidationError(types.InvalidParam("uuid", "need only 1 wildcard"))
	}
}

// ownerParam validates a filter param that has to hold a plain uuid.
func ownerParam(field, value string) (string, error) {
	if _, err := uuid.Parse(value); err != nil {
		return "", types.NewValidationError(types.InvalidParam(field, "invalid uuid"))
	}
	return value, nil
}

func inList(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// networkPredicate compiles a network filter. Param validation errors
// surface here, before anything is read from the store.
func networkPredicate(f types.NetworkFilter) (func(types.Network) bool, error) {
	var matchUUID func(string) bool
	if f.UUID != nil {
		var err error
		if matchUUID, err = uuidMatcher(*f.UUID); err != nil {
			return nil, err
		}
	}
	if f.OwnerUUID != nil {
		if _, err := ownerParam("owner_uuid", *f.OwnerUUID); err != nil {
			return nil, err
		}
	}
	if f.ProvisionableBy != nil {
		if _, err := ownerParam("provisionable_by", *f.ProvisionableBy); err != nil {
			return nil, err
		}
	}

	return func(n types.Network) bool {
		if matchUUID != nil && !matchUUID(n.UUID) {
			return false
		}
		if len(f.Name) != 0 && !inList(f.Name, n.Name) {
			return false
		}
		if len(f.NicTag) != 0 && !inList(f.NicTag, n.NicTag) {
			return false
		}
		if f.VlanID != nil && n.VlanID != *f.VlanID {
			return false
		}
		if f.Family != nil && n.Family != *f.Family {
			return false
		}
		if f.Fabric != nil && n.Fabric != *f.Fabric {
			return false
		}
		if f.OwnerUUID != nil && n.OwnerUUID != *f.OwnerUUID && !inList(n.OwnerUUIDs, *f.OwnerUUID) {
			return false
		}
		if f.ProvisionableBy != nil && !n.ProvisionableBy(*f.ProvisionableBy) {
			return false
		}
		return true
	}, nil
}

// poolPredicate compiles a network pool filter.
func poolPredicate(f types.PoolFilter) (func(types.NetworkPool) bool, error) {
	var matchUUID func(string) bool
	if f.UUID != nil {
		var err error
		if matchUUID, err = uuidMatcher(*f.UUID); err != nil {
			return nil, err
		}
	}
	if f.NetworkUUID != nil {
		if _, err := ownerParam("network_uuid", *f.NetworkUUID); err != nil {
			return nil, err
		}
	}
	if f.ProvisionableBy != nil {
		if _, err := ownerParam("provisionable_by", *f.ProvisionableBy); err != nil {
			return nil, err
		}
	}

	return func(p types.NetworkPool) bool {
		if matchUUID != nil && !matchUUID(p.UUID) {
			return false
		}
		if len(f.Name) != 0 && !inList(f.Name, p.Name) {
			return false
		}
		if f.Family != nil && p.Family != *f.Family {
			return false
		}
		if f.NetworkUUID != nil && !inList(p.Networks, *f.NetworkUUID) {
			return false
		}
		if f.ProvisionableBy != nil && !p.ProvisionableBy(*f.ProvisionableBy) {
			return false
		}
		return true
	}, nil
}

// vlanPredicate compiles a fabric VLAN filter.
func vlanPredicate(f types.VLANFilter) func(types.FabricVLAN) bool {
	return func(v types.FabricVLAN) bool {
		if len(f.Name) != 0 && !inList(f.Name, v.Name) {
			return false
		}
		if f.VlanID != nil && v.VlanID != *f.VlanID {
			return false
		}
		return true
	}
}

// ipPredicate compiles an ip record filter.
func ipPredicate(f types.IPFilter) func(types.IPRecord) bool {
	return func(r types.IPRecord) bool {
		if f.OwnerUUID != nil && r.OwnerUUID != *f.OwnerUUID {
			return false
		}
		if f.BelongsToUUID != nil && r.BelongsToUUID != *f.BelongsToUUID {
			return false
		}
		if f.BelongsToType != nil && r.BelongsToType != *f.BelongsToType {
			return false
		}
		if f.Reserved != nil && r.Reserved != *f.Reserved {
			return false
		}
		if f.Free != nil && r.Free != *f.Free {
			return false
		}
		return true
	}
}

// applyLimit pages a filtered result set. Items keep their order.
func applyLimit[T any](items []T, limit types.Limit) []T {
	size := limit.Size
	if size == 0 {
		size = types.DefaultLimit().Size
	}
	page := limit.Page
	if page == 0 {
		page = 1
	}

	start := (page - 1) * size
	if start >= uint64(len(items)) {
		return []T{}
	}
	end := start + size
	if end > uint64(len(items)) {
		end = uint64(len(items))
	}
	return items[start:end]
}
