package ipam

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/isabella232/sdc-napi/internal/storage"
	"github.com/isabella232/sdc-napi/pkg/subnet"
	"github.com/isabella232/sdc-napi/pkg/types"
)

// IPs manages per network reservation state. Records materialize lazily,
// an address inside the subnet without a record is free.
type IPs struct {
	store    storage.Store
	networks *Networks
}

// List returns the materialized records of a network matching the filter,
// in creation order.
func (m *IPs) List(ctx context.Context, networkID string, filter types.IPFilter, limit types.Limit) ([]types.IPRecord, uint, error) {
	n, _, err := m.networks.Get(ctx, networkID)
	if err != nil {
		return nil, 0, err
	}
	records, err := loadIPRecords(ctx, m.store, n.UUID)
	if err != nil {
		return nil, 0, err
	}
	match := ipPredicate(filter)
	filtered := make([]types.IPRecord, 0, len(records))
	for _, r := range records {
		if match(r) {
			filtered = append(filtered, r)
		}
	}
	return applyLimit(filtered, limit), uint(len(filtered)), nil
}

// Get returns the record of one address. An address inside the subnet
// without a record comes back as an implicit free record without an etag.
func (m *IPs) Get(ctx context.Context, networkID, ip string) (types.IPRecord, string, error) {
	n, _, err := m.networks.Get(ctx, networkID)
	if err != nil {
		return types.IPRecord{}, "", err
	}
	info, err := subnet.Parse(n.Subnet)
	if err != nil {
		return types.IPRecord{}, "", types.NewInternal(fmt.Sprintf("corrupt subnet on network %s", n.UUID))
	}

	a, err := subnet.ParseAddr(ip)
	if err != nil {
		return types.IPRecord{}, "", types.NewValidationError(types.InvalidParam("ip", "invalid IP address"))
	}
	if !info.Contains(a) {
		return types.IPRecord{}, "", types.NewValidationError(types.InvalidParam("ip", "not in the network's subnet"))
	}

	rec, err := m.store.Get(ctx, storage.IPBucket(n.UUID), a.String())
	if errors.Is(err, storage.ErrNotFound) {
		return types.IPRecord{IP: a.String(), NetworkUUID: n.UUID, Free: true}, "", nil
	}
	if err != nil {
		return types.IPRecord{}, "", storeFailure(err, "failed to get ip record")
	}
	var r types.IPRecord
	if err := json.Unmarshal(rec.Value, &r); err != nil {
		return types.IPRecord{}, "", types.NewInternal(fmt.Sprintf("corrupt ip record %s", a))
	}
	return r, rec.Etag, nil
}

// Update reserves, assigns or frees an address. The first write on an
// address materializes its record; an etag on a not yet materialized
// address fails the precondition.
func (m *IPs) Update(ctx context.Context, networkID, ip string, u types.IPUpdate, etag string) (types.IPRecord, string, error) {
	n, _, err := m.networks.Get(ctx, networkID)
	if err != nil {
		return types.IPRecord{}, "", err
	}
	info, err := subnet.Parse(n.Subnet)
	if err != nil {
		return types.IPRecord{}, "", types.NewInternal(fmt.Sprintf("corrupt subnet on network %s", n.UUID))
	}

	a, err := subnet.ParseAddr(ip)
	if err != nil {
		return types.IPRecord{}, "", types.NewValidationError(types.InvalidParam("ip", "invalid IP address"))
	}
	if !info.InUsableRange(a) {
		return types.IPRecord{}, "", types.NewValidationError(types.InvalidParam("ip", "must be within the subnet's usable range"))
	}

	rec := types.IPRecord{IP: a.String(), NetworkUUID: n.UUID, Free: true}
	exists := false
	stored, err := m.store.Get(ctx, storage.IPBucket(n.UUID), a.String())
	if err == nil {
		exists = true
		if err := json.Unmarshal(stored.Value, &rec); err != nil {
			return types.IPRecord{}, "", types.NewInternal(fmt.Sprintf("corrupt ip record %s", a))
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return types.IPRecord{}, "", storeFailure(err, "failed to get ip record")
	}

	if err := applyIPUpdate(&rec, u); err != nil {
		return types.IPRecord{}, "", err
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return types.IPRecord{}, "", types.NewInternal(err.Error())
	}

	var newEtag string
	if exists {
		newEtag, err = m.store.Update(ctx, storage.IPBucket(n.UUID), rec.IP, raw, etag)
	} else {
		if etag != "" {
			return types.IPRecord{}, "", types.NewPreconditionFailed(fmt.Sprintf("no record for ip %s", rec.IP))
		}
		newEtag, err = m.store.Create(ctx, storage.IPBucket(n.UUID), rec.IP, raw)
		if errors.Is(err, storage.ErrExists) {
			err = storage.ErrEtagMismatch
		}
	}
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrEtagMismatch) {
		return types.IPRecord{}, "", types.NewPreconditionFailed(fmt.Sprintf("stale etag for ip %s", rec.IP))
	}
	if err != nil {
		return types.IPRecord{}, "", storeFailure(err, "failed to store ip record")
	}

	log.Debug().Str("network", n.UUID).Str("ip", rec.IP).Bool("free", rec.Free).Msg("ip record updated")
	return rec, newEtag, nil
}

// applyIPUpdate folds the update into the record and rederives free.
func applyIPUpdate(rec *types.IPRecord, u types.IPUpdate) error {
	var fields []types.FieldError

	if u.OwnerUUID != nil {
		if *u.OwnerUUID != "" {
			if _, err := uuid.Parse(*u.OwnerUUID); err != nil {
				fields = append(fields, types.InvalidParam("owner_uuid", "invalid uuid"))
			}
		}
		rec.OwnerUUID = *u.OwnerUUID
	}
	if u.BelongsToUUID != nil {
		if *u.BelongsToUUID != "" {
			if _, err := uuid.Parse(*u.BelongsToUUID); err != nil {
				fields = append(fields, types.InvalidParam("belongs_to_uuid", "invalid uuid"))
			}
		}
		rec.BelongsToUUID = *u.BelongsToUUID
	}
	if u.BelongsToType != nil {
		switch *u.BelongsToType {
		case types.BelongsToZone, types.BelongsToServer, types.BelongsToOther, "":
			rec.BelongsToType = *u.BelongsToType
		default:
			fields = append(fields, types.InvalidParam("belongs_to_type", "must be one of zone, server, other"))
		}
	}
	if u.Reserved != nil {
		rec.Reserved = *u.Reserved
	}

	if rec.BelongsToUUID != "" && rec.BelongsToType == "" {
		fields = append(fields, types.MissingParam("belongs_to_type"))
	}
	if rec.BelongsToUUID == "" {
		rec.BelongsToType = ""
	}

	if len(fields) > 0 {
		return types.NewValidationError(fields...)
	}

	rec.Free = !rec.Reserved && rec.BelongsToUUID == ""
	return nil
}

// loadIPRecords returns the materialized records of a network in creation
// order.
func loadIPRecords(ctx context.Context, store storage.Store, networkUUID string) ([]types.IPRecord, error) {
	records, err := store.List(ctx, storage.IPBucket(networkUUID))
	if err != nil {
		return nil, storeFailure(err, "failed to list ip records")
	}
	out := make([]types.IPRecord, 0, len(records))
	for _, rec := range records {
		var r types.IPRecord
		if err := json.Unmarshal(rec.Value, &r); err != nil {
			return nil, types.NewInternal(fmt.Sprintf("corrupt ip record %s", rec.Key))
		}
		out = append(out, r)
	}
	return out, nil
}
