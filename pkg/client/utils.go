package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/isabella232/sdc-napi/pkg/types"
)

func networkParams(filter types.NetworkFilter, limit types.Limit) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "?")

	if filter.UUID != nil && *filter.UUID != "" {
		fmt.Fprintf(&builder, "uuid=%s&", url.QueryEscape(*filter.UUID))
	}
	if len(filter.Name) != 0 {
		fmt.Fprintf(&builder, "name=%s&", url.QueryEscape(strings.Join(filter.Name, ",")))
	}
	if len(filter.NicTag) != 0 {
		fmt.Fprintf(&builder, "nic_tag=%s&", url.QueryEscape(strings.Join(filter.NicTag, ",")))
	}
	if filter.VlanID != nil {
		fmt.Fprintf(&builder, "vlan_id=%d&", *filter.VlanID)
	}
	if filter.Family != nil && *filter.Family != "" {
		fmt.Fprintf(&builder, "family=%s&", url.QueryEscape(*filter.Family))
	}
	if filter.Fabric != nil {
		fmt.Fprintf(&builder, "fabric=%t&", *filter.Fabric)
	}
	if filter.OwnerUUID != nil && *filter.OwnerUUID != "" {
		fmt.Fprintf(&builder, "owner_uuid=%s&", url.QueryEscape(*filter.OwnerUUID))
	}
	if filter.ProvisionableBy != nil && *filter.ProvisionableBy != "" {
		fmt.Fprintf(&builder, "provisionable_by=%s&", url.QueryEscape(*filter.ProvisionableBy))
	}

	if limit.Page != 0 {
		fmt.Fprintf(&builder, "page=%d&", limit.Page)
	}
	if limit.Size != 0 {
		fmt.Fprintf(&builder, "size=%d&", limit.Size)
	}
	if limit.RetCount {
		fmt.Fprintf(&builder, "ret_count=true&")
	}

	res := builder.String()
	// pop the extra ? or &
	return res[:len(res)-1]
}

func ipParams(filter types.IPFilter, limit types.Limit) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "?")

	if filter.OwnerUUID != nil && *filter.OwnerUUID != "" {
		fmt.Fprintf(&builder, "owner_uuid=%s&", url.QueryEscape(*filter.OwnerUUID))
	}
	if filter.BelongsToUUID != nil && *filter.BelongsToUUID != "" {
		fmt.Fprintf(&builder, "belongs_to_uuid=%s&", url.QueryEscape(*filter.BelongsToUUID))
	}
	if filter.BelongsToType != nil && *filter.BelongsToType != "" {
		fmt.Fprintf(&builder, "belongs_to_type=%s&", url.QueryEscape(*filter.BelongsToType))
	}
	if filter.Reserved != nil {
		fmt.Fprintf(&builder, "reserved=%t&", *filter.Reserved)
	}
	if filter.Free != nil {
		fmt.Fprintf(&builder, "free=%t&", *filter.Free)
	}

	if limit.Page != 0 {
		fmt.Fprintf(&builder, "page=%d&", limit.Page)
	}
	if limit.Size != 0 {
		fmt.Fprintf(&builder, "size=%d&", limit.Size)
	}
	if limit.RetCount {
		fmt.Fprintf(&builder, "ret_count=true&")
	}

	res := builder.String()
	// pop the extra ? or &
	return res[:len(res)-1]
}

func poolParams(filter types.PoolFilter, limit types.Limit) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "?")

	if filter.UUID != nil && *filter.UUID != "" {
		fmt.Fprintf(&builder, "uuid=%s&", url.QueryEscape(*filter.UUID))
	}
	if len(filter.Name) != 0 {
		fmt.Fprintf(&builder, "name=%s&", url.QueryEscape(strings.Join(filter.Name, ",")))
	}
	if filter.Family != nil && *filter.Family != "" {
		fmt.Fprintf(&builder, "family=%s&", url.QueryEscape(*filter.Family))
	}
	if filter.NetworkUUID != nil && *filter.NetworkUUID != "" {
		fmt.Fprintf(&builder, "network_uuid=%s&", url.QueryEscape(*filter.NetworkUUID))
	}
	if filter.ProvisionableBy != nil && *filter.ProvisionableBy != "" {
		fmt.Fprintf(&builder, "provisionable_by=%s&", url.QueryEscape(*filter.ProvisionableBy))
	}

	if limit.Page != 0 {
		fmt.Fprintf(&builder, "page=%d&", limit.Page)
	}
	if limit.Size != 0 {
		fmt.Fprintf(&builder, "size=%d&", limit.Size)
	}
	if limit.RetCount {
		fmt.Fprintf(&builder, "ret_count=true&")
	}

	res := builder.String()
	// pop the extra ? or &
	return res[:len(res)-1]
}

func vlanParams(filter types.VLANFilter, limit types.Limit) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "?")

	if len(filter.Name) != 0 {
		fmt.Fprintf(&builder, "name=%s&", url.QueryEscape(strings.Join(filter.Name, ",")))
	}
	if filter.VlanID != nil {
		fmt.Fprintf(&builder, "vlan_id=%d&", *filter.VlanID)
	}

	if limit.Page != 0 {
		fmt.Fprintf(&builder, "page=%d&", limit.Page)
	}
	if limit.Size != 0 {
		fmt.Fprintf(&builder, "size=%d&", limit.Size)
	}
	if limit.RetCount {
		fmt.Fprintf(&builder, "ret_count=true&")
	}

	res := builder.String()
	// pop the extra ? or &
	return res[:len(res)-1]
}

func listParams(limit types.Limit) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "?")

	if limit.Page != 0 {
		fmt.Fprintf(&builder, "page=%d&", limit.Page)
	}
	if limit.Size != 0 {
		fmt.Fprintf(&builder, "size=%d&", limit.Size)
	}
	if limit.RetCount {
		fmt.Fprintf(&builder, "ret_count=true&")
	}

	res := builder.String()
	// pop the extra ? or &
	return res[:len(res)-1]
}
