package types

// MaxPoolNetworks caps the member list of a pool.
const MaxPoolNetworks = 64

// NetworkPool is an ordered group of networks treated as one logical
// provisioning target. All members share a single address family.
type NetworkPool struct {
	UUID        string   `json:"uuid"`
	Name        string   `json:"name"`
	Networks    []string `json:"networks"`
	Family      string   `json:"family"`
	NicTags     []string `json:"nic_tags,omitempty"`
	OwnerUUIDs  []string `json:"owner_uuids,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ProvisionableBy reports whether owner may provision from the pool.
func (p NetworkPool) ProvisionableBy(owner string) bool {
	if len(p.OwnerUUIDs) == 0 {
		return true
	}
	for _, u := range p.OwnerUUIDs {
		if u == owner {
			return true
		}
	}
	return false
}

// PoolCreate is the payload for creating a network pool
type PoolCreate struct {
	Name        string   `json:"name"`
	Networks    []string `json:"networks"`
	OwnerUUIDs  []string `json:"owner_uuids,omitempty"`
	Description string   `json:"description,omitempty"`
}

// PoolUpdate is the payload for updating a network pool. A non nil
// Networks replaces the whole member list.
type PoolUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Networks    *[]string `json:"networks,omitempty"`
	OwnerUUIDs  *[]string `json:"owner_uuids,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// PoolFilter network pool list filters
type PoolFilter struct {
	UUID            *string  `schema:"uuid,omitempty"`
	Name            []string `schema:"name,omitempty"`
	Family          *string  `schema:"family,omitempty"`
	NetworkUUID     *string  `schema:"network_uuid,omitempty"`
	ProvisionableBy *string  `schema:"provisionable_by,omitempty"`
}
