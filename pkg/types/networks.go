package types

// Address families supported by the API.
const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// AdminNetworkName is the reserved name of the administrative network.
// Get requests may use it as an alias instead of the uuid.
const AdminNetworkName = "admin"

// VLAN id range on a logical network (4095 is reserved by 802.1Q).
const (
	MinVlanID = 0
	MaxVlanID = 4094
)

// MTU bounds for a logical network.
const (
	MinMTU     = 576
	MaxMTU     = 9000
	DefaultMTU = 1500
)

// Network is a logical layer 3 network owned by the API
type Network struct {
	UUID             string            `json:"uuid"`
	Name             string            `json:"name"`
	Subnet           string            `json:"subnet"`
	Netmask          string            `json:"netmask"`
	Family           string            `json:"family"`
	VlanID           int               `json:"vlan_id"`
	NicTag           string            `json:"nic_tag"`
	Gateway          string            `json:"gateway,omitempty"`
	Resolvers        []string          `json:"resolvers"`
	Routes           map[string]string `json:"routes,omitempty"`
	MTU              int               `json:"mtu"`
	ProvisionStartIP string            `json:"provision_start_ip"`
	ProvisionEndIP   string            `json:"provision_end_ip"`
	OwnerUUIDs       []string          `json:"owner_uuids,omitempty"`
	Description      string            `json:"description,omitempty"`

	// fabric identity, set only on overlay networks
	Fabric    bool   `json:"fabric,omitempty"`
	OwnerUUID string `json:"owner_uuid,omitempty"`
	VnetID    uint32 `json:"vnet_id,omitempty"`
}

// ProvisionableBy reports whether owner may provision on the network.
// Networks without an owner list are provisionable by anyone.
func (n Network) ProvisionableBy(owner string) bool {
	if len(n.OwnerUUIDs) == 0 {
		return true
	}
	for _, u := range n.OwnerUUIDs {
		if u == owner {
			return true
		}
	}
	return false
}

// NetworkCreate is the payload for creating a network
type NetworkCreate struct {
	Name             string            `json:"name"`
	Subnet           string            `json:"subnet"`
	VlanID           int               `json:"vlan_id"`
	NicTag           string            `json:"nic_tag"`
	Gateway          string            `json:"gateway,omitempty"`
	Resolvers        []string          `json:"resolvers,omitempty"`
	Routes           map[string]string `json:"routes,omitempty"`
	MTU              int               `json:"mtu,omitempty"`
	ProvisionStartIP string            `json:"provision_start_ip"`
	ProvisionEndIP   string            `json:"provision_end_ip"`
	OwnerUUIDs       []string          `json:"owner_uuids,omitempty"`
	Description      string            `json:"description,omitempty"`
}

// NetworkUpdate is the payload for updating a network. Nil fields are
// left untouched; subnet, nic_tag, vlan_id and family are immutable.
type NetworkUpdate struct {
	Name             *string            `json:"name,omitempty"`
	Gateway          *string            `json:"gateway,omitempty"`
	Resolvers        *[]string          `json:"resolvers,omitempty"`
	Routes           *map[string]string `json:"routes,omitempty"`
	MTU              *int               `json:"mtu,omitempty"`
	ProvisionStartIP *string            `json:"provision_start_ip,omitempty"`
	ProvisionEndIP   *string            `json:"provision_end_ip,omitempty"`
	OwnerUUIDs       *[]string          `json:"owner_uuids,omitempty"`
	Description      *string            `json:"description,omitempty"`
}

// NetworkFilter network list filters. List valued fields match if any
// element matches, UUID accepts a single trailing * as a prefix wildcard.
type NetworkFilter struct {
	UUID            *string  `schema:"uuid,omitempty"`
	Name            []string `schema:"name,omitempty"`
	NicTag          []string `schema:"nic_tag,omitempty"`
	VlanID          *int     `schema:"vlan_id,omitempty"`
	Family          *string  `schema:"family,omitempty"`
	Fabric          *bool    `schema:"fabric,omitempty"`
	OwnerUUID       *string  `schema:"owner_uuid,omitempty"`
	ProvisionableBy *string  `schema:"provisionable_by,omitempty"`
}
