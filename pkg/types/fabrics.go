package types

// VXLAN id range for fabric overlays.
const (
	MinVnetID = 1
	MaxVnetID = 1<<24 - 1
)

// FabricVLAN is a tenant scoped VLAN namespace for fabric networks,
// keyed by (owner_uuid, vlan_id).
type FabricVLAN struct {
	OwnerUUID   string `json:"owner_uuid"`
	VlanID      int    `json:"vlan_id"`
	Name        string `json:"name"`
	VnetID      uint32 `json:"vnet_id"`
	Description string `json:"description,omitempty"`
}

// VLANCreate is the payload for creating a fabric VLAN
type VLANCreate struct {
	Name        string `json:"name"`
	VlanID      int    `json:"vlan_id"`
	Description string `json:"description,omitempty"`
}

// VLANUpdate is the payload for updating a fabric VLAN
type VLANUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// VLANFilter fabric VLAN list filters
type VLANFilter struct {
	Name   []string `schema:"name,omitempty"`
	VlanID *int     `schema:"vlan_id,omitempty"`
}

// FabricNetworkCreate is the payload for creating a network on a fabric
// VLAN. The owner and vlan_id come from the request path, the nic tag and
// vnet id from the fabric configuration.
type FabricNetworkCreate struct {
	Name             string            `json:"name"`
	Subnet           string            `json:"subnet"`
	Gateway          string            `json:"gateway,omitempty"`
	Resolvers        []string          `json:"resolvers,omitempty"`
	Routes           map[string]string `json:"routes,omitempty"`
	MTU              int               `json:"mtu,omitempty"`
	ProvisionStartIP string            `json:"provision_start_ip"`
	ProvisionEndIP   string            `json:"provision_end_ip"`
	Description      string            `json:"description,omitempty"`
}
