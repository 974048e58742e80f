package types

// Targets an address can belong to.
const (
	BelongsToZone   = "zone"
	BelongsToServer = "server"
	BelongsToOther  = "other"
)

// IPRecord is the reservation state of one address on a network. Addresses
// without a record are implicitly free; records are only materialized when
// an address is reserved or assigned.
type IPRecord struct {
	IP            string `json:"ip"`
	NetworkUUID   string `json:"network_uuid"`
	OwnerUUID     string `json:"owner_uuid,omitempty"`
	BelongsToUUID string `json:"belongs_to_uuid,omitempty"`
	BelongsToType string `json:"belongs_to_type,omitempty"`
	Reserved      bool   `json:"reserved"`
	Free          bool   `json:"free"`
}

// Infrastructure reports whether the record is an infrastructure
// reservation (gateway or resolver seeded at network creation). Those do
// not count as tenant usage when a network is deleted.
func (r IPRecord) Infrastructure() bool {
	return r.BelongsToType == BelongsToOther
}

// IPUpdate is the payload for reserving, assigning or freeing an address.
// Free is derived server side and cannot be supplied.
type IPUpdate struct {
	Reserved      *bool   `json:"reserved,omitempty"`
	OwnerUUID     *string `json:"owner_uuid,omitempty"`
	BelongsToUUID *string `json:"belongs_to_uuid,omitempty"`
	BelongsToType *string `json:"belongs_to_type,omitempty"`
}

// IPFilter ip record list filters
type IPFilter struct {
	OwnerUUID     *string `schema:"owner_uuid,omitempty"`
	BelongsToUUID *string `schema:"belongs_to_uuid,omitempty"`
	BelongsToType *string `schema:"belongs_to_type,omitempty"`
	Reserved      *bool   `schema:"reserved,omitempty"`
	Free          *bool   `schema:"free,omitempty"`
}
