// Package ipam implements the network API core: entity managers over the
// versioned store, the list filter engine and the HTTP layer on top.
package ipam

import (
	"github.com/isabella232/sdc-napi/internal/nictags"
	"github.com/isabella232/sdc-napi/internal/storage"
)

// DefaultFabricNicTag is the nic tag stamped on fabric networks when the
// configuration does not name one.
const DefaultFabricNicTag = "fabric"

// Options tune the core managers.
type Options struct {
	// FabricNicTag is recorded on every fabric network.
	FabricNicTag string
}

// Core bundles the entity managers sharing one store.
type Core struct {
	Networks *Networks
	IPs      *IPs
	Pools    *Pools
	Fabrics  *Fabrics
}

// NewCore wires the managers together.
func NewCore(store storage.Store, tags nictags.Checker, opts Options) *Core {
	if opts.FabricNicTag == "" {
		opts.FabricNicTag = DefaultFabricNicTag
	}

	networks := &Networks{store: store, tags: tags}
	ips := &IPs{store: store, networks: networks}
	pools := &Pools{store: store, networks: networks}
	fabrics := &Fabrics{store: store, networks: networks, fabricTag: opts.FabricNicTag}
	networks.pools = pools

	return &Core{
		Networks: networks,
		IPs:      ips,
		Pools:    pools,
		Fabrics:  fabrics,
	}
}

// App is the main app objects
type App struct {
	core           *Core
	releaseVersion string
}

type PingMessage struct {
	Ping string `json:"ping" example:"pong"`
}
