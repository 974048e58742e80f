package client

import (
	"context"
	"log"
	"time"

	backoff "github.com/cenkalti/backoff/v3"

	"github.com/isabella232/sdc-napi/pkg/types"
)

// RetryingClient wraps the given client and retries the read operations.
// Mutating calls are passed through untouched, a replayed write could
// double apply against a changed etag.
type RetryingClient struct {
	cl      Client
	timeout time.Duration
}

// NewRetryingClient retrying network API client constructor
func NewRetryingClient(cl Client) Client {
	return NewRetryingClientWithTimeout(cl, 2*time.Minute)
}

// NewRetryingClientWithTimeout retrying network API client constructor with a timeout as a parameter
func NewRetryingClientWithTimeout(cl Client, timeout time.Duration) Client {
	napi := RetryingClient{cl, timeout}
	return &napi
}

func bf(timeout time.Duration) *backoff.ExponentialBackOff {
	res := backoff.NewExponentialBackOff()
	res.MaxElapsedTime = timeout
	return res
}

func notify(cmd string) func(error, time.Duration) {
	return func(err error, duration time.Duration) {
		log.Printf("failure: %s, command: %s, duration: %s", err.Error(), cmd, duration)
	}
}

// Ping makes sure the server is up
func (g *RetryingClient) Ping() error {
	f := func() error {
		return g.cl.Ping()
	}
	return backoff.RetryNotify(f, bf(g.timeout), notify("ping"))
}

// Version returns the release version the server runs
func (g *RetryingClient) Version(ctx context.Context) (res types.Version, err error) {
	f := func() error {
		res, err = g.cl.Version(ctx)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("version"))
	return
}

// Networks returns networks with the given filters and pagination parameters
func (g *RetryingClient) Networks(ctx context.Context, filter types.NetworkFilter, pagination types.Limit) (res []types.Network, totalCount int, err error) {
	f := func() error {
		res, totalCount, err = g.cl.Networks(ctx, filter, pagination)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("networks"))
	return
}

// Network returns the network with the given uuid and its etag
func (g *RetryingClient) Network(ctx context.Context, uuid string) (res types.Network, etag string, err error) {
	f := func() error {
		res, etag, err = g.cl.Network(ctx, uuid)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("network"))
	return
}

// CreateNetwork creates a logical network
func (g *RetryingClient) CreateNetwork(ctx context.Context, network types.NetworkCreate) (types.Network, string, error) {
	return g.cl.CreateNetwork(ctx, network)
}

// UpdateNetwork updates the mutable fields of a network
func (g *RetryingClient) UpdateNetwork(ctx context.Context, uuid string, update types.NetworkUpdate, etag string) (types.Network, string, error) {
	return g.cl.UpdateNetwork(ctx, uuid, update, etag)
}

// DeleteNetwork deletes a network and its ip records
func (g *RetryingClient) DeleteNetwork(ctx context.Context, uuid string, force bool, etag string) error {
	return g.cl.DeleteNetwork(ctx, uuid, force, etag)
}

// IPs returns the materialized ip records of a network
func (g *RetryingClient) IPs(ctx context.Context, networkUUID string, filter types.IPFilter, pagination types.Limit) (res []types.IPRecord, totalCount int, err error) {
	f := func() error {
		res, totalCount, err = g.cl.IPs(ctx, networkUUID, filter, pagination)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("ips"))
	return
}

// IP returns the reservation state of one address
func (g *RetryingClient) IP(ctx context.Context, networkUUID, ip string) (res types.IPRecord, etag string, err error) {
	f := func() error {
		res, etag, err = g.cl.IP(ctx, networkUUID, ip)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("ip"))
	return
}

// UpdateIP reserves, assigns or frees an address
func (g *RetryingClient) UpdateIP(ctx context.Context, networkUUID, ip string, update types.IPUpdate, etag string) (types.IPRecord, string, error) {
	return g.cl.UpdateIP(ctx, networkUUID, ip, update, etag)
}

// Pools returns network pools with the given filters and pagination parameters
func (g *RetryingClient) Pools(ctx context.Context, filter types.PoolFilter, pagination types.Limit) (res []types.NetworkPool, totalCount int, err error) {
	f := func() error {
		res, totalCount, err = g.cl.Pools(ctx, filter, pagination)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("pools"))
	return
}

// Pool returns the pool with the given uuid and its etag
func (g *RetryingClient) Pool(ctx context.Context, uuid string) (res types.NetworkPool, etag string, err error) {
	f := func() error {
		res, etag, err = g.cl.Pool(ctx, uuid)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("pool"))
	return
}

// CreatePool creates a network pool
func (g *RetryingClient) CreatePool(ctx context.Context, pool types.PoolCreate) (types.NetworkPool, string, error) {
	return g.cl.CreatePool(ctx, pool)
}

// UpdatePool updates a network pool
func (g *RetryingClient) UpdatePool(ctx context.Context, uuid string, update types.PoolUpdate, etag string) (types.NetworkPool, string, error) {
	return g.cl.UpdatePool(ctx, uuid, update, etag)
}

// DeletePool deletes a network pool
func (g *RetryingClient) DeletePool(ctx context.Context, uuid string, etag string) error {
	return g.cl.DeletePool(ctx, uuid, etag)
}

// VLANs returns an owner's fabric VLANs
func (g *RetryingClient) VLANs(ctx context.Context, owner string, filter types.VLANFilter, pagination types.Limit) (res []types.FabricVLAN, totalCount int, err error) {
	f := func() error {
		res, totalCount, err = g.cl.VLANs(ctx, owner, filter, pagination)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("vlans"))
	return
}

// VLAN returns one fabric VLAN
func (g *RetryingClient) VLAN(ctx context.Context, owner string, vlanID int) (res types.FabricVLAN, etag string, err error) {
	f := func() error {
		res, etag, err = g.cl.VLAN(ctx, owner, vlanID)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("vlan"))
	return
}

// CreateVLAN creates a fabric VLAN in the owner's namespace
func (g *RetryingClient) CreateVLAN(ctx context.Context, owner string, vlan types.VLANCreate) (types.FabricVLAN, string, error) {
	return g.cl.CreateVLAN(ctx, owner, vlan)
}

// UpdateVLAN updates a fabric VLAN
func (g *RetryingClient) UpdateVLAN(ctx context.Context, owner string, vlanID int, update types.VLANUpdate, etag string) (types.FabricVLAN, string, error) {
	return g.cl.UpdateVLAN(ctx, owner, vlanID, update, etag)
}

// DeleteVLAN deletes a fabric VLAN
func (g *RetryingClient) DeleteVLAN(ctx context.Context, owner string, vlanID int, etag string) error {
	return g.cl.DeleteVLAN(ctx, owner, vlanID, etag)
}

// FabricNetworks returns the fabric networks on one VLAN
func (g *RetryingClient) FabricNetworks(ctx context.Context, owner string, vlanID int, pagination types.Limit) (res []types.Network, totalCount int, err error) {
	f := func() error {
		res, totalCount, err = g.cl.FabricNetworks(ctx, owner, vlanID, pagination)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("fabric_networks"))
	return
}

// FabricNetwork returns a fabric network by its full path
func (g *RetryingClient) FabricNetwork(ctx context.Context, owner string, vlanID int, uuid string) (res types.Network, etag string, err error) {
	f := func() error {
		res, etag, err = g.cl.FabricNetwork(ctx, owner, vlanID, uuid)
		return err
	}
	err = backoff.RetryNotify(f, bf(g.timeout), notify("fabric_network"))
	return
}

// CreateFabricNetwork creates a network on a fabric VLAN
func (g *RetryingClient) CreateFabricNetwork(ctx context.Context, owner string, vlanID int, network types.FabricNetworkCreate) (types.Network, string, error) {
	return g.cl.CreateFabricNetwork(ctx, owner, vlanID, network)
}

// DeleteFabricNetwork deletes a fabric network by its full path
func (g *RetryingClient) DeleteFabricNetwork(ctx context.Context, owner string, vlanID int, uuid string, force bool, etag string) error {
	return g.cl.DeleteFabricNetwork(ctx, owner, vlanID, uuid, force, etag)
}
