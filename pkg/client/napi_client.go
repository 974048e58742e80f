package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/isabella232/sdc-napi/pkg/types"
)

// Client a client to communicate with the network API
type Client interface {
	Ping() error
	Version(ctx context.Context) (types.Version, error)

	Networks(ctx context.Context, filter types.NetworkFilter, pagination types.Limit) (res []types.Network, totalCount int, err error)
	Network(ctx context.Context, uuid string) (types.Network, string, error)
	CreateNetwork(ctx context.Context, network types.NetworkCreate) (types.Network, string, error)
	UpdateNetwork(ctx context.Context, uuid string, update types.NetworkUpdate, etag string) (types.Network, string, error)
	DeleteNetwork(ctx context.Context, uuid string, force bool, etag string) error

	IPs(ctx context.Context, networkUUID string, filter types.IPFilter, pagination types.Limit) (res []types.IPRecord, totalCount int, err error)
	IP(ctx context.Context, networkUUID, ip string) (types.IPRecord, string, error)
	UpdateIP(ctx context.Context, networkUUID, ip string, update types.IPUpdate, etag string) (types.IPRecord, string, error)

	Pools(ctx context.Context, filter types.PoolFilter, pagination types.Limit) (res []types.NetworkPool, totalCount int, err error)
	Pool(ctx context.Context, uuid string) (types.NetworkPool, string, error)
	CreatePool(ctx context.Context, pool types.PoolCreate) (types.NetworkPool, string, error)
	UpdatePool(ctx context.Context, uuid string, update types.PoolUpdate, etag string) (types.NetworkPool, string, error)
	DeletePool(ctx context.Context, uuid string, etag string) error

	VLANs(ctx context.Context, owner string, filter types.VLANFilter, pagination types.Limit) (res []types.FabricVLAN, totalCount int, err error)
	VLAN(ctx context.Context, owner string, vlanID int) (types.FabricVLAN, string, error)
	CreateVLAN(ctx context.Context, owner string, vlan types.VLANCreate) (types.FabricVLAN, string, error)
	UpdateVLAN(ctx context.Context, owner string, vlanID int, update types.VLANUpdate, etag string) (types.FabricVLAN, string, error)
	DeleteVLAN(ctx context.Context, owner string, vlanID int, etag string) error

	FabricNetworks(ctx context.Context, owner string, vlanID int, pagination types.Limit) (res []types.Network, totalCount int, err error)
	FabricNetwork(ctx context.Context, owner string, vlanID int, uuid string) (types.Network, string, error)
	CreateFabricNetwork(ctx context.Context, owner string, vlanID int, network types.FabricNetworkCreate) (types.Network, string, error)
	DeleteFabricNetwork(ctx context.Context, owner string, vlanID int, uuid string, force bool, etag string) error
}

// Clientimpl concrete implementation of the client to communicate with the network API
type Clientimpl struct {
	endpoint string
}

// NewClient network API client constructor
func NewClient(endpoint string) Client {
	if endpoint[len(endpoint)-1] != '/' {
		endpoint += "/"
	}
	napi := Clientimpl{endpoint}
	return &napi
}

// parseError decodes an API error body, falling back to the raw text when
// the body is not the structured error format.
func parseError(body io.ReadCloser) error {
	text, err := io.ReadAll(body)
	if err != nil {
		return errors.Wrap(err, "couldn't read body response")
	}
	var res types.Error
	if err := json.Unmarshal(text, &res); err != nil || res.Code == "" {
		return errors.New(string(text))
	}
	return &res
}

func requestCounters(r *http.Response) (int, error) {
	counth := r.Header.Get("Count")
	if counth != "" {
		count, err := strconv.ParseInt(counth, 10, 32)
		if err != nil {
			return 0, errors.Wrap(err, "couldn't parse count header")
		}
		return int(count), nil
	}
	return 0, nil
}

func (g *Clientimpl) url(sub string, args ...interface{}) string {
	return g.endpoint + fmt.Sprintf(sub, args...)
}

func (g *Clientimpl) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return g.newHTTPClient().Do(req)
}

// send issues a mutating request. A non empty etag makes it conditional
// via the If-Match header.
func (g *Clientimpl) send(ctx context.Context, method, url string, payload interface{}, etag string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if etag != "" {
		req.Header.Set("If-Match", `"`+etag+`"`)
	}
	return g.newHTTPClient().Do(req)
}

// Ping makes sure the server is up
func (g *Clientimpl) Ping() error {
	req, err := http.NewRequest(http.MethodGet, g.url("ping"), nil)
	if err != nil {
		return err
	}

	res, err := g.newHTTPClient().Do(req)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("non ok return status code from the network API: %s", http.StatusText(res.StatusCode))
	}
	return nil
}

// Version returns the release version the server runs
func (g *Clientimpl) Version(ctx context.Context) (version types.Version, err error) {
	res, err := g.get(ctx, g.url("version"))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	err = json.NewDecoder(res.Body).Decode(&version)
	return
}

// Networks returns networks with the given filters and pagination parameters
func (g *Clientimpl) Networks(ctx context.Context, filter types.NetworkFilter, limit types.Limit) (networks []types.Network, totalCount int, err error) {
	query := networkParams(filter, limit)
	res, err := g.get(ctx, g.url("networks%s", query))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}

	if err = json.NewDecoder(res.Body).Decode(&networks); err != nil {
		return
	}
	totalCount, err = requestCounters(res)
	return
}

// Network returns the network with the given uuid and its etag
func (g *Clientimpl) Network(ctx context.Context, uuid string) (network types.Network, etag string, err error) {
	res, err := g.get(ctx, g.url("networks/%s", uuid))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&network); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// CreateNetwork creates a logical network
func (g *Clientimpl) CreateNetwork(ctx context.Context, payload types.NetworkCreate) (network types.Network, etag string, err error) {
	res, err := g.send(ctx, http.MethodPost, g.url("networks"), payload, "")
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusCreated {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&network); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// UpdateNetwork updates the mutable fields of a network
func (g *Clientimpl) UpdateNetwork(ctx context.Context, uuid string, payload types.NetworkUpdate, ifMatch string) (network types.Network, etag string, err error) {
	res, err := g.send(ctx, http.MethodPut, g.url("networks/%s", uuid), payload, ifMatch)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&network); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// DeleteNetwork deletes a network and its ip records
func (g *Clientimpl) DeleteNetwork(ctx context.Context, uuid string, force bool, ifMatch string) error {
	sub := "networks/%s"
	if force {
		sub += "?force=true"
	}
	res, err := g.send(ctx, http.MethodDelete, g.url(sub, uuid), nil, ifMatch)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusNoContent {
		return parseError(res.Body)
	}
	return nil
}

// IPs returns the materialized ip records of a network
func (g *Clientimpl) IPs(ctx context.Context, networkUUID string, filter types.IPFilter, limit types.Limit) (records []types.IPRecord, totalCount int, err error) {
	query := ipParams(filter, limit)
	res, err := g.get(ctx, g.url("networks/%s/ips%s", networkUUID, query))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&records); err != nil {
		return
	}
	totalCount, err = requestCounters(res)
	return
}

// IP returns the reservation state of one address
func (g *Clientimpl) IP(ctx context.Context, networkUUID, ip string) (record types.IPRecord, etag string, err error) {
	res, err := g.get(ctx, g.url("networks/%s/ips/%s", networkUUID, ip))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&record); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// UpdateIP reserves, assigns or frees an address
func (g *Clientimpl) UpdateIP(ctx context.Context, networkUUID, ip string, payload types.IPUpdate, ifMatch string) (record types.IPRecord, etag string, err error) {
	res, err := g.send(ctx, http.MethodPut, g.url("networks/%s/ips/%s", networkUUID, ip), payload, ifMatch)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&record); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// Pools returns network pools with the given filters and pagination parameters
func (g *Clientimpl) Pools(ctx context.Context, filter types.PoolFilter, limit types.Limit) (pools []types.NetworkPool, totalCount int, err error) {
	query := poolParams(filter, limit)
	res, err := g.get(ctx, g.url("network_pools%s", query))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&pools); err != nil {
		return
	}
	totalCount, err = requestCounters(res)
	return
}

// Pool returns the pool with the given uuid and its etag
func (g *Clientimpl) Pool(ctx context.Context, uuid string) (pool types.NetworkPool, etag string, err error) {
	res, err := g.get(ctx, g.url("network_pools/%s", uuid))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&pool); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// CreatePool creates a network pool
func (g *Clientimpl) CreatePool(ctx context.Context, payload types.PoolCreate) (pool types.NetworkPool, etag string, err error) {
	res, err := g.send(ctx, http.MethodPost, g.url("network_pools"), payload, "")
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusCreated {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&pool); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// UpdatePool updates a network pool
func (g *Clientimpl) UpdatePool(ctx context.Context, uuid string, payload types.PoolUpdate, ifMatch string) (pool types.NetworkPool, etag string, err error) {
	res, err := g.send(ctx, http.MethodPut, g.url("network_pools/%s", uuid), payload, ifMatch)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&pool); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// DeletePool deletes a network pool
func (g *Clientimpl) DeletePool(ctx context.Context, uuid string, ifMatch string) error {
	res, err := g.send(ctx, http.MethodDelete, g.url("network_pools/%s", uuid), nil, ifMatch)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusNoContent {
		return parseError(res.Body)
	}
	return nil
}

// VLANs returns an owner's fabric VLANs
func (g *Clientimpl) VLANs(ctx context.Context, owner string, filter types.VLANFilter, limit types.Limit) (vlans []types.FabricVLAN, totalCount int, err error) {
	query := vlanParams(filter, limit)
	res, err := g.get(ctx, g.url("fabrics/%s/vlans%s", owner, query))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&vlans); err != nil {
		return
	}
	totalCount, err = requestCounters(res)
	return
}

// VLAN returns one fabric VLAN
func (g *Clientimpl) VLAN(ctx context.Context, owner string, vlanID int) (vlan types.FabricVLAN, etag string, err error) {
	res, err := g.get(ctx, g.url("fabrics/%s/vlans/%d", owner, vlanID))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&vlan); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// CreateVLAN creates a fabric VLAN in the owner's namespace
func (g *Clientimpl) CreateVLAN(ctx context.Context, owner string, payload types.VLANCreate) (vlan types.FabricVLAN, etag string, err error) {
	res, err := g.send(ctx, http.MethodPost, g.url("fabrics/%s/vlans", owner), payload, "")
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusCreated {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&vlan); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// UpdateVLAN updates a fabric VLAN
func (g *Clientimpl) UpdateVLAN(ctx context.Context, owner string, vlanID int, payload types.VLANUpdate, ifMatch string) (vlan types.FabricVLAN, etag string, err error) {
	res, err := g.send(ctx, http.MethodPut, g.url("fabrics/%s/vlans/%d", owner, vlanID), payload, ifMatch)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&vlan); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// DeleteVLAN deletes a fabric VLAN
func (g *Clientimpl) DeleteVLAN(ctx context.Context, owner string, vlanID int, ifMatch string) error {
	res, err := g.send(ctx, http.MethodDelete, g.url("fabrics/%s/vlans/%d", owner, vlanID), nil, ifMatch)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusNoContent {
		return parseError(res.Body)
	}
	return nil
}

// FabricNetworks returns the fabric networks on one VLAN
func (g *Clientimpl) FabricNetworks(ctx context.Context, owner string, vlanID int, limit types.Limit) (networks []types.Network, totalCount int, err error) {
	query := listParams(limit)
	res, err := g.get(ctx, g.url("fabrics/%s/vlans/%d/networks%s", owner, vlanID, query))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&networks); err != nil {
		return
	}
	totalCount, err = requestCounters(res)
	return
}

// FabricNetwork returns a fabric network by its full path
func (g *Clientimpl) FabricNetwork(ctx context.Context, owner string, vlanID int, uuid string) (network types.Network, etag string, err error) {
	res, err := g.get(ctx, g.url("fabrics/%s/vlans/%d/networks/%s", owner, vlanID, uuid))
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusOK {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&network); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// CreateFabricNetwork creates a network on a fabric VLAN
func (g *Clientimpl) CreateFabricNetwork(ctx context.Context, owner string, vlanID int, payload types.FabricNetworkCreate) (network types.Network, etag string, err error) {
	res, err := g.send(ctx, http.MethodPost, g.url("fabrics/%s/vlans/%d/networks", owner, vlanID), payload, "")
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return
	}

	if res.StatusCode != http.StatusCreated {
		err = parseError(res.Body)
		return
	}
	if err = json.NewDecoder(res.Body).Decode(&network); err != nil {
		return
	}
	etag = res.Header.Get("Etag")
	return
}

// DeleteFabricNetwork deletes a fabric network by its full path
func (g *Clientimpl) DeleteFabricNetwork(ctx context.Context, owner string, vlanID int, uuid string, force bool, ifMatch string) error {
	sub := "fabrics/%s/vlans/%d/networks/%s"
	if force {
		sub += "?force=true"
	}
	res, err := g.send(ctx, http.MethodDelete, g.url(sub, owner, vlanID, uuid), nil, ifMatch)
	if res != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusNoContent {
		return parseError(res.Body)
	}
	return nil
}

func (g *Clientimpl) newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: time.Second * 30,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
		},
	}
}
