package ipam

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	// swagger configuration
	_ "github.com/isabella232/sdc-napi/docs"
	"github.com/isabella232/sdc-napi/internal/ipam/mw"
	"github.com/isabella232/sdc-napi/pkg/types"
)

// listNetworks godoc
// @Summary List logical networks
// @Description List the networks matching the filter in creation order, It has pagination
// @Tags Networks
// @Accept  json
// @Produce  json
// @Param page query int false "Page number"
// @Param size query int false "Max result per page"
// @Param ret_count query bool false "Set networks' count on headers based on filter"
// @Param uuid query string false "Network uuid, or a uuid prefix ending in *"
// @Param name query string false "Network name, repeat or comma separate for alternatives"
// @Param nic_tag query string false "Nic tag the network is reachable on"
// @Param vlan_id query int false "802.1Q vlan id"
// @Param family query string false "Address family" Enums(ipv4, ipv6)
// @Param fabric query bool false "Only fabric (true) or only plain (false) networks"
// @Param owner_uuid query string false "Networks owned by this uuid"
// @Param provisionable_by query string false "Networks this owner may provision on"
// @Success 200 {object} []types.Network
// @Failure 422 {object} types.Error
// @Failure 503 {object} types.Error
// @Router /networks [get]
func (a *App) listNetworks(r *http.Request) (interface{}, mw.Response) {
	filter := types.NetworkFilter{}
	limit := types.DefaultLimit()
	if err := parseQueryParams(r, &filter, &limit); err != nil {
		return nil, mw.BadRequest(err)
	}

	networks, count, err := a.core.Networks.List(reqCtx(r), filter, limit)
	if err != nil {
		return nil, errorReply(err)
	}
	return networks, createResponse(count, limit)
}

// createNetwork godoc
// @Summary Create a logical network
// @Description Create a network, derive its subnet properties and seed the gateway and resolver reservations
// @Tags Networks
// @Accept  json
// @Produce  json
// @Param network body types.NetworkCreate true "Network to create"
// @Success 201 {object} types.Network
// @Failure 409 {object} types.Error
// @Failure 422 {object} types.Error
// @Failure 503 {object} types.Error
// @Router /networks [post]
func (a *App) createNetwork(r *http.Request) (interface{}, mw.Response) {
	var payload types.NetworkCreate
	if err := decodeBody(r, &payload); err != nil {
		return nil, mw.BadRequest(err)
	}

	network, etag, err := a.core.Networks.Create(reqCtx(r), payload)
	if err != nil {
		return nil, errorReply(err)
	}
	return network, withEtag(mw.Created(), etag)
}

// getNetwork godoc
// @Summary Get one network
// @Description Get a network by uuid, the name "admin" is accepted as an alias for the admin network
// @Tags Networks
// @Accept  json
// @Produce  json
// @Param uuid path string true "Network uuid"
// @Success 200 {object} types.Network
// @Failure 404 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /networks/{uuid} [get]
func (a *App) getNetwork(r *http.Request) (interface{}, mw.Response) {
	network, etag, err := a.core.Networks.Get(reqCtx(r), mux.Vars(r)["uuid"])
	if err != nil {
		return nil, errorReply(err)
	}
	return network, withEtag(mw.Ok(), etag)
}

// updateNetwork godoc
// @Summary Update a network
// @Description Update the mutable fields of a network, subnet, nic_tag, vlan_id and family are fixed at creation
// @Tags Networks
// @Accept  json
// @Produce  json
// @Param uuid path string true "Network uuid"
// @Param If-Match header string false "Etag the update is conditional on"
// @Param network body types.NetworkUpdate true "Fields to update"
// @Success 200 {object} types.Network
// @Failure 404 {object} types.Error
// @Failure 412 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /networks/{uuid} [put]
func (a *App) updateNetwork(r *http.Request) (interface{}, mw.Response) {
	var payload types.NetworkUpdate
	if err := decodeBody(r, &payload); err != nil {
		return nil, mw.BadRequest(err)
	}

	network, etag, err := a.core.Networks.Update(reqCtx(r), mux.Vars(r)["uuid"], payload, ifMatch(r))
	if err != nil {
		return nil, errorReply(err)
	}
	return network, withEtag(mw.Ok(), etag)
}

// deleteNetwork godoc
// @Summary Delete a network
// @Description Delete a network and its ip records, refused while pools reference it or, without force, while tenant reservations exist
// @Tags Networks
// @Accept  json
// @Produce  json
// @Param uuid path string true "Network uuid"
// @Param force query bool false "Skip the tenant reservation check"
// @Param If-Match header string false "Etag the delete is conditional on"
// @Success 204
// @Failure 404 {object} types.Error
// @Failure 412 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /networks/{uuid} [delete]
func (a *App) deleteNetwork(r *http.Request) (interface{}, mw.Response) {
	var params struct {
		Force bool `schema:"force,omitempty"`
	}
	if err := parseQueryParams(r, &params); err != nil {
		return nil, mw.BadRequest(err)
	}

	opts := DeleteOpts{Force: params.Force, Etag: ifMatch(r)}
	if err := a.core.Networks.Delete(reqCtx(r), mux.Vars(r)["uuid"], opts); err != nil {
		return nil, errorReply(err)
	}
	return nil, mw.NoContent()
}

// listIPs godoc
// @Summary List ip records of a network
// @Description List the materialized ip records of a network in creation order, addresses without a record are implicitly free
// @Tags IPs
// @Accept  json
// @Produce  json
// @Param uuid path string true "Network uuid"
// @Param page query int false "Page number"
// @Param size query int false "Max result per page"
// @Param ret_count query bool false "Set records' count on headers based on filter"
// @Param owner_uuid query string false "Records owned by this uuid"
// @Param belongs_to_uuid query string false "Records assigned to this uuid"
// @Param belongs_to_type query string false "Assignment target type" Enums(zone, server, other)
// @Param reserved query bool false "Only reserved records"
// @Param free query bool false "Only free records"
// @Success 200 {object} []types.IPRecord
// @Failure 404 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /networks/{uuid}/ips [get]
func (a *App) listIPs(r *http.Request) (interface{}, mw.Response) {
	filter := types.IPFilter{}
	limit := types.DefaultLimit()
	if err := parseQueryParams(r, &filter, &limit); err != nil {
		return nil, mw.BadRequest(err)
	}

	records, count, err := a.core.IPs.List(reqCtx(r), mux.Vars(r)["uuid"], filter, limit)
	if err != nil {
		return nil, errorReply(err)
	}
	return records, createResponse(count, limit)
}

// getIP godoc
// @Summary Get one ip record
// @Description Get the reservation state of an address, an address inside the subnet without a record comes back as an implicit free record
// @Tags IPs
// @Accept  json
// @Produce  json
// @Param uuid path string true "Network uuid"
// @Param ip path string true "Address inside the network's subnet"
// @Success 200 {object} types.IPRecord
// @Failure 404 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /networks/{uuid}/ips/{ip} [get]
func (a *App) getIP(r *http.Request) (interface{}, mw.Response) {
	vars := mux.Vars(r)
	record, etag, err := a.core.IPs.Get(reqCtx(r), vars["uuid"], vars["ip"])
	if err != nil {
		return nil, errorReply(err)
	}
	return record, withEtag(mw.Ok(), etag)
}

// updateIP godoc
// @Summary Reserve, assign or free an address
// @Description Update the reservation state of an address, the first write materializes its record
// @Tags IPs
// @Accept  json
// @Produce  json
// @Param uuid path string true "Network uuid"
// @Param ip path string true "Address inside the network's subnet"
// @Param If-Match header string false "Etag the update is conditional on"
// @Param record body types.IPUpdate true "Fields to update"
// @Success 200 {object} types.IPRecord
// @Failure 404 {object} types.Error
// @Failure 412 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /networks/{uuid}/ips/{ip} [put]
func (a *App) updateIP(r *http.Request) (interface{}, mw.Response) {
	var payload types.IPUpdate
	if err := decodeBody(r, &payload); err != nil {
		return nil, mw.BadRequest(err)
	}

	vars := mux.Vars(r)
	record, etag, err := a.core.IPs.Update(reqCtx(r), vars["uuid"], vars["ip"], payload, ifMatch(r))
	if err != nil {
		return nil, errorReply(err)
	}
	return record, withEtag(mw.Ok(), etag)
}

// listPools godoc
// @Summary List network pools
// @Description List the pools matching the filter in creation order, It has pagination
// @Tags NetworkPools
// @Accept  json
// @Produce  json
// @Param page query int false "Page number"
// @Param size query int false "Max result per page"
// @Param ret_count query bool false "Set pools' count on headers based on filter"
// @Param uuid query string false "Pool uuid, or a uuid prefix ending in *"
// @Param name query string false "Pool name, repeat or comma separate for alternatives"
// @Param family query string false "Address family" Enums(ipv4, ipv6)
// @Param network_uuid query string false "Pools containing this network"
// @Param provisionable_by query string false "Pools this owner may provision on"
// @Success 200 {object} []types.NetworkPool
// @Failure 422 {object} types.Error
// @Failure 503 {object} types.Error
// @Router /network_pools [get]
func (a *App) listPools(r *http.Request) (interface{}, mw.Response) {
	filter := types.PoolFilter{}
	limit := types.DefaultLimit()
	if err := parseQueryParams(r, &filter, &limit); err != nil {
		return nil, mw.BadRequest(err)
	}

	pools, count, err := a.core.Pools.List(reqCtx(r), filter, limit)
	if err != nil {
		return nil, errorReply(err)
	}
	return pools, createResponse(count, limit)
}

// createPool godoc
// @Summary Create a network pool
// @Description Create a pool over existing networks of one address family
// @Tags NetworkPools
// @Accept  json
// @Produce  json
// @Param pool body types.PoolCreate true "Pool to create"
// @Success 201 {object} types.NetworkPool
// @Failure 422 {object} types.Error
// @Failure 503 {object} types.Error
// @Router /network_pools [post]
func (a *App) createPool(r *http.Request) (interface{}, mw.Response) {
	var payload types.PoolCreate
	if err := decodeBody(r, &payload); err != nil {
		return nil, mw.BadRequest(err)
	}

	pool, etag, err := a.core.Pools.Create(reqCtx(r), payload)
	if err != nil {
		return nil, errorReply(err)
	}
	return pool, withEtag(mw.Created(), etag)
}

// getPool godoc
// @Summary Get one network pool
// @Tags NetworkPools
// @Accept  json
// @Produce  json
// @Param uuid path string true "Pool uuid"
// @Success 200 {object} types.NetworkPool
// @Failure 404 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /network_pools/{uuid} [get]
func (a *App) getPool(r *http.Request) (interface{}, mw.Response) {
	pool, etag, err := a.core.Pools.Get(reqCtx(r), mux.Vars(r)["uuid"])
	if err != nil {
		return nil, errorReply(err)
	}
	return pool, withEtag(mw.Ok(), etag)
}

// updatePool godoc
// @Summary Update a network pool
// @Description Update a pool, a networks list replaces the whole membership and is validated like a create
// @Tags NetworkPools
// @Accept  json
// @Produce  json
// @Param uuid path string true "Pool uuid"
// @Param If-Match header string false "Etag the update is conditional on"
// @Param pool body types.PoolUpdate true "Fields to update"
// @Success 200 {object} types.NetworkPool
// @Failure 404 {object} types.Error
// @Failure 412 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /network_pools/{uuid} [put]
func (a *App) updatePool(r *http.Request) (interface{}, mw.Response) {
	var payload types.PoolUpdate
	if err := decodeBody(r, &payload); err != nil {
		return nil, mw.BadRequest(err)
	}

	pool, etag, err := a.core.Pools.Update(reqCtx(r), mux.Vars(r)["uuid"], payload, ifMatch(r))
	if err != nil {
		return nil, errorReply(err)
	}
	return pool, withEtag(mw.Ok(), etag)
}

// deletePool godoc
// @Summary Delete a network pool
// @Description Delete a pool, its member networks are left in place
// @Tags NetworkPools
// @Accept  json
// @Produce  json
// @Param uuid path string true "Pool uuid"
// @Param If-Match header string false "Etag the delete is conditional on"
// @Success 204
// @Failure 404 {object} types.Error
// @Failure 412 {object} types.Error
// @Router /network_pools/{uuid} [delete]
func (a *App) deletePool(r *http.Request) (interface{}, mw.Response) {
	if err := a.core.Pools.Delete(reqCtx(r), mux.Vars(r)["uuid"], ifMatch(r)); err != nil {
		return nil, errorReply(err)
	}
	return nil, mw.NoContent()
}

// listVLANs godoc
// @Summary List an owner's fabric VLANs
// @Description List the VLANs in the owner's namespace in creation order, It has pagination
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param page query int false "Page number"
// @Param size query int false "Max result per page"
// @Param ret_count query bool false "Set VLANs' count on headers based on filter"
// @Param name query string false "VLAN name, repeat or comma separate for alternatives"
// @Param vlan_id query int false "802.1Q vlan id"
// @Success 200 {object} []types.FabricVLAN
// @Failure 422 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans [get]
func (a *App) listVLANs(r *http.Request) (interface{}, mw.Response) {
	filter := types.VLANFilter{}
	limit := types.DefaultLimit()
	if err := parseQueryParams(r, &filter, &limit); err != nil {
		return nil, mw.BadRequest(err)
	}

	vlans, count, err := a.core.Fabrics.ListVLANs(reqCtx(r), mux.Vars(r)["owner_uuid"], filter, limit)
	if err != nil {
		return nil, errorReply(err)
	}
	return vlans, createResponse(count, limit)
}

// createVLAN godoc
// @Summary Create a fabric VLAN
// @Description Create a VLAN in the owner's namespace, the owner's vnet id is allocated on first use
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param vlan body types.VLANCreate true "VLAN to create"
// @Success 201 {object} types.FabricVLAN
// @Failure 422 {object} types.Error
// @Failure 503 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans [post]
func (a *App) createVLAN(r *http.Request) (interface{}, mw.Response) {
	var payload types.VLANCreate
	if err := decodeBody(r, &payload); err != nil {
		return nil, mw.BadRequest(err)
	}

	vlan, etag, err := a.core.Fabrics.CreateVLAN(reqCtx(r), mux.Vars(r)["owner_uuid"], payload)
	if err != nil {
		return nil, errorReply(err)
	}
	return vlan, withEtag(mw.Created(), etag)
}

// getVLAN godoc
// @Summary Get one fabric VLAN
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param vlan_id path int true "802.1Q vlan id"
// @Success 200 {object} types.FabricVLAN
// @Failure 404 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans/{vlan_id} [get]
func (a *App) getVLAN(r *http.Request) (interface{}, mw.Response) {
	vlanID, resp := pathVlanID(r)
	if resp != nil {
		return nil, resp
	}
	vlan, etag, err := a.core.Fabrics.GetVLAN(reqCtx(r), mux.Vars(r)["owner_uuid"], vlanID)
	if err != nil {
		return nil, errorReply(err)
	}
	return vlan, withEtag(mw.Ok(), etag)
}

// updateVLAN godoc
// @Summary Update a fabric VLAN
// @Description Update a VLAN's name or description, the vlan id and vnet id are fixed at creation
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param vlan_id path int true "802.1Q vlan id"
// @Param If-Match header string false "Etag the update is conditional on"
// @Param vlan body types.VLANUpdate true "Fields to update"
// @Success 200 {object} types.FabricVLAN
// @Failure 404 {object} types.Error
// @Failure 412 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans/{vlan_id} [put]
func (a *App) updateVLAN(r *http.Request) (interface{}, mw.Response) {
	var payload types.VLANUpdate
	if err := decodeBody(r, &payload); err != nil {
		return nil, mw.BadRequest(err)
	}

	vlanID, resp := pathVlanID(r)
	if resp != nil {
		return nil, resp
	}
	vlan, etag, err := a.core.Fabrics.UpdateVLAN(reqCtx(r), mux.Vars(r)["owner_uuid"], vlanID, payload, ifMatch(r))
	if err != nil {
		return nil, errorReply(err)
	}
	return vlan, withEtag(mw.Ok(), etag)
}

// deleteVLAN godoc
// @Summary Delete a fabric VLAN
// @Description Delete a VLAN, refused while fabric networks live on it
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param vlan_id path int true "802.1Q vlan id"
// @Param If-Match header string false "Etag the delete is conditional on"
// @Success 204
// @Failure 404 {object} types.Error
// @Failure 412 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans/{vlan_id} [delete]
func (a *App) deleteVLAN(r *http.Request) (interface{}, mw.Response) {
	vlanID, resp := pathVlanID(r)
	if resp != nil {
		return nil, resp
	}
	if err := a.core.Fabrics.DeleteVLAN(reqCtx(r), mux.Vars(r)["owner_uuid"], vlanID, ifMatch(r)); err != nil {
		return nil, errorReply(err)
	}
	return nil, mw.NoContent()
}

// listFabricNetworks godoc
// @Summary List the fabric networks on a VLAN
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param vlan_id path int true "802.1Q vlan id"
// @Param page query int false "Page number"
// @Param size query int false "Max result per page"
// @Param ret_count query bool false "Set networks' count on headers"
// @Success 200 {object} []types.Network
// @Failure 404 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans/{vlan_id}/networks [get]
func (a *App) listFabricNetworks(r *http.Request) (interface{}, mw.Response) {
	limit := types.DefaultLimit()
	if err := parseQueryParams(r, &limit); err != nil {
		return nil, mw.BadRequest(err)
	}

	vlanID, resp := pathVlanID(r)
	if resp != nil {
		return nil, resp
	}
	networks, count, err := a.core.Fabrics.ListNetworks(reqCtx(r), mux.Vars(r)["owner_uuid"], vlanID, limit)
	if err != nil {
		return nil, errorReply(err)
	}
	return networks, createResponse(count, limit)
}

// createFabricNetwork godoc
// @Summary Create a fabric network
// @Description Create a network on a fabric VLAN, the nic tag comes from the fabric configuration and the vnet id from the VLAN
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param vlan_id path int true "802.1Q vlan id"
// @Param network body types.FabricNetworkCreate true "Network to create"
// @Success 201 {object} types.Network
// @Failure 404 {object} types.Error
// @Failure 409 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans/{vlan_id}/networks [post]
func (a *App) createFabricNetwork(r *http.Request) (interface{}, mw.Response) {
	var payload types.FabricNetworkCreate
	if err := decodeBody(r, &payload); err != nil {
		return nil, mw.BadRequest(err)
	}

	vlanID, resp := pathVlanID(r)
	if resp != nil {
		return nil, resp
	}
	network, etag, err := a.core.Fabrics.CreateNetwork(reqCtx(r), mux.Vars(r)["owner_uuid"], vlanID, payload)
	if err != nil {
		return nil, errorReply(err)
	}
	return network, withEtag(mw.Created(), etag)
}

// getFabricNetwork godoc
// @Summary Get one fabric network
// @Description Get a fabric network by its full path, a network outside the owner and vlan is reported as not found
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param vlan_id path int true "802.1Q vlan id"
// @Param uuid path string true "Network uuid"
// @Success 200 {object} types.Network
// @Failure 404 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans/{vlan_id}/networks/{uuid} [get]
func (a *App) getFabricNetwork(r *http.Request) (interface{}, mw.Response) {
	vlanID, resp := pathVlanID(r)
	if resp != nil {
		return nil, resp
	}
	vars := mux.Vars(r)
	network, etag, err := a.core.Fabrics.GetNetwork(reqCtx(r), vars["owner_uuid"], vlanID, vars["uuid"])
	if err != nil {
		return nil, errorReply(err)
	}
	return network, withEtag(mw.Ok(), etag)
}

// deleteFabricNetwork godoc
// @Summary Delete a fabric network
// @Tags Fabrics
// @Accept  json
// @Produce  json
// @Param owner_uuid path string true "Owner uuid"
// @Param vlan_id path int true "802.1Q vlan id"
// @Param uuid path string true "Network uuid"
// @Param force query bool false "Skip the tenant reservation check"
// @Param If-Match header string false "Etag the delete is conditional on"
// @Success 204
// @Failure 404 {object} types.Error
// @Failure 412 {object} types.Error
// @Failure 422 {object} types.Error
// @Router /fabrics/{owner_uuid}/vlans/{vlan_id}/networks/{uuid} [delete]
func (a *App) deleteFabricNetwork(r *http.Request) (interface{}, mw.Response) {
	var params struct {
		Force bool `schema:"force,omitempty"`
	}
	if err := parseQueryParams(r, &params); err != nil {
		return nil, mw.BadRequest(err)
	}

	vlanID, resp := pathVlanID(r)
	if resp != nil {
		return nil, resp
	}
	vars := mux.Vars(r)
	opts := DeleteOpts{Force: params.Force, Etag: ifMatch(r)}
	if err := a.core.Fabrics.DeleteNetwork(reqCtx(r), vars["owner_uuid"], vlanID, vars["uuid"], opts); err != nil {
		return nil, errorReply(err)
	}
	return nil, mw.NoContent()
}

// ping godoc
// @Summary ping the server
// @Description ping the server to check if it is running
// @Tags ping
// @Accept  json
// @Produce  json
// @Success 200 {object} PingMessage
// @Router /ping [get]
func (a *App) ping(r *http.Request) (interface{}, mw.Response) {
	return PingMessage{Ping: "pong"}, mw.Ok()
}

func (a *App) indexPage(m *mux.Router) mw.Action {
	return func(r *http.Request) (interface{}, mw.Response) {
		response := mw.Ok()
		var sb strings.Builder
		sb.WriteString("Welcome to the network API server, available endpoints ")

		_ = m.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
			path, err := route.GetPathTemplate()
			if err != nil {
				return nil
			}

			sb.WriteString("[" + path + "] ")
			return nil
		})
		return sb.String(), response
	}
}

func (a *App) version(r *http.Request) (interface{}, mw.Response) {
	response := mw.Ok()
	return types.Version{
		Version: a.releaseVersion,
	}, response
}

// pathVlanID reads the vlan_id path variable.
func pathVlanID(r *http.Request) (int, mw.Response) {
	vlanID, err := strconv.Atoi(mux.Vars(r)["vlan_id"])
	if err != nil {
		return 0, mw.ApiError(types.NewValidationError(types.InvalidParam("vlan_id", "must be a number")))
	}
	return vlanID, nil
}

// Setup is the server and do initial configurations
// @title Network API
// @version 1.0
// @description sdc-napi manages logical networks, their ip usage, network pools and per tenant fabric overlays.
// @license.name MPL-2.0
// @license.url https://mozilla.org/MPL/2.0/
// @BasePath /
func Setup(router *mux.Router, gitCommit string, core *Core) error {
	a := App{
		core:           core,
		releaseVersion: gitCommit,
	}

	router.HandleFunc("/networks", mw.AsHandlerFunc(a.listNetworks)).Methods(http.MethodGet)
	router.HandleFunc("/networks", mw.AsHandlerFunc(a.createNetwork)).Methods(http.MethodPost)
	router.HandleFunc("/networks/{uuid}", mw.AsHandlerFunc(a.getNetwork)).Methods(http.MethodGet)
	router.HandleFunc("/networks/{uuid}", mw.AsHandlerFunc(a.updateNetwork)).Methods(http.MethodPut)
	router.HandleFunc("/networks/{uuid}", mw.AsHandlerFunc(a.deleteNetwork)).Methods(http.MethodDelete)

	router.HandleFunc("/networks/{uuid}/ips", mw.AsHandlerFunc(a.listIPs)).Methods(http.MethodGet)
	router.HandleFunc("/networks/{uuid}/ips/{ip}", mw.AsHandlerFunc(a.getIP)).Methods(http.MethodGet)
	router.HandleFunc("/networks/{uuid}/ips/{ip}", mw.AsHandlerFunc(a.updateIP)).Methods(http.MethodPut)

	router.HandleFunc("/network_pools", mw.AsHandlerFunc(a.listPools)).Methods(http.MethodGet)
	router.HandleFunc("/network_pools", mw.AsHandlerFunc(a.createPool)).Methods(http.MethodPost)
	router.HandleFunc("/network_pools/{uuid}", mw.AsHandlerFunc(a.getPool)).Methods(http.MethodGet)
	router.HandleFunc("/network_pools/{uuid}", mw.AsHandlerFunc(a.updatePool)).Methods(http.MethodPut)
	router.HandleFunc("/network_pools/{uuid}", mw.AsHandlerFunc(a.deletePool)).Methods(http.MethodDelete)

	router.HandleFunc("/fabrics/{owner_uuid}/vlans", mw.AsHandlerFunc(a.listVLANs)).Methods(http.MethodGet)
	router.HandleFunc("/fabrics/{owner_uuid}/vlans", mw.AsHandlerFunc(a.createVLAN)).Methods(http.MethodPost)
	router.HandleFunc("/fabrics/{owner_uuid}/vlans/{vlan_id:[0-9]+}", mw.AsHandlerFunc(a.getVLAN)).Methods(http.MethodGet)
	router.HandleFunc("/fabrics/{owner_uuid}/vlans/{vlan_id:[0-9]+}", mw.AsHandlerFunc(a.updateVLAN)).Methods(http.MethodPut)
	router.HandleFunc("/fabrics/{owner_uuid}/vlans/{vlan_id:[0-9]+}", mw.AsHandlerFunc(a.deleteVLAN)).Methods(http.MethodDelete)
	router.HandleFunc("/fabrics/{owner_uuid}/vlans/{vlan_id:[0-9]+}/networks", mw.AsHandlerFunc(a.listFabricNetworks)).Methods(http.MethodGet)
	router.HandleFunc("/fabrics/{owner_uuid}/vlans/{vlan_id:[0-9]+}/networks", mw.AsHandlerFunc(a.createFabricNetwork)).Methods(http.MethodPost)
	router.HandleFunc("/fabrics/{owner_uuid}/vlans/{vlan_id:[0-9]+}/networks/{uuid}", mw.AsHandlerFunc(a.getFabricNetwork)).Methods(http.MethodGet)
	router.HandleFunc("/fabrics/{owner_uuid}/vlans/{vlan_id:[0-9]+}/networks/{uuid}", mw.AsHandlerFunc(a.deleteFabricNetwork)).Methods(http.MethodDelete)

	router.HandleFunc("/", mw.AsHandlerFunc(a.indexPage(router))).Methods(http.MethodGet)
	router.HandleFunc("/ping", mw.AsHandlerFunc(a.ping)).Methods(http.MethodGet)
	router.HandleFunc("/version", mw.AsHandlerFunc(a.version)).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return nil
}
