package ipam

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabella232/sdc-napi/pkg/types"
)

func testServer(t testing.TB) *httptest.Server {
	core := testCore(t)
	router := mux.NewRouter().StrictSlash(true)
	require.NoError(t, Setup(router, "test", core))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// call sends one request and returns the response with its drained body.
func call(t *testing.T, srv *httptest.Server, method, path string, payload interface{}, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, srv.URL+path, body)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, raw
}

func decodeError(t *testing.T, raw []byte) types.Error {
	t.Helper()
	var apiErr types.Error
	require.NoError(t, json.Unmarshal(raw, &apiErr))
	return apiErr
}

func TestNetworkLifecycleOverHTTP(t *testing.T) {
	srv := testServer(t)

	var admin types.Network
	var adminEtag string

	t.Run("create returns the entity and its etag", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodPost, "/networks", adminCreate(), nil)
		require.Equal(t, http.StatusCreated, res.StatusCode, string(raw))

		adminEtag = res.Header.Get("Etag")
		assert.NotEmpty(t, adminEtag)

		require.NoError(t, json.Unmarshal(raw, &admin))
		assert.Equal(t, "192.0.2.0/24", admin.Subnet)
		assert.Equal(t, "255.255.255.0", admin.Netmask)
		assert.Equal(t, types.FamilyIPv4, admin.Family)
	})

	t.Run("get by uuid and by the admin alias", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodGet, "/networks/"+admin.UUID, nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, adminEtag, res.Header.Get("Etag"))

		var n types.Network
		require.NoError(t, json.Unmarshal(raw, &n))
		assert.Equal(t, admin.UUID, n.UUID)

		res, raw = call(t, srv, http.MethodGet, "/networks/admin", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.NoError(t, json.Unmarshal(raw, &n))
		assert.Equal(t, admin.UUID, n.UUID)
	})

	t.Run("list sets the count headers on request", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodGet, "/networks?nic_tag=admin&ret_count=true", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "1", res.Header.Get("Count"))
		assert.Equal(t, "1", res.Header.Get("Pages"))

		var networks []types.Network
		require.NoError(t, json.Unmarshal(raw, &networks))
		require.Len(t, networks, 1)
		assert.Equal(t, admin.UUID, networks[0].UUID)

		// without ret_count the headers stay off
		res, _ = call(t, srv, http.MethodGet, "/networks", nil, nil)
		assert.Empty(t, res.Header.Get("Count"))
	})

	t.Run("a bad filter is rejected with field errors", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodGet, "/networks?uuid=a*b*", nil, nil)
		require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		apiErr := decodeError(t, raw)
		assert.Equal(t, types.CodeInvalidParameters, apiErr.Code)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, "need only 1 wildcard", apiErr.Errors[0].Message)
	})

	t.Run("conditional update honors If-Match", func(t *testing.T) {
		u := types.NetworkUpdate{Description: ptr("primary admin network")}

		res, raw := call(t, srv, http.MethodPut, "/networks/"+admin.UUID, u, map[string]string{"If-Match": `"deadbeef"`})
		require.Equal(t, http.StatusPreconditionFailed, res.StatusCode)
		assert.Equal(t, types.CodePreconditionFailed, decodeError(t, raw).Code)

		res, raw = call(t, srv, http.MethodPut, "/networks/"+admin.UUID, u, map[string]string{"If-Match": `"` + adminEtag + `"`})
		require.Equal(t, http.StatusOK, res.StatusCode, string(raw))
		newEtag := res.Header.Get("Etag")
		assert.NotEqual(t, adminEtag, newEtag)
		adminEtag = newEtag
	})

	t.Run("create validation reports all fields", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodPost, "/networks", types.NetworkCreate{}, nil)
		require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		apiErr := decodeError(t, raw)
		assert.Equal(t, types.CodeInvalidParameters, apiErr.Code)
		assert.Len(t, apiErr.Errors, 5)
	})

	t.Run("an overlapping create is a conflict", func(t *testing.T) {
		p := types.NetworkCreate{
			Name:             "dmz",
			Subnet:           "192.0.2.128/25",
			NicTag:           "admin",
			ProvisionStartIP: "192.0.2.130",
			ProvisionEndIP:   "192.0.2.200",
		}
		res, raw := call(t, srv, http.MethodPost, "/networks", p, nil)
		require.Equal(t, http.StatusConflict, res.StatusCode)
		apiErr := decodeError(t, raw)
		assert.Equal(t, types.CodeSubnetConflict, apiErr.Code)
		assert.Contains(t, apiErr.Message, admin.UUID)
	})

	t.Run("delete is blocked by pools and reservations", func(t *testing.T) {
		_, _ = call(t, srv, http.MethodPut, "/networks/"+admin.UUID+"/ips/192.0.2.20", types.IPUpdate{Reserved: ptr(true)}, nil)

		res, raw := call(t, srv, http.MethodPost, "/network_pools", types.PoolCreate{Name: "default", Networks: []string{admin.UUID}}, nil)
		require.Equal(t, http.StatusCreated, res.StatusCode, string(raw))
		var pool types.NetworkPool
		require.NoError(t, json.Unmarshal(raw, &pool))

		res, raw = call(t, srv, http.MethodDelete, "/networks/"+admin.UUID, nil, nil)
		require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		apiErr := decodeError(t, raw)
		assert.Equal(t, types.CodeInUse, apiErr.Code)
		require.Len(t, apiErr.Errors, 1)
		assert.Equal(t, pool.UUID, apiErr.Errors[0].Field)

		res, _ = call(t, srv, http.MethodDelete, "/network_pools/"+pool.UUID, nil, nil)
		require.Equal(t, http.StatusNoContent, res.StatusCode)

		// the manual reservation still blocks an unforced delete
		res, raw = call(t, srv, http.MethodDelete, "/networks/"+admin.UUID, nil, nil)
		require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Equal(t, types.CodeInUse, decodeError(t, raw).Code)

		res, _ = call(t, srv, http.MethodDelete, "/networks/"+admin.UUID+"?force=true", nil, nil)
		require.Equal(t, http.StatusNoContent, res.StatusCode)

		res, raw = call(t, srv, http.MethodGet, "/networks/"+admin.UUID, nil, nil)
		require.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, types.CodeResourceNotFound, decodeError(t, raw).Code)
	})
}

func TestIPEndpointsOverHTTP(t *testing.T) {
	srv := testServer(t)

	_, raw := call(t, srv, http.MethodPost, "/networks", adminCreate(), nil)
	var admin types.Network
	require.NoError(t, json.Unmarshal(raw, &admin))

	t.Run("the seeded infrastructure records are listed first", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodGet, "/networks/"+admin.UUID+"/ips?ret_count=true", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "2", res.Header.Get("Count"))

		var records []types.IPRecord
		require.NoError(t, json.Unmarshal(raw, &records))

		want := []types.IPRecord{
			{IP: "192.0.2.1", NetworkUUID: admin.UUID, BelongsToUUID: admin.UUID, BelongsToType: types.BelongsToOther, Reserved: true},
			{IP: "192.0.2.2", NetworkUUID: admin.UUID, BelongsToUUID: admin.UUID, BelongsToType: types.BelongsToOther, Reserved: true},
		}
		if diff := cmp.Diff(want, records); diff != "" {
			t.Fatalf("seeded records mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("an unmaterialized address has no etag", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodGet, "/networks/"+admin.UUID+"/ips/192.0.2.77", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Empty(t, res.Header.Get("Etag"))

		var rec types.IPRecord
		require.NoError(t, json.Unmarshal(raw, &rec))
		assert.True(t, rec.Free)
	})

	t.Run("a conditional write on an unmaterialized address fails", func(t *testing.T) {
		u := types.IPUpdate{Reserved: ptr(true)}
		res, raw := call(t, srv, http.MethodPut, "/networks/"+admin.UUID+"/ips/192.0.2.77", u, map[string]string{"If-Match": `"deadbeef"`})
		require.Equal(t, http.StatusPreconditionFailed, res.StatusCode)
		assert.Equal(t, types.CodePreconditionFailed, decodeError(t, raw).Code)
	})

	t.Run("reserve assign and free over the wire", func(t *testing.T) {
		zone := uuid.NewString()
		u := types.IPUpdate{
			BelongsToUUID: ptr(zone),
			BelongsToType: ptr(types.BelongsToZone),
		}
		res, raw := call(t, srv, http.MethodPut, "/networks/"+admin.UUID+"/ips/192.0.2.20", u, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, string(raw))
		etag := res.Header.Get("Etag")
		require.NotEmpty(t, etag)

		var rec types.IPRecord
		require.NoError(t, json.Unmarshal(raw, &rec))
		assert.False(t, rec.Free)
		assert.Equal(t, zone, rec.BelongsToUUID)

		// a replay with the consumed etag loses
		res, _ = call(t, srv, http.MethodPut, "/networks/"+admin.UUID+"/ips/192.0.2.20", types.IPUpdate{BelongsToUUID: ptr("")}, map[string]string{"If-Match": etag})
		require.Equal(t, http.StatusOK, res.StatusCode)
		res, raw = call(t, srv, http.MethodPut, "/networks/"+admin.UUID+"/ips/192.0.2.20", u, map[string]string{"If-Match": etag})
		require.Equal(t, http.StatusPreconditionFailed, res.StatusCode)
		assert.Equal(t, types.CodePreconditionFailed, decodeError(t, raw).Code)
	})
}

func TestFabricEndpointsOverHTTP(t *testing.T) {
	srv := testServer(t)
	owner := uuid.NewString()

	var vlan types.FabricVLAN
	var overlay types.Network

	t.Run("create a vlan", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodPost, "/fabrics/"+owner+"/vlans", types.VLANCreate{Name: "default", VlanID: 2}, nil)
		require.Equal(t, http.StatusCreated, res.StatusCode, string(raw))
		require.NoError(t, json.Unmarshal(raw, &vlan))
		assert.NotZero(t, vlan.VnetID)
	})

	t.Run("create a network on it", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodPost, fmt.Sprintf("/fabrics/%s/vlans/2/networks", owner), fabricNetCreate(), nil)
		require.Equal(t, http.StatusCreated, res.StatusCode, string(raw))
		require.NoError(t, json.Unmarshal(raw, &overlay))
		assert.True(t, overlay.Fabric)
		assert.Equal(t, vlan.VnetID, overlay.VnetID)
		assert.Equal(t, DefaultFabricNicTag, overlay.NicTag)
	})

	t.Run("the network resolves only on its path", func(t *testing.T) {
		res, _ := call(t, srv, http.MethodGet, fmt.Sprintf("/fabrics/%s/vlans/2/networks/%s", owner, overlay.UUID), nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		res, _ = call(t, srv, http.MethodGet, fmt.Sprintf("/fabrics/%s/vlans/3/networks/%s", owner, overlay.UUID), nil, nil)
		require.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("vlan delete is blocked then allowed", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodDelete, fmt.Sprintf("/fabrics/%s/vlans/2", owner), nil, nil)
		require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
		assert.Equal(t, types.CodeInUse, decodeError(t, raw).Code)

		res, _ = call(t, srv, http.MethodDelete, fmt.Sprintf("/fabrics/%s/vlans/2/networks/%s", owner, overlay.UUID), nil, nil)
		require.Equal(t, http.StatusNoContent, res.StatusCode)

		res, _ = call(t, srv, http.MethodDelete, fmt.Sprintf("/fabrics/%s/vlans/2", owner), nil, nil)
		require.Equal(t, http.StatusNoContent, res.StatusCode)

		res, _ = call(t, srv, http.MethodGet, fmt.Sprintf("/fabrics/%s/vlans/2", owner), nil, nil)
		require.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestServiceEndpoints(t *testing.T) {
	srv := testServer(t)

	t.Run("ping", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodGet, "/ping", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"ping":"pong"}`, string(raw))
	})

	t.Run("version", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodGet, "/version", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"version":"test"}`, string(raw))
	})

	t.Run("index lists the routes", func(t *testing.T) {
		res, raw := call(t, srv, http.MethodGet, "/", nil, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, string(raw), "/networks")
		assert.Contains(t, string(raw), "/network_pools")
	})
}
