package ipam

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabella232/sdc-napi/pkg/types"
)

func TestParseQueryParams(t *testing.T) {
	t.Run("decodes filter and limit from one query", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/networks?nic_tag=admin&family=ipv4&page=2&size=50&ret_count=true", nil)

		filter := types.NetworkFilter{}
		limit := types.DefaultLimit()
		require.NoError(t, parseQueryParams(r, &filter, &limit))

		assert.Equal(t, []string{"admin"}, filter.NicTag)
		require.NotNil(t, filter.Family)
		assert.Equal(t, types.FamilyIPv4, *filter.Family)
		assert.Equal(t, uint64(2), limit.Page)
		assert.Equal(t, uint64(50), limit.Size)
		assert.True(t, limit.RetCount)
	})

	t.Run("splits comma separated list values", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/networks?name=admin,external&name=storage", nil)

		filter := types.NetworkFilter{}
		require.NoError(t, parseQueryParams(r, &filter))
		assert.Equal(t, []string{"admin", "external", "storage"}, filter.Name)
	})

	t.Run("the uuid param is never split", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/networks?uuid=8a9f51e9*", nil)

		filter := types.NetworkFilter{}
		require.NoError(t, parseQueryParams(r, &filter))
		require.NotNil(t, filter.UUID)
		assert.Equal(t, "8a9f51e9*", *filter.UUID)
	})

	t.Run("empty params are dropped", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/networks?family=&name=", nil)

		filter := types.NetworkFilter{}
		require.NoError(t, parseQueryParams(r, &filter))
		assert.Nil(t, filter.Family)
		assert.Empty(t, filter.Name)
	})

	t.Run("unknown params are ignored", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/networks?wat=1&family=ipv6", nil)

		filter := types.NetworkFilter{}
		require.NoError(t, parseQueryParams(r, &filter))
		require.NotNil(t, filter.Family)
		assert.Equal(t, types.FamilyIPv6, *filter.Family)
	})

	t.Run("a malformed value is an error", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/networks?vlan_id=banana", nil)

		filter := types.NetworkFilter{}
		assert.Error(t, parseQueryParams(r, &filter))
	})
}
