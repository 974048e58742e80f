package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]Store {
	bolt, err := NewBoltStore(filepath.Join(t.TempDir(), "napi.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, bolt.Close())
	})

	return map[string]Store{
		"memory": NewMemStore(),
		"bolt":   bolt,
	}
}

func TestCreateAndGet(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			etag, err := store.Create(ctx, "networks", "a", []byte(`{"n":1}`))
			require.NoError(t, err)
			require.NotEmpty(t, etag)

			rec, err := store.Get(ctx, "networks", "a")
			require.NoError(t, err)
			assert.Equal(t, "a", rec.Key)
			assert.Equal(t, etag, rec.Etag)
			assert.JSONEq(t, `{"n":1}`, string(rec.Value))

			_, err = store.Create(ctx, "networks", "a", []byte(`{"n":2}`))
			assert.ErrorIs(t, err, ErrExists)

			_, err = store.Get(ctx, "networks", "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = store.Get(ctx, "empty-bucket", "a")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestPutUpserts(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first, err := store.Put(ctx, "networks", "a", []byte(`{"n":1}`))
			require.NoError(t, err)

			second, err := store.Put(ctx, "networks", "a", []byte(`{"n":2}`))
			require.NoError(t, err)
			assert.NotEqual(t, first, second)

			rec, err := store.Get(ctx, "networks", "a")
			require.NoError(t, err)
			assert.JSONEq(t, `{"n":2}`, string(rec.Value))
			assert.Equal(t, second, rec.Etag)
		})
	}
}

func TestConditionalUpdate(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Update(ctx, "networks", "a", []byte(`{}`), "")
			assert.ErrorIs(t, err, ErrNotFound)

			etag, err := store.Create(ctx, "networks", "a", []byte(`{"n":1}`))
			require.NoError(t, err)

			_, err = store.Update(ctx, "networks", "a", []byte(`{"n":2}`), "stale")
			assert.ErrorIs(t, err, ErrEtagMismatch)

			next, err := store.Update(ctx, "networks", "a", []byte(`{"n":2}`), etag)
			require.NoError(t, err)
			assert.NotEqual(t, etag, next)

			// empty etag means unconditional
			_, err = store.Update(ctx, "networks", "a", []byte(`{"n":3}`), "")
			require.NoError(t, err)

			rec, err := store.Get(ctx, "networks", "a")
			require.NoError(t, err)
			assert.JSONEq(t, `{"n":3}`, string(rec.Value))
		})
	}
}

func TestConditionalDelete(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			assert.ErrorIs(t, store.Delete(ctx, "networks", "a", ""), ErrNotFound)

			etag, err := store.Create(ctx, "networks", "a", []byte(`{"n":1}`))
			require.NoError(t, err)

			assert.ErrorIs(t, store.Delete(ctx, "networks", "a", "stale"), ErrEtagMismatch)
			require.NoError(t, store.Delete(ctx, "networks", "a", etag))

			_, err = store.Get(ctx, "networks", "a")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestListKeepsCreationOrder(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			// keys deliberately out of lexical order
			for _, key := range []string{"c", "a", "b"} {
				_, err := store.Create(ctx, "networks", key, []byte(fmt.Sprintf(`{"k":%q}`, key)))
				require.NoError(t, err)
			}

			// updating the oldest record must not move it
			_, err := store.Update(ctx, "networks", "c", []byte(`{"k":"c2"}`), "")
			require.NoError(t, err)

			records, err := store.List(ctx, "networks")
			require.NoError(t, err)
			require.Len(t, records, 3)
			assert.Equal(t, "c", records[0].Key)
			assert.Equal(t, "a", records[1].Key)
			assert.Equal(t, "b", records[2].Key)

			// buckets are isolated
			records, err = store.List(ctx, "network_pools")
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestDropBucket(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Create(ctx, IPBucket("net-1"), "10.0.0.5", []byte(`{}`))
			require.NoError(t, err)
			_, err = store.Create(ctx, "networks", "net-1", []byte(`{}`))
			require.NoError(t, err)

			require.NoError(t, store.DropBucket(ctx, IPBucket("net-1")))
			// dropping twice is fine
			require.NoError(t, store.DropBucket(ctx, IPBucket("net-1")))

			records, err := store.List(ctx, IPBucket("net-1"))
			require.NoError(t, err)
			assert.Empty(t, records)

			// other buckets untouched
			_, err = store.Get(ctx, "networks", "net-1")
			assert.NoError(t, err)
		})
	}
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "napi.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	etag, err := store.Create(ctx, "networks", "a", []byte(`{"n":1}`))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewBoltStore(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	rec, err := store.Get(ctx, "networks", "a")
	require.NoError(t, err)
	assert.Equal(t, etag, rec.Etag)
	assert.JSONEq(t, `{"n":1}`, string(rec.Value))
}
