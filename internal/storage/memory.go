package storage

import (
	"context"
	"sort"
	"sync"
)

type memEntry struct {
	seq   uint64
	etag  string
	value []byte
}

// MemStore is an in memory Store used by tests and the dev server. All
// operations run under one lock, so conditions are trivially atomic.
type MemStore struct {
	mu      sync.RWMutex
	seq     uint64
	buckets map[string]map[string]*memEntry
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty in memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		buckets: map[string]map[string]*memEntry{},
	}
}

func (m *MemStore) Get(ctx context.Context, bucket, key string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.buckets[bucket][key]
	if !ok {
		return Record{}, ErrNotFound
	}
	return m.record(key, e), nil
}

func (m *MemStore) List(ctx context.Context, bucket string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := m.buckets[bucket]
	records := make([]Record, 0, len(entries))
	for key, e := range entries {
		records = append(records, m.record(key, e))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Seq < records[j].Seq
	})
	return records, nil
}

func (m *MemStore) Put(ctx context.Context, bucket, key string, value []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.buckets[bucket][key]
	if !ok {
		return m.insert(bucket, key, value), nil
	}
	e.etag = Etag(value)
	e.value = clone(value)
	return e.etag, nil
}

func (m *MemStore) Create(ctx context.Context, bucket, key string, value []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.buckets[bucket][key]; ok {
		return "", ErrExists
	}
	return m.insert(bucket, key, value), nil
}

func (m *MemStore) Update(ctx context.Context, bucket, key string, value []byte, etag string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.buckets[bucket][key]
	if !ok {
		return "", ErrNotFound
	}
	if etag != "" && etag != e.etag {
		return "", ErrEtagMismatch
	}
	e.etag = Etag(value)
	e.value = clone(value)
	return e.etag, nil
}

func (m *MemStore) Delete(ctx context.Context, bucket, key, etag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.buckets[bucket][key]
	if !ok {
		return ErrNotFound
	}
	if etag != "" && etag != e.etag {
		return ErrEtagMismatch
	}
	delete(m.buckets[bucket], key)
	return nil
}

func (m *MemStore) DropBucket(ctx context.Context, bucket string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets, bucket)
	return nil
}

func (m *MemStore) Close() error {
	return nil
}

// insert assumes the write lock is held and the key is absent.
func (m *MemStore) insert(bucket, key string, value []byte) string {
	if m.buckets[bucket] == nil {
		m.buckets[bucket] = map[string]*memEntry{}
	}
	m.seq++
	e := &memEntry{seq: m.seq, etag: Etag(value), value: clone(value)}
	m.buckets[bucket][key] = e
	return e.etag
}

func (m *MemStore) record(key string, e *memEntry) Record {
	return Record{Key: key, Etag: e.etag, Seq: e.seq, Value: clone(e.value)}
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
