package core

import (
	"errors"
	"testing"
	"time"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryEntry struct {
	data      []byte
	version   int
	timestamp int64
}

// memoryResultStore is an in-memory ResultStore for cache behavior tests.
type memoryResultStore struct {
	entries map[string]memoryEntry
	sets    int
}

var _ contract.ResultStore = &memoryResultStore{}

func newMemoryResultStore() *memoryResultStore {
	return &memoryResultStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryResultStore) Get(key string) ([]byte, int, int64, error) {
	entry, ok := s.entries[key]
	if !ok {
		return nil, 0, 0, errors.New("not found")
	}
	return entry.data, entry.version, entry.timestamp, nil
}

func (s *memoryResultStore) Set(key string, value []byte, version int, timestamp int64) error {
	s.entries[key] = memoryEntry{data: value, version: version, timestamp: timestamp}
	s.sets++
	return nil
}

func (s *memoryResultStore) GetStatus() (schema.StoreStatus, error) {
	return schema.StoreStatus{}, nil
}

func (s *memoryResultStore) Close() error { return nil }

// memoryStoreManager wires the in-memory store into the StoreManager contract.
type memoryStoreManager struct {
	results *memoryResultStore
}

var _ contract.StoreManager = &memoryStoreManager{}

func (m *memoryStoreManager) GetResultStore() contract.ResultStore {
	if m.results == nil {
		return nil
	}
	return m.results
}

func (m *memoryStoreManager) GetSnapshotStore() contract.SnapshotStore { return nil }

func TestCachedStandingsRoundTrip(t *testing.T) {
	cfg := &contract.Config{Conference: schema.AllConferences}
	mgr := &memoryStoreManager{results: newMemoryResultStore()}

	first, issues := cachedStandings(cfg, mgr, "fingerprint-1", testRecords())
	require.Empty(t, issues)
	require.Len(t, first, 3)
	assert.Equal(t, 1, mgr.results.sets)

	// Second call with the same fingerprint must come from the cache even
	// though the records differ
	second, _ := cachedStandings(cfg, mgr, "fingerprint-1", nil)
	require.Len(t, second, 3)
	assert.Equal(t, first[0].Team, second[0].Team)
	assert.Equal(t, 1, mgr.results.sets)

	// A new fingerprint recomputes
	third, _ := cachedStandings(cfg, mgr, "fingerprint-2", testRecords()[:2])
	assert.Len(t, third, 2)
	assert.Equal(t, 2, mgr.results.sets)
}

func TestCachedStandingsKeyIncludesConference(t *testing.T) {
	mgr := &memoryStoreManager{results: newMemoryResultStore()}

	all, _ := cachedStandings(&contract.Config{Conference: schema.AllConferences}, mgr, "fp", testRecords())
	assert.Len(t, all, 3)

	west, _ := cachedStandings(&contract.Config{Conference: schema.WestConference}, mgr, "fp", testRecords())
	assert.Len(t, west, 3)
	assert.Equal(t, 2, mgr.results.sets)
}

func TestCachedLuckTableRoundTrip(t *testing.T) {
	cfg := &contract.Config{Exponent: contract.DefaultExponent}
	mgr := &memoryStoreManager{results: newMemoryResultStore()}

	first, issues := cachedLuckTable(cfg, mgr, "fp", testRecords())
	require.Empty(t, issues)
	require.Len(t, first, 3)

	second, _ := cachedLuckTable(cfg, mgr, "fp", nil)
	require.Len(t, second, 3)
	assert.InDelta(t, first[0].LuckIndex, second[0].LuckIndex, 1e-12)

	// A different exponent is a different memoization key
	other := &contract.Config{Exponent: 2.0}
	recomputed, _ := cachedLuckTable(other, mgr, "fp", testRecords())
	assert.Len(t, recomputed, 3)
	assert.Equal(t, 2, mgr.results.sets)
}

func TestCheckCacheHitRejectsStaleEntries(t *testing.T) {
	store := newMemoryResultStore()
	key := generateCacheKey("fp", "standings", "all")

	storeResult(store, key, standingsPayload{Standings: []schema.ConferenceStanding{{Rank: 1}}})

	var payload standingsPayload
	assert.True(t, checkCacheHit(store, key, &payload))

	// Expired entry
	entry := store.entries[key]
	entry.timestamp = time.Now().Add(-cacheTTL - time.Hour).Unix()
	store.entries[key] = entry
	assert.False(t, checkCacheHit(store, key, &payload))

	// Version mismatch
	entry.timestamp = time.Now().Unix()
	entry.version = currentCacheVersion + 1
	store.entries[key] = entry
	assert.False(t, checkCacheHit(store, key, &payload))
}

func TestCachedStandingsWithoutStore(t *testing.T) {
	cfg := &contract.Config{Conference: schema.AllConferences}
	mgr := &memoryStoreManager{}

	standings, issues := cachedStandings(cfg, mgr, "fp", testRecords())
	assert.Empty(t, issues)
	assert.Len(t, standings, 3)
}
