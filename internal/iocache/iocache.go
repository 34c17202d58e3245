// Package iocache persists memoized results and standings snapshots.
package iocache

import (
	"sync"

	"github.com/hoopworks/courtside/internal/contract"
)

// StoreManagerImpl manages the result and snapshot store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	results      contract.ResultStore
	snapshots    contract.SnapshotStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetResultStore returns the memoized result store.
func (mgr *StoreManagerImpl) GetResultStore() contract.ResultStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.results
}

// GetSnapshotStore returns the standings snapshot store.
func (mgr *StoreManagerImpl) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}
