package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// cacheTTL bounds how long a memoized result stays valid.
const cacheTTL = 7 * 24 * time.Hour

// standingsPayload is the cached form of a ranked standings table.
type standingsPayload struct {
	Standings []schema.ConferenceStanding `json:"standings"`
	Issues    []string                    `json:"issues"`
}

// luckPayload is the cached form of a luck table.
type luckPayload struct {
	Entries []schema.LuckEntry `json:"entries"`
	Issues  []string           `json:"issues"`
}

// cachedStandings returns the memoized standings table for this dataset and
// conference, computing and storing it on a miss. A missing store falls back
// to direct computation.
func cachedStandings(cfg *contract.Config, mgr contract.StoreManager, fingerprint string, records []schema.TeamRecord) ([]schema.ConferenceStanding, []string) {
	store := mgr.GetResultStore()
	if store == nil {
		return BuildConferenceStandings(records, cfg.Conference)
	}

	key := generateCacheKey(fingerprint, "standings", string(cfg.Conference))

	var payload standingsPayload
	if checkCacheHit(store, key, &payload) {
		return payload.Standings, payload.Issues
	}

	standings, issues := BuildConferenceStandings(records, cfg.Conference)
	storeResult(store, key, standingsPayload{Standings: standings, Issues: issues})
	return standings, issues
}

// cachedLuckTable returns the memoized luck table for this dataset and
// exponent, computing and storing it on a miss.
func cachedLuckTable(cfg *contract.Config, mgr contract.StoreManager, fingerprint string, records []schema.TeamRecord) ([]schema.LuckEntry, []string) {
	store := mgr.GetResultStore()
	if store == nil {
		return BuildLuckTable(records, cfg.Exponent)
	}

	key := generateCacheKey(fingerprint, "luck", fmt.Sprintf("%g", cfg.Exponent))

	var payload luckPayload
	if checkCacheHit(store, key, &payload) {
		return payload.Entries, payload.Issues
	}

	entries, issues := BuildLuckTable(records, cfg.Exponent)
	storeResult(store, key, luckPayload{Entries: entries, Issues: issues})
	return entries, issues
}

// checkCacheHit attempts to retrieve and validate a cached result.
func checkCacheHit(store contract.ResultStore, key string, out any) bool {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return false // Cache miss
	}

	// Validate version and staleness
	if version != currentCacheVersion {
		return false
	}
	if time.Since(time.Unix(ts, 0)) > cacheTTL {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// storeResult serializes and stores a computed result. Failures are silent
// since the cache is an optimization, not a dependency.
func storeResult(store contract.ResultStore, key string, payload any) {
	if data, err := json.Marshal(payload); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}
}

// generateCacheKey creates a unique key from the dataset fingerprint, the
// operation name and its parameters.
func generateCacheKey(fingerprint, operation string, params ...string) string {
	key := fingerprint + ":" + operation
	for _, param := range params {
		key += ":" + param
	}
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
