package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// GatePassListKey returns the cache key for the unfiltered gate-pass listing.
func (r *CacheKeyStruct) GatePassListKey() string {
	return "gatepass:list:all"
}

// GatePassStatsKey returns the cache key for the dashboard counters.
func (r *CacheKeyStruct) GatePassStatsKey() string {
	return "gatepass:stats"
}

// GatePassKey returns the cache key for a single gate-pass record.
func (r *CacheKeyStruct) GatePassKey(id string) string {
	return fmt.Sprintf("gatepass:%s", id)
}

var CacheKey = NewCacheKeyStruct()
