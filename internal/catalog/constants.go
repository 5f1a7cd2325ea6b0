package catalog

import "time"

// CacheSchemaVersion invalidates cached entries when the Plant shape changes
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 10 * time.Minute
)

// Sort keys accepted by Search
const (
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortTimeAsc    = "time_asc"
	SortTimeDesc   = "time_desc"
	SortRewardAsc  = "reward_asc"
	SortRewardDesc = "reward_desc"
)

// SortKeys lists every accepted sort key
var SortKeys = []string{
	SortPriceAsc, SortPriceDesc,
	SortTimeAsc, SortTimeDesc,
	SortRewardAsc, SortRewardDesc,
}

// Log messages
const (
	LogMsgRefreshFailed    = "Catalog refresh failed, serving defaults"
	LogMsgRefreshSucceeded = "Catalog refreshed from authority"
	LogMsgRefreshEmpty     = "Authority returned an empty catalog, keeping current entries"
)

// RefreshJobName labels the refresh job in worker metrics
const RefreshJobName = "catalog_refresh"
