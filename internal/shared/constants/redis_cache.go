package constants

import "time"

// Redis cache keys and TTLs for the Xplorium backend.
// Pattern: xplorium:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

// Static data (long TTL: rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour
	TTL_STATIC_SHORT = 6 * time.Hour
)

// Semi-static data (medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute
)

// Dynamic data (short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute
	TTL_DYNAMIC_SHORT  = 5 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const CACHE_PREFIX = "xplorium"

// ================== EVENTS MODULE ==================

const (
	CACHE_KEY_EVENTS_LIST      = CACHE_PREFIX + ":events:list" // + :page:X:limit:Y:status:Z
	CACHE_KEY_EVENTS_PUBLISHED = CACHE_PREFIX + ":events:published"
	CACHE_KEY_EVENT_DETAIL     = CACHE_PREFIX + ":events:detail:uuid:" // + event-id
)

const (
	TTL_EVENT_LIST   = TTL_SEMI_STATIC_SHORT
	TTL_EVENT_DETAIL = TTL_SEMI_STATIC_MEDIUM
)

// ================== CONTENT MODULE ==================

const (
	CACHE_KEY_CONTENT_BY_SLUG = CACHE_PREFIX + ":content:detail:slug:" // + block-slug
	CACHE_KEY_CONTENT_LIST    = CACHE_PREFIX + ":content:list"
)

const TTL_CONTENT_BLOCK = TTL_SEMI_STATIC_MEDIUM

// ================== PACKAGES MODULE ==================

const (
	CACHE_KEY_PACKAGES_ACTIVE = CACHE_PREFIX + ":packages:active:all"
)

const TTL_PACKAGES = TTL_SEMI_STATIC_SHORT

// ================== ANALYTICS MODULE ==================

const (
	CACHE_KEY_ANALYTICS_DASHBOARD = CACHE_PREFIX + ":analytics:dashboard"
	CACHE_KEY_ANALYTICS_FORECAST  = CACHE_PREFIX + ":analytics:forecast"
)

const (
	TTL_ANALYTICS_DASHBOARD = TTL_DYNAMIC_MEDIUM
	TTL_ANALYTICS_FORECAST  = TTL_DYNAMIC_MEDIUM
)
