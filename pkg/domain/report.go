package domain

import "time"

// Report is the aggregate view computed from one batch of enriched users. It
// is ephemeral: recomputed from scratch on every pipeline run and never
// persisted. A zero-record batch yields zero counts and empty maps, not an
// error.
type Report struct {
	// TotalCount is the number of records in the batch.
	TotalCount int `json:"total_count"`
	// DistinctDomainCount is the number of unique email domains. The absent
	// domain counts as one distinct value when present in the batch.
	DistinctDomainCount int `json:"distinct_domain_count"`

	// MeanNameLength and MaxNameLength are taken over all records. Both are
	// zero for an empty batch.
	MeanNameLength float64 `json:"mean_name_length"`
	MaxNameLength  int     `json:"max_name_length"`

	// DomainCounts maps each domain bucket (including MissingDomainBucket)
	// to its occurrence count. Every count is >= 1.
	DomainCounts map[string]int `json:"domain_counts"`
	// DomainMeanLength maps each domain bucket to the mean NameLength of its
	// members.
	DomainMeanLength map[string]float64 `json:"domain_mean_length"`

	// TopByNameLength holds the records sorted by NameLength descending,
	// ties broken by input order, truncated to the configured top-N.
	TopByNameLength []EnrichedUser `json:"top_by_name_length"`

	// GeneratedAt is when this view was computed.
	GeneratedAt time.Time `json:"generated_at"`
}
