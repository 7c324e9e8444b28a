package report

import (
	"slices"
	"sort"
	"time"
	"userboard/pkg/domain"
)

// Aggregate computes the report view over one batch of enriched records.
// It is pure and tolerates empty input: zero records yield zero metrics and
// empty maps rather than an error.
func Aggregate(users []domain.EnrichedUser, topN int) domain.Report {
	rep := domain.Report{
		TotalCount:       len(users),
		DomainCounts:     map[string]int{},
		DomainMeanLength: map[string]float64{},
		TopByNameLength:  []domain.EnrichedUser{},
		GeneratedAt:      time.Now().UTC(),
	}
	if len(users) == 0 {
		return rep
	}

	lengthSum := 0
	domainLengthSums := map[string]int{}
	for _, u := range users {
		lengthSum += u.NameLength
		if u.NameLength > rep.MaxNameLength {
			rep.MaxNameLength = u.NameLength
		}

		bucket := u.DomainBucket()
		rep.DomainCounts[bucket]++
		domainLengthSums[bucket] += u.NameLength
	}

	rep.MeanNameLength = float64(lengthSum) / float64(len(users))
	rep.DistinctDomainCount = len(rep.DomainCounts)
	for bucket, count := range rep.DomainCounts {
		rep.DomainMeanLength[bucket] = float64(domainLengthSums[bucket]) / float64(count)
	}

	rep.TopByNameLength = topByNameLength(users, topN)

	return rep
}

// topByNameLength returns the records ranked by NameLength descending, ties
// broken by input order, truncated to n.
func topByNameLength(users []domain.EnrichedUser, n int) []domain.EnrichedUser {
	ranked := slices.Clone(users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NameLength > ranked[j].NameLength
	})

	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
