package report

import (
	"strings"
	"unicode/utf8"
	"userboard/pkg/domain"
)

// Enrich derives the two computed columns for every record. It is pure and
// total: no input record can make it fail, and the same input always yields
// the same output.
func Enrich(users []domain.User) []domain.EnrichedUser {
	out := make([]domain.EnrichedUser, 0, len(users))
	for _, u := range users {
		out = append(out, enrichOne(u))
	}

	return out
}

func enrichOne(u domain.User) domain.EnrichedUser {
	e := domain.EnrichedUser{
		User: u,
		// a missing name is the empty string, which counts as length 0
		NameLength: utf8.RuneCountInString(u.Name),
	}

	// the domain is everything after the LAST '@'; an email without '@'
	// contributes the absent bucket, not an empty domain
	if i := strings.LastIndex(u.Email, "@"); i >= 0 {
		d := strings.ToLower(u.Email[i+1:])
		e.EmailDomain = &d
	}

	return e
}
