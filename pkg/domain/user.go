package domain

// User is one external user entity as delivered by the upstream API. The
// batch it arrives in supersedes the previous one wholesale; records are
// never mutated after creation.
type User struct {
	// ID is the primary identifier. It is unique within a batch; no ordering
	// guarantee is assumed from the source.
	ID int64 `json:"id"`

	Name     string `json:"name"`
	Username string `json:"username"`
	// Email is expected to contain exactly one '@', but nothing enforces it.
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

// EnrichedUser is a User plus the two derived columns. Derivation is pure:
// the same User always yields the same derived fields.
type EnrichedUser struct {
	User

	// NameLength is the number of characters in Name rendered as text. A
	// missing name contributes 0.
	NameLength int `json:"name_length"`
	// EmailDomain is the lowercase text after the last '@' in Email. It is
	// nil when Email contains no '@' or is missing; the absent value is a
	// grouping bucket of its own, never silently dropped.
	EmailDomain *string `json:"email_domain"`
}

// MissingDomainBucket is the label under which records without an email
// domain are grouped in the aggregate report, so presenters can render the
// bucket instead of losing it.
const MissingDomainBucket = "(missing)"

// DomainBucket returns the grouping label for the record's email domain,
// MissingDomainBucket when the domain is absent.
func (u EnrichedUser) DomainBucket() string {
	if u.EmailDomain == nil {
		return MissingDomainBucket
	}

	return *u.EmailDomain
}
