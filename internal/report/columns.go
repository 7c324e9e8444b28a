package report

import (
	"userboard/pkg/domain"
	"userboard/pkg/serrors"
)

// Project reduces enriched records to the requested column subset, in the
// requested order. Column names follow the csv header. An empty selection
// means all columns. Unknown names are rejected.
func Project(users []domain.EnrichedUser, columns []string) ([]map[string]any, error) {
	if len(columns) == 0 {
		columns = csvColumns
	}
	for _, col := range columns {
		if !knownColumn(col) {
			return nil, serrors.With(serrors.ErrBadRequest, "unknown column: %q", col)
		}
	}

	rows := make([]map[string]any, 0, len(users))
	for i := range users {
		u := users[i]
		row := make(map[string]any, len(columns))
		for _, col := range columns {
			switch col {
			case "id":
				row[col] = u.ID
			case "name":
				row[col] = u.Name
			case "username":
				row[col] = u.Username
			case "email":
				row[col] = u.Email
			case "phone":
				row[col] = u.Phone
			case "website":
				row[col] = u.Website
			case "name_length":
				row[col] = u.NameLength
			case "email_domain":
				row[col] = u.EmailDomain
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func knownColumn(name string) bool {
	for _, col := range csvColumns {
		if col == name {
			return true
		}
	}

	return false
}
