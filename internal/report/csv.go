package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"userboard/pkg/domain"
)

// csvColumns is the export column order: the user table columns followed by
// the derived ones.
var csvColumns = []string{"id", "name", "username", "email", "phone", "website", "name_length", "email_domain"} //nolint: gochecknoglobals, lll

// writeCSV serializes the enriched records as UTF-8 CSV with a header row.
// An absent email domain renders as an empty cell.
func writeCSV(w io.Writer, users []domain.EnrichedUser) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}
	for i := range users {
		u := users[i]
		emailDomain := ""
		if u.EmailDomain != nil {
			emailDomain = *u.EmailDomain
		}

		row := []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Username,
			u.Email,
			u.Phone,
			u.Website,
			strconv.Itoa(u.NameLength),
			emailDomain,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}

	return nil
}
