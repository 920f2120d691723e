package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/rota/internal/domain"
	"github.com/alexanderramin/rota/internal/importer"
)

// parseAvailFlags reads repeated --avail DAY=TOKENS values, e.g.
// "M=8-16" or "T=9 10-12". A day given twice is merged. Malformed
// flags are errors; bad hour tokens are dropped with a warning.
func parseAvailFlags(values []string) (map[domain.Day][domain.HoursPerDay]bool, []importer.TokenWarning, error) {
	rows := make(map[domain.Day][domain.HoursPerDay]bool)
	var warnings []importer.TokenWarning

	for _, v := range values {
		key, tokens, ok := strings.Cut(v, "=")
		key = strings.ToUpper(strings.TrimSpace(key))
		if !ok || utf8.RuneCountInString(key) != 1 {
			return nil, nil, fmt.Errorf("invalid --avail %q, expected DAY=HOURS (e.g. M=8-16)", v)
		}
		r, _ := utf8.DecodeRuneInString(key)
		day, ok := domain.DayFromLetter(r)
		if !ok {
			return nil, nil, fmt.Errorf("invalid --avail %q: unknown day %q (use M T W R F S U)", v, key)
		}

		parsed, warns := importer.ParseAvailabilityTokens(tokens)
		for i := range warns {
			warns[i].Day = day
		}
		warnings = append(warnings, warns...)

		row := rows[day]
		for h, on := range parsed {
			row[h] = row[h] || on
		}
		rows[day] = row
	}
	return rows, warnings, nil
}

// applyAvailability replaces each listed day's row; other days are kept.
func applyAvailability(a *domain.Availability, rows map[domain.Day][domain.HoursPerDay]bool) {
	for day, row := range rows {
		a[day] = [domain.HoursPerDay]bool{}
		a.SetRow(day, row)
	}
}
