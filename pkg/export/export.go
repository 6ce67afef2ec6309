// Package export renders a generation result for humans or downstream tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/avrillon/teamsplit/core/engine"
)

// WriteJSON writes the result to w in JSON format.
func WriteJSON(w io.Writer, res *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes one row per member with team index, name, level and
// category columns.
func WriteCSV(w io.Writer, res *engine.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"team", "member", "level", "category"}); err != nil {
		return err
	}
	for i, team := range res.Teams {
		for _, m := range team {
			rec := []string{
				strconv.Itoa(i + 1),
				m.DisplayName,
				strconv.Itoa(int(m.Level)),
				string(m.Category),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText writes a human-readable team listing.
func WriteText(w io.Writer, res *engine.Result) error {
	for i, team := range res.Teams {
		skill := 0
		for _, m := range team {
			skill += m.Skill()
		}
		if _, err := fmt.Fprintf(w, "Team %d (%d members, skill %d)\n", i+1, len(team), skill); err != nil {
			return err
		}
		for _, m := range team {
			if _, err := fmt.Fprintf(w, "  - %s (level %d, %s)\n", m.DisplayName, m.Level, m.Category); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "Found on attempt %d, quality %s\n", res.AttemptsUsed, res.Quality)
	return err
}
