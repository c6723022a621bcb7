package renderer

import (
	"fmt"
	"strconv"

	"github.com/etnz/polestock"
)

// amps formats a rating for a table cell.
func amps(r polestock.Rating) string { return r.String() + "A" }

// qty formats a quantity for a table cell.
func qty(n int) string { return strconv.Itoa(n) }

// inactive formats the days an entry stayed open, in bold once it is overdue.
func inactive(e polestock.ImbalanceEntry) string {
	if e.Overdue() {
		return fmt.Sprintf("**%d**", e.DaysInactive)
	}
	return strconv.Itoa(e.DaysInactive)
}

// id formats an entry identifier as inline code.
func id(s string) string {
	if s == "" {
		return ""
	}
	return "`" + s + "`"
}
