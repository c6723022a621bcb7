package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/polestock"
	md "github.com/nao1215/markdown"
)

// BalanceReportMarkdown renders the imbalances reconciled over a period.
func BalanceReportMarkdown(r *polestock.BalanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Balanced Poles %s", r.Range))
	doc.PlainText(fmt.Sprintf("Total balanced: %d", r.Total))
	balancedTable(doc, r.Entries)
	return doc.String()
}

func balancedTable(doc *md.Markdown, entries []polestock.BalancedEntry) {
	if len(entries) == 0 {
		doc.PlainText("No balanced entries.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Polarity", "Rating", "Location", "Quantity"},
		Rows:   [][]string{},
	}
	for _, b := range entries {
		table.Rows = append(table.Rows, []string{
			b.BalanceDate.String(),
			b.Polarity.String(),
			amps(b.Rating),
			b.Location,
			qty(b.BalancedQty),
		})
	}
	doc.Table(table)
}
