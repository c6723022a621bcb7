package renderer

import (
	"bytes"

	"github.com/etnz/polestock"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the three ledgers and the locations.
func DashboardMarkdown(d *polestock.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Pole Stock")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Open Imbalance", "Balanced", "Aging", "Stored"},
		Rows:      [][]string{{qty(d.OpenQty), qty(d.BalancedQty), qty(d.AgingQty), qty(d.StoredQty)}},
	})

	doc.H2("Imbalanced Poles")
	if len(d.Imbalanced) == 0 {
		doc.PlainText("No open imbalance.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Polarity", "Rating", "Imbalance", "Balanced", "Location", "Days Inactive", "ID"},
			Rows:   [][]string{},
		}
		for _, row := range d.Imbalanced {
			table.Rows = append(table.Rows, []string{
				row.Polarity.String(),
				amps(row.Rating),
				qty(row.ImbalanceQty),
				qty(row.BalancedQty),
				row.Location,
				inactive(row.ImbalanceEntry),
				id(row.ID),
			})
		}
		doc.Table(table)
	}

	doc.H2("Balanced Poles")
	balancedTable(doc, d.Balanced)

	doc.H2("Aging Poles")
	if len(d.Aging) == 0 {
		doc.PlainText("No aging imbalance.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Polarity", "Rating", "Imbalance", "Location", "Days Inactive"},
			Rows:   [][]string{},
		}
		for _, e := range d.Aging {
			table.Rows = append(table.Rows, []string{
				e.Polarity.String(),
				amps(e.Rating),
				qty(e.ImbalanceQty),
				e.Location,
				qty(e.DaysInactive),
			})
		}
		doc.Table(table)
	}

	doc.H2("Locations")
	locationsTable(doc, d.Locations)

	return doc.String()
}
