package renderer

import (
	"bytes"

	"github.com/etnz/polestock"
	md "github.com/nao1215/markdown"
)

// LocationsMarkdown renders the location registry.
func LocationsMarkdown(locations []polestock.Location) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Locations")
	locationsTable(doc, locations)
	return doc.String()
}

func locationsTable(doc *md.Markdown, locations []polestock.Location) {
	if len(locations) == 0 {
		doc.PlainText("No locations.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Location", "Rating", "Polarity", "Quantity", "Remaining", "Status"},
		Rows:   [][]string{},
	}
	for _, l := range locations {
		table.Rows = append(table.Rows, []string{
			l.ID,
			amps(l.Rating),
			l.Polarity.String(),
			qty(l.Quantity),
			qty(l.Remaining),
			l.Status(),
		})
	}
	doc.Table(table)
}
