package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/polestock"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the open imbalance per pole group.
func SummaryMarkdown(s *polestock.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Open Imbalance Summary")
	doc.PlainText(fmt.Sprintf("Total open imbalance: %d", s.Total))
	if len(s.Lines) == 0 {
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Polarity", "Rating", "Entries", "Imbalance", "Overdue", "Locations"},
		Rows:   [][]string{},
	}
	for _, line := range s.Lines {
		table.Rows = append(table.Rows, []string{
			line.Polarity.String(),
			amps(line.Rating),
			qty(line.Entries),
			qty(line.ImbalanceQty),
			qty(line.Overdue),
			strings.Join(line.Locations, ", "),
		})
	}
	doc.Table(table)
	return doc.String()
}
