package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/propertydesk/propertydesk/internal/core/property"
)

// Mode controls the table output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// PropertyTable renders one row per record, in the given order.
func PropertyTable(properties []property.Property, m Mode) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"ID", "Name", "Type", "Price", "Location", "Description", "Added"})
	for _, p := range properties {
		w.AppendRow(table.Row{
			p.ID,
			p.Name,
			p.Type,
			Price(p.Price),
			p.Location,
			Truncate(p.Description, CardDescriptionLength),
			Date(p.CreatedAt),
		})
	}
	w.AppendFooter(table.Row{"", "", "", "", "", "Total", len(properties)})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 6, WidthMax: 40},
	})
	return render(w, m)
}

// PropertyDetails renders a single record as a two-column field/value table.
func PropertyDetails(p property.Property, m Mode) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Field", "Value"})
	w.AppendRows([]table.Row{
		{"ID", p.ID},
		{"Name", p.Name},
		{"Type", p.Type},
		{"Price", Price(p.Price)},
		{"Location", p.Location},
		{"Description", p.Description},
		{"Added on", Date(p.CreatedAt)},
		{"Last updated", Date(p.UpdatedAt)},
	})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 80},
	})
	return render(w, m)
}

func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}
	w.SetStyle(table.StyleLight)
	return w.Render()
}
