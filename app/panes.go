package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/officine/remise-tui/client"
	"github.com/officine/remise-tui/feed"
	"github.com/officine/remise-tui/ui/table"
)

// newCataloguePane builds the laboratory catalogue tab.
func newCataloguePane(c *client.Client) pane {
	cols := []table.Column[client.CatalogueProduct]{
		{Key: "cip", Title: "CIP", Width: 13, Render: func(p client.CatalogueProduct) string {
			return p.CIPCode
		}},
		{Key: "name", Title: "Product", Render: func(p client.CatalogueProduct) string {
			return p.TradeName
		}},
		{Key: "price", Title: "Price HT", Width: 10, Render: func(p client.CatalogueProduct) string {
			return table.AlignRight(fmt.Sprintf("%.2f €", p.PriceHT), 10)
		}},
		{Key: "rebate", Title: "Rebate", Width: 8, Render: func(p client.CatalogueProduct) string {
			return table.AlignRight(fmt.Sprintf("%.1f%%", p.RebatePct), 8)
		}},
		{Key: "passback", Title: "Passback", Width: 9, Render: func(p client.CatalogueProduct) string {
			return table.AlignRight(fmt.Sprintf("%.1f%%", p.PassbackPct), 9)
		}},
		{Key: "active", Title: "Active", Width: 6, Render: func(p client.CatalogueProduct) string {
			if p.Active {
				return "yes"
			}
			return "no"
		}},
	}

	fetch := func(query string) feed.FetchFunc[client.CatalogueProduct] {
		f := client.CatalogueFilter{Search: query}
		return func(ctx context.Context, cursor feed.Cursor) (feed.Page[client.CatalogueProduct], error) {
			return c.ListCatalogue(ctx, f, cursor)
		}
	}

	detail := func(p client.CatalogueProduct) (string, string) {
		var b strings.Builder
		fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| CIP code | %s |\n", p.CIPCode)
		fmt.Fprintf(&b, "| ACL code | %s |\n", p.ACLCode)
		fmt.Fprintf(&b, "| Laboratory | #%d |\n", p.LabID)
		fmt.Fprintf(&b, "| Price HT | %.2f € |\n", p.PriceHT)
		fmt.Fprintf(&b, "| Rebate | %.1f%% |\n", p.RebatePct)
		fmt.Fprintf(&b, "| Passback | %.1f%% |\n", p.PassbackPct)
		fmt.Fprintf(&b, "| Active | %v |\n", p.Active)
		return p.TradeName, b.String()
	}

	return newTablePane("catalogue", cols, fetch, detail,
		table.WithEmptyText[client.CatalogueProduct]("No catalogue products match."),
	)
}

// newSalesPane builds the imported-sales tab.
func newSalesPane(c *client.Client) pane {
	cols := []table.Column[client.SaleRow]{
		{Key: "cip", Title: "CIP", Width: 13, Render: func(s client.SaleRow) string {
			return s.CIPCode
		}},
		{Key: "designation", Title: "Designation", Render: func(s client.SaleRow) string {
			return s.Designation
		}},
		{Key: "lab", Title: "Current lab", Width: 14, Render: func(s client.SaleRow) string {
			return s.CurrentLab
		}},
		{Key: "qty", Title: "Qty/yr", Width: 8, Render: func(s client.SaleRow) string {
			return table.AlignRight(fmt.Sprintf("%d", s.AnnualQty), 8)
		}},
		{Key: "unit", Title: "Unit", Width: 9, Render: func(s client.SaleRow) string {
			return table.AlignRight(fmt.Sprintf("%.2f €", s.UnitPrice), 9)
		}},
		{Key: "amount", Title: "Amount/yr", Width: 11, Render: func(s client.SaleRow) string {
			return table.AlignRight(fmt.Sprintf("%.2f €", s.AnnualAmount), 11)
		}},
	}

	fetch := func(query string) feed.FetchFunc[client.SaleRow] {
		f := client.SalesFilter{Search: query}
		return func(ctx context.Context, cursor feed.Cursor) (feed.Page[client.SaleRow], error) {
			return c.ListSales(ctx, f, cursor)
		}
	}

	detail := func(s client.SaleRow) (string, string) {
		var b strings.Builder
		fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| CIP bought | %s |\n", s.CIPCode)
		fmt.Fprintf(&b, "| Current lab | %s |\n", s.CurrentLab)
		fmt.Fprintf(&b, "| Import | #%d |\n", s.ImportID)
		fmt.Fprintf(&b, "| Annual quantity | %d |\n", s.AnnualQty)
		fmt.Fprintf(&b, "| Unit price | %.2f € |\n", s.UnitPrice)
		fmt.Fprintf(&b, "| Annual amount | %.2f € |\n", s.AnnualAmount)
		return s.Designation, b.String()
	}

	return newTablePane("sales", cols, fetch, detail,
		table.WithEmptyText[client.SaleRow]("No sales lines match."),
	)
}

// newMatchingPane builds the product-matching results tab.
func newMatchingPane(c *client.Client) pane {
	cols := []table.Column[client.MatchRow]{
		{Key: "designation", Title: "Designation", Render: func(m client.MatchRow) string {
			return m.Designation
		}},
		{Key: "status", Title: "Status", Width: 10, Render: func(m client.MatchRow) string {
			return m.Status
		}},
		{Key: "candidates", Title: "Candidates", Width: 10, Render: func(m client.MatchRow) string {
			return table.AlignRight(fmt.Sprintf("%d", m.Candidates), 10)
		}},
		{Key: "score", Title: "Best score", Width: 10, Render: func(m client.MatchRow) string {
			return table.AlignRight(fmt.Sprintf("%.2f", m.BestScore), 10)
		}},
	}

	fetch := func(query string) feed.FetchFunc[client.MatchRow] {
		f := client.MatchFilter{Search: query}
		return func(ctx context.Context, cursor feed.Cursor) (feed.Page[client.MatchRow], error) {
			return c.ListMatches(ctx, f, cursor)
		}
	}

	detail := func(m client.MatchRow) (string, string) {
		var b strings.Builder
		fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
		fmt.Fprintf(&b, "| Product | #%d |\n", m.ProductID)
		fmt.Fprintf(&b, "| Status | %s |\n", m.Status)
		fmt.Fprintf(&b, "| Candidates | %d |\n", m.Candidates)
		fmt.Fprintf(&b, "| Best score | %.2f |\n", m.BestScore)
		return m.Designation, b.String()
	}

	return newTablePane("matching", cols, fetch, detail,
		table.WithEmptyText[client.MatchRow]("No matching results."),
	)
}
