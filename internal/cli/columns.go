package cli

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkivimagi/auctionview/internal/auction"
	"github.com/mkivimagi/auctionview/internal/tui"
)

// numPrinter formats quantities and prices with thousands separators.
//
//nolint:gochecknoglobals // Printer is a stateless formatting helper.
var numPrinter = message.NewPrinter(language.English)

// Column widths for the auction table.
const (
	colWidthDate       = 12
	colWidthAuctioneer = 24
	colWidthLots       = 6
	colWidthQuantity   = 10
	colWidthPrice      = 12
	colWidthType       = 12
)

func formatPrice(v float64) string {
	return numPrinter.Sprintf("%.2f", v)
}

func formatQuantity(v float64) string {
	return numPrinter.Sprintf("%.0f", v)
}

// auctionColumns returns the base column set for auction records, shared by
// the interactive browser and the list command.
func auctionColumns() []tui.Column[auction.Record] {
	return []tui.Column[auction.Record]{
		{
			ID: "date", Title: "Date", Width: colWidthDate,
			Cell: func(r auction.Record) string { return r.Date },
			Less: func(a, b auction.Record) bool { return a.Date < b.Date },
		},
		{
			ID: "auctioneer", Title: "Auctioneer", Width: colWidthAuctioneer,
			Cell: func(r auction.Record) string { return r.Auctioneer },
			Less: func(a, b auction.Record) bool { return a.Auctioneer < b.Auctioneer },
		},
		{
			ID: "lots", Title: "Lots", Width: colWidthLots,
			Cell: func(r auction.Record) string { return strconv.Itoa(r.Lots) },
			Less: func(a, b auction.Record) bool { return a.Lots < b.Lots },
		},
		{
			ID: "quantity", Title: "Quantity", Width: colWidthQuantity,
			Cell: func(r auction.Record) string { return formatQuantity(r.Quantity) },
			Less: func(a, b auction.Record) bool { return a.Quantity < b.Quantity },
		},
		{
			ID: "quantitySold", Title: "Qty Sold", Width: colWidthQuantity,
			Cell: func(r auction.Record) string { return formatQuantity(r.QuantitySold) },
			Less: func(a, b auction.Record) bool { return a.QuantitySold < b.QuantitySold },
		},
		{
			ID: "maxPrice", Title: "Max Price", Width: colWidthPrice,
			Cell: func(r auction.Record) string { return formatPrice(r.MaxPrice) },
			Less: func(a, b auction.Record) bool { return a.MaxPrice < b.MaxPrice },
		},
		{
			ID: "averagePrice", Title: "Avg Price", Width: colWidthPrice,
			Cell: func(r auction.Record) string { return formatPrice(r.AveragePrice) },
			Less: func(a, b auction.Record) bool { return a.AveragePrice < b.AveragePrice },
		},
		{
			ID: "type", Title: "Type", Width: colWidthType,
			Cell: func(r auction.Record) string { return r.Type },
			Less: func(a, b auction.Record) bool { return a.Type < b.Type },
		},
	}
}
