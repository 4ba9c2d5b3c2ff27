// Package auction defines the auction record domain model and the HTTP
// client used to fetch server-paginated result pages.
package auction

import "strconv"

// Record is a single auction result row as returned by the remote endpoint.
// Each page of records replaces the previous page wholesale; records carry no
// relationships between each other.
type Record struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	Auctioneer   string  `json:"auctioneer"`
	Lots         int     `json:"lots"`
	Quantity     float64 `json:"quantity"`
	QuantitySold float64 `json:"quantitySold"`
	MaxPrice     float64 `json:"maxPrice"`
	AveragePrice float64 `json:"averagePrice"`
	Type         string  `json:"type"`
}

// Key returns the record identifier as a string, suitable for building
// navigation targets such as "/auctions/edit/42".
func (r Record) Key() string {
	return strconv.FormatInt(r.ID, 10)
}
