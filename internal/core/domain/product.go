package domain

import "github.com/shopspring/decimal"

type Product struct {
	ProductID       string
	Name            string
	Description     string
	Price           decimal.Decimal
	Image           string
	Category        string
	Brand           string
	Rating          float64
	DeliveryOptions []string
}

// CatalogFilter narrows a catalog listing.
// Zero values mean "no constraint".
type CatalogFilter struct {
	Category  string
	Brand     string
	MinPrice  decimal.Decimal
	MaxPrice  decimal.Decimal
	MinRating float64
	Delivery  string
}

// CatalogFacets lists the distinct filter options present
// in the catalog.
type CatalogFacets struct {
	Categories []string
	Brands     []string
}
