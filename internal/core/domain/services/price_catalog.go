package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PriceCatalog maps item names to unit prices. It is built once at startup
// from configuration and never mutated afterwards, so it is safe to share
// across goroutines.
type PriceCatalog struct {
	prices map[string]decimal.Decimal
}

// NewPriceCatalog builds a catalog from the given mapping. Keys are stored
// lower-cased; the input map is copied.
func NewPriceCatalog(prices map[string]decimal.Decimal) PriceCatalog {
	normalized := make(map[string]decimal.Decimal, len(prices))
	for name, price := range prices {
		normalized[strings.ToLower(name)] = price
	}
	return PriceCatalog{prices: normalized}
}

// PriceOf returns the unit price for an item name. The lookup key is the name
// lower-cased with no other normalization. Unknown names resolve to 0, which
// marks the line for operator pricing at confirmation.
func (c PriceCatalog) PriceOf(name string) decimal.Decimal {
	if price, ok := c.prices[strings.ToLower(name)]; ok {
		return price
	}
	return decimal.Zero
}

// Len returns the number of catalog entries.
func (c PriceCatalog) Len() int {
	return len(c.prices)
}
