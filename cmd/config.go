package cmd

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverCSV      = "csv"
)

type Config struct {
	HTTPPort string

	// StorageDriver selects the order store: "postgres" or "csv".
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Flat-file store paths, used when StorageDriver is "csv".
	OrdersFile     string
	OrderItemsFile string

	BillsDir   string
	AdminToken string

	// PriceCatalog is the raw "name=price" pair list from the environment.
	PriceCatalog string

	StoreName       string
	StoreAddress    string
	StorePhone      string
	StoreProprietor string
}

// defaultCatalog matches the storefront's stock list. Used when PRICE_CATALOG
// is not configured.
var defaultCatalog = map[string]decimal.Decimal{
	"rice":    decimal.NewFromInt(50),
	"biscuit": decimal.NewFromInt(10),
	"sugar":   decimal.NewFromInt(40),
	"dal":     decimal.NewFromInt(100),
}

// ParseCatalog turns the configured "name=price,name=price" list into a price
// map. Pairs that do not parse are dropped; an empty or fully invalid list
// falls back to the default catalog.
func (c Config) ParseCatalog() map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal)

	for _, pair := range strings.Split(c.PriceCatalog, ",") {
		name, rawPrice, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		name = strings.ToLower(strings.TrimSpace(name))
		price, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
		if err != nil || name == "" || price.IsNegative() {
			continue
		}
		prices[name] = price
	}

	if len(prices) == 0 {
		return defaultCatalog
	}
	return prices
}
