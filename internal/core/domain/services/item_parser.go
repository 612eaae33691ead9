package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsedItem is one (quantity, item) pair extracted from a free-text order.
type ParsedItem struct {
	Qty  decimal.Decimal
	Name string
}

// ParseItems turns a free-text order string into an ordered sequence of
// (quantity, item) pairs. The output order matches the input fragment order,
// which drives display and bill sequencing.
//
// The text is split on commas into fragments. Within each fragment, if at
// least two whitespace-separated tokens exist and the first parses as a
// number, that number is the quantity and the remaining tokens joined by
// single spaces are the item name. Otherwise the quantity defaults to 1 and
// the item is the whole trimmed fragment, including the case where the first
// token looked numeric but did not parse.
//
// A fragment that is empty after trimming yields a zero-quantity, empty-name
// pair rather than being dropped, so stored rows stay aligned with the raw
// text. Quantities may be fractional ("2.5 dal").
func ParseItems(text string) []ParsedItem {
	fragments := strings.Split(text, ",")
	items := make([]ParsedItem, 0, len(fragments))

	for _, fragment := range fragments {
		trimmed := strings.TrimSpace(fragment)
		if trimmed == "" {
			items = append(items, ParsedItem{Qty: decimal.Zero, Name: ""})
			continue
		}

		tokens := strings.Fields(trimmed)
		if len(tokens) >= 2 {
			if qty, err := decimal.NewFromString(tokens[0]); err == nil {
				items = append(items, ParsedItem{
					Qty:  qty,
					Name: strings.Join(tokens[1:], " "),
				})
				continue
			}
		}

		items = append(items, ParsedItem{Qty: decimal.NewFromInt(1), Name: trimmed})
	}

	return items
}
