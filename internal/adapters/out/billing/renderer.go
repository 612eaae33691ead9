// Package billing renders orders into printable fixed-width text bills and
// archives one bill per order in a bills directory.
package billing

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"kirana/internal/core/domain/model/order"
)

const (
	pageWidth = 72

	// itemsPerPage bounds one page of line items. Overflowing items continue
	// on the next page without repeating the header block.
	itemsPerPage = 40

	timestampLayout = "2006-01-02 15:04:05"
)

// StoreInfo is the letterhead printed on every bill.
type StoreInfo struct {
	Name       string
	Address    string
	Phone      string
	Proprietor string
}

// TextBillRenderer implements ports.BillRenderer as plain text.
type TextBillRenderer struct {
	store StoreInfo
	now   func() time.Time
}

func NewTextBillRenderer(store StoreInfo) *TextBillRenderer {
	return &TextBillRenderer{store: store, now: time.Now}
}

// Render produces the bill document: letterhead, proprietor and date,
// customer block, the item table, grand total and an authorization footer.
func (r *TextBillRenderer) Render(aggregate *order.Order) ([]byte, error) {
	if aggregate == nil {
		return nil, fmt.Errorf("billing: nil order")
	}

	now := r.now().UTC()
	var buf bytes.Buffer

	writeCentered(&buf, r.store.Name)
	writeCentered(&buf, r.store.Address)
	writeCentered(&buf, "Phone: "+r.store.Phone)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Pro. %s\n", r.store.Proprietor)
	fmt.Fprintf(&buf, "Date: %s\n", now.Format(timestampLayout))
	buf.WriteString("\n")

	customer := aggregate.Customer()
	fmt.Fprintf(&buf, "Name: %s\n", customer.Name())
	fmt.Fprintf(&buf, "Phone: %s\n", customer.Phone())
	buf.WriteString("Address:\n")
	for _, line := range wrap(customer.Address(), pageWidth-4) {
		fmt.Fprintf(&buf, "    %s\n", line)
	}
	fmt.Fprintf(&buf, "Order ID: %s\n", aggregate.ID().String())
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "%-28s%-10s%-14s%s\n", "Item", "Qty", "Unit Price", "Item Total")
	buf.WriteString(strings.Repeat("-", pageWidth) + "\n")

	for i, item := range aggregate.Items() {
		if i > 0 && i%itemsPerPage == 0 {
			buf.WriteString("\f")
		}
		fmt.Fprintf(&buf, "%-28s%-10s%-14s%s\n",
			item.Name(),
			item.Qty().String(),
			"Rs "+item.UnitPrice().String(),
			"Rs "+item.Total().String(),
		)
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "%52s Rs %s\n", "Grand Total:", aggregate.TotalPrice().String())
	buf.WriteString("\n")

	footer := fmt.Sprintf("Authorized by %s | %s", r.store.Name, now.Format(timestampLayout))
	fmt.Fprintf(&buf, "%*s\n", pageWidth, footer)

	return buf.Bytes(), nil
}

func writeCentered(buf *bytes.Buffer, text string) {
	pad := (pageWidth - len([]rune(text))) / 2
	if pad < 0 {
		pad = 0
	}
	buf.WriteString(strings.Repeat(" ", pad) + text + "\n")
}

// wrap splits text into lines no wider than width, breaking at spaces.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
