// Package csvstore implements the order store over two co-located CSV files,
// the legacy format of the original intake sheet: orders.csv and
// order_items.csv, keyed by OrderID.
//
// The files have no native transaction support, so the store imposes the
// required discipline itself:
//
//   - a single writer mutex serializes every mutating unit of work, including
//     the load-modify-save cycle around it
//   - every commit rewrites the whole state through a temporary file followed
//     by an atomic rename, so a crash mid-write cannot leave a truncated store
//   - loading is best-effort: a missing file is an empty store, malformed rows
//     are skipped and counted instead of failing the load, and missing
//     optional columns default to the empty string
//
// Reads run without the writer lock and observe at most the latest completed
// write.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"

	"github.com/shopspring/decimal"
)

// timestampLayout is the creation-time format used in the orders file.
const timestampLayout = "2006-01-02 15:04:05"

var ordersHeader = []string{
	"OrderID", "Name", "Phone", "Email", "Address", "Order", "TotalPrice", "Status", "Timestamp",
}

var itemsHeader = []string{
	"OrderID", "Item", "Qty", "UnitPrice", "ItemTotal",
}

// ErrNoActiveUnitOfWork is returned by Commit and Rollback when no unit of
// work is active.
var ErrNoActiveUnitOfWork = errors.New("csvstore: no active unit of work")

// Store owns the two backing files. It serves as the unit-of-work factory for
// the write side and implements ports.OrderViews for the read side.
type Store struct {
	ordersPath string
	itemsPath  string
	logger     *slog.Logger

	// writerMu is the single-writer boundary for all mutating operations.
	writerMu sync.Mutex
}

// NewStore creates a store over the given file paths. The files need not
// exist yet; they appear on the first committed write.
func NewStore(ordersPath, itemsPath string, logger *slog.Logger) *Store {
	return &Store{
		ordersPath: ordersPath,
		itemsPath:  itemsPath,
		logger:     logger.With("component", "csvstore"),
	}
}

// Create returns a unit of work holding the writer boundary from Begin until
// Commit or Rollback.
func (s *Store) Create() ports.UnitOfWork {
	return &unitOfWork{store: s}
}

// orderRecord is one row of orders.csv.
type orderRecord struct {
	OrderID    string
	Name       string
	Phone      string
	Email      string
	Address    string
	RawText    string
	TotalPrice decimal.Decimal
	Status     order.Status
	CreatedAt  time.Time
}

// itemRecord is one row of order_items.csv.
type itemRecord struct {
	OrderID   string
	Item      string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
	ItemTotal decimal.Decimal
}

// state is the whole content of both files, the unit of durability.
type state struct {
	orders        []orderRecord
	items         []itemRecord
	skippedOrders int
	skippedItems  int
}

// LoadReport summarizes a load for operator awareness.
type LoadReport struct {
	Orders        int
	Items         int
	SkippedOrders int
	SkippedItems  int
}

// Report loads the current state and returns row and skip counts.
func (s *Store) Report(_ context.Context) LoadReport {
	st := s.loadState()
	return LoadReport{
		Orders:        len(st.orders),
		Items:         len(st.items),
		SkippedOrders: st.skippedOrders,
		SkippedItems:  st.skippedItems,
	}
}

// loadState reads both files. It never fails for data-quality reasons:
// unreadable rows are skipped and counted, unreadable files degrade to empty
// with a logged warning.
func (s *Store) loadState() state {
	var st state

	orderRows, skipped := s.readRows(s.ordersPath, len(ordersHeader))
	st.skippedOrders = skipped
	for _, row := range orderRows {
		record, ok := parseOrderRow(row)
		if !ok {
			st.skippedOrders++
			continue
		}
		st.orders = append(st.orders, record)
	}

	itemRows, skipped := s.readRows(s.itemsPath, len(itemsHeader))
	st.skippedItems = skipped
	for _, row := range itemRows {
		record, ok := parseItemRow(row)
		if !ok {
			st.skippedItems++
			continue
		}
		st.items = append(st.items, record)
	}

	if st.skippedOrders > 0 || st.skippedItems > 0 {
		s.logger.Warn("skipped malformed rows during load",
			"skipped_orders", st.skippedOrders,
			"skipped_items", st.skippedItems,
		)
	}

	return st
}

// readRows reads all data rows of one file, padding short rows with empty
// strings so missing optional columns default to "". Rows longer than the
// header keep their extra fields ignored. A missing file is an empty store.
func (s *Store) readRows(path string, width int) (rows [][]string, skipped int) {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("store file unreadable, treating as empty", "path", path, "error", err)
		}
		return nil, 0
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if first {
			first = false
			if len(row) > 0 && row[0] == ordersHeader[0] {
				continue // header row
			}
		}

		for len(row) < width {
			row = append(row, "")
		}
		rows = append(rows, row)
	}

	return rows, skipped
}

func parseOrderRow(row []string) (orderRecord, bool) {
	if strings.TrimSpace(row[0]) == "" {
		return orderRecord{}, false
	}

	totalPrice, err := parseDecimal(row[6])
	if err != nil {
		return orderRecord{}, false
	}

	status, err := order.StatusFromString(row[7])
	if err != nil {
		return orderRecord{}, false
	}

	createdAt, err := parseTimestamp(row[8])
	if err != nil {
		return orderRecord{}, false
	}

	return orderRecord{
		OrderID:    row[0],
		Name:       row[1],
		Phone:      row[2],
		Email:      row[3],
		Address:    row[4],
		RawText:    row[5],
		TotalPrice: totalPrice,
		Status:     status,
		CreatedAt:  createdAt,
	}, true
}

func parseItemRow(row []string) (itemRecord, bool) {
	if strings.TrimSpace(row[0]) == "" {
		return itemRecord{}, false
	}

	qty, err := parseDecimal(row[2])
	if err != nil {
		return itemRecord{}, false
	}
	unitPrice, err := parseDecimal(row[3])
	if err != nil {
		return itemRecord{}, false
	}
	itemTotal, err := parseDecimal(row[4])
	if err != nil {
		return itemRecord{}, false
	}

	return itemRecord{
		OrderID:   row[0],
		Item:      row[1],
		Qty:       qty,
		UnitPrice: unitPrice,
		ItemTotal: itemTotal,
	}, true
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(timestampLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// writeState rewrites both files from the given state. Each file goes through
// a temporary file in the same directory followed by an atomic rename.
func (s *Store) writeState(st state) error {
	ordersRows := make([][]string, 0, len(st.orders)+1)
	ordersRows = append(ordersRows, ordersHeader)
	for _, record := range st.orders {
		ordersRows = append(ordersRows, []string{
			record.OrderID,
			record.Name,
			record.Phone,
			record.Email,
			record.Address,
			record.RawText,
			record.TotalPrice.String(),
			record.Status.String(),
			record.CreatedAt.UTC().Format(timestampLayout),
		})
	}

	itemsRows := make([][]string, 0, len(st.items)+1)
	itemsRows = append(itemsRows, itemsHeader)
	for _, record := range st.items {
		itemsRows = append(itemsRows, []string{
			record.OrderID,
			record.Item,
			record.Qty.String(),
			record.UnitPrice.String(),
			record.ItemTotal.String(),
		})
	}

	if err := writeFileAtomic(s.ordersPath, ordersRows); err != nil {
		return err
	}
	return writeFileAtomic(s.itemsPath, itemsRows)
}

func writeFileAtomic(path string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err = writer.WriteAll(rows); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}
