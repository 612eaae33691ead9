package ports

import (
	"kirana/internal/core/domain/model/order"
)

// BillRenderer renders a finalized order and its line items into a printable
// document. Layout and pagination are the renderer's concern; the core only
// supplies the data. Rendering is synchronous and bounded by input size.
type BillRenderer interface {
	Render(aggregate *order.Order) ([]byte, error)
}

// BillArchive stores rendered bills for later retrieval, one per order.
type BillArchive interface {
	// Save persists the rendered bill and returns the archive path.
	Save(orderID string, bill []byte) (string, error)
}
