package billing

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirBillArchive implements ports.BillArchive over a directory, one file per
// order named Bill_<OrderID>.txt. Writes go through a temporary file and an
// atomic rename so a crash cannot leave a truncated bill.
type DirBillArchive struct {
	dir string
}

func NewDirBillArchive(dir string) *DirBillArchive {
	return &DirBillArchive{dir: dir}
}

func (a *DirBillArchive) Save(orderID string, bill []byte) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create bills directory: %w", err)
	}

	path := filepath.Join(a.dir, fmt.Sprintf("Bill_%s.txt", orderID))

	tmp, err := os.CreateTemp(a.dir, "bill*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(bill)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}
	return path, nil
}
