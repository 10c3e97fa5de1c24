package scan

import (
	"context"
)

// Repository хранит сканы; реализации: memory и postgres.
type Repository interface {
	Create(ctx context.Context, scan *Scan) (int, error)
	Get(ctx context.Context, id int) (*Scan, error)
	List(ctx context.Context, limit, offset int) ([]Scan, error)
	ListByType(ctx context.Context, typ ScanType, limit int) ([]Scan, error)
	Stats(ctx context.Context) (Stats, error)
}
