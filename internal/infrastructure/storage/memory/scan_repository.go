package memory

import (
	"context"
	"sort"

	"golang.org/x/exp/slog"

	"phishguard/internal/domain/scan"
)

type ScanRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewScanRepository(storage *Storage, log *slog.Logger) *ScanRepository {
	return &ScanRepository{
		storage: storage,
		log:     log,
	}
}

func (r *ScanRepository) Create(_ context.Context, sc *scan.Scan) (int, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextScanID
	s.nextScanID++

	stored := *sc
	stored.ID = id
	stored.Details = append([]string(nil), sc.Details...)
	s.scans[id] = stored

	return id, nil
}

func (r *ScanRepository) Get(_ context.Context, id int) (*scan.Scan, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.scans[id]
	if !ok {
		return nil, scan.ErrNotFound
	}

	result := stored
	result.Details = append([]string(nil), stored.Details...)
	return &result, nil
}

func (r *ScanRepository) List(_ context.Context, limit, offset int) ([]scan.Scan, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := r.sortedLocked(nil)

	if offset >= len(all) {
		return []scan.Scan{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], nil
}

func (r *ScanRepository) ListByType(_ context.Context, typ scan.ScanType, limit int) ([]scan.Scan, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := r.sortedLocked(func(sc scan.Scan) bool { return sc.Type == typ })

	if limit < len(filtered) {
		filtered = filtered[:limit]
	}

	return filtered, nil
}

func (r *ScanRepository) Stats(_ context.Context) (scan.Stats, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := scan.Stats{}
	for _, sc := range s.scans {
		stats.TotalScans++
		switch sc.Verdict {
		case scan.VerdictSafe:
			stats.SafeCount++
		case scan.VerdictPhishing:
			stats.PhishingCount++
		case scan.VerdictSuspicious:
			stats.SuspiciousCount++
		}
	}

	return stats, nil
}

// sortedLocked возвращает копии сканов, свежие первыми. Вызывать под mu.
func (r *ScanRepository) sortedLocked(keep func(scan.Scan) bool) []scan.Scan {
	s := r.storage

	result := make([]scan.Scan, 0, len(s.scans))
	for _, sc := range s.scans {
		if keep != nil && !keep(sc) {
			continue
		}
		c := sc
		c.Details = append([]string(nil), sc.Details...)
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result
}
