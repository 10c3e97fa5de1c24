package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"phishguard/internal/domain/scan"
)

type ScanRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewScanRepository(storage *Storage, log *slog.Logger) *ScanRepository {
	return &ScanRepository{
		pool: storage.Pool(),
		log:  log,
	}
}

func (r *ScanRepository) Create(ctx context.Context, sc *scan.Scan) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO scans (type, target, verdict, confidence, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		sc.Type, sc.Target, sc.Verdict, sc.Confidence, sc.Details, sc.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert scan: %w", err)
	}

	return id, nil
}

func (r *ScanRepository) Get(ctx context.Context, id int) (*scan.Scan, error) {
	var sc scan.Scan
	err := r.pool.QueryRow(ctx,
		`SELECT id, type, target, verdict, confidence, details, created_at
		 FROM scans WHERE id = $1`, id).
		Scan(&sc.ID, &sc.Type, &sc.Target, &sc.Verdict, &sc.Confidence, &sc.Details, &sc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, scan.ErrNotFound
		}
		return nil, fmt.Errorf("select scan: %w", err)
	}

	return &sc, nil
}

func (r *ScanRepository) List(ctx context.Context, limit, offset int) ([]scan.Scan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, type, target, verdict, confidence, details, created_at
		 FROM scans ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select scans: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func (r *ScanRepository) ListByType(ctx context.Context, typ scan.ScanType, limit int) ([]scan.Scan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, type, target, verdict, confidence, details, created_at
		 FROM scans WHERE type = $1 ORDER BY created_at DESC, id DESC LIMIT $2`, typ, limit)
	if err != nil {
		return nil, fmt.Errorf("select scans by type: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func (r *ScanRepository) Stats(ctx context.Context) (scan.Stats, error) {
	var stats scan.Stats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE verdict = 'safe'),
		        COUNT(*) FILTER (WHERE verdict = 'phishing'),
		        COUNT(*) FILTER (WHERE verdict = 'suspicious')
		 FROM scans`).
		Scan(&stats.TotalScans, &stats.SafeCount, &stats.PhishingCount, &stats.SuspiciousCount)
	if err != nil {
		return scan.Stats{}, fmt.Errorf("select stats: %w", err)
	}

	return stats, nil
}

func scanRows(rows pgx.Rows) ([]scan.Scan, error) {
	result := make([]scan.Scan, 0)
	for rows.Next() {
		var sc scan.Scan
		if err := rows.Scan(&sc.ID, &sc.Type, &sc.Target, &sc.Verdict, &sc.Confidence, &sc.Details, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		result = append(result, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return result, nil
}
