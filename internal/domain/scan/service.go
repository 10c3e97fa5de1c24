package scan

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const (
	DefaultListLimit = 50
)

// URLAnalyzer оценивает сырую строку URL.
type URLAnalyzer interface {
	AnalyzeURL(rawURL string) Analysis
}

// ScreenshotAnalyzer оценивает загруженный скриншот.
// Реализация по умолчанию — мок; контракт только на форму результата.
type ScreenshotAnalyzer interface {
	AnalyzeScreenshot(filename string, data []byte) Analysis
}

type Servicer interface {
	AnalyzeURL(ctx context.Context, rawURL string) (AnalyzeResult, error)
	AnalyzeScreenshot(ctx context.Context, filename string, data []byte) (AnalyzeResult, error)
	Get(ctx context.Context, id int) (*Scan, error)
	List(ctx context.Context, limit, offset int) ([]Scan, error)
	ListByType(ctx context.Context, typ ScanType, limit int) ([]Scan, error)
	Stats(ctx context.Context) (Stats, error)
}

// AnalyzeResult — ответ analyze-эндпоинтов: результат скоринга плюс id
// сохраненного скана. AnalysisTime косметическое, не измеряется.
type AnalyzeResult struct {
	ScanID       int      `json:"scanId"`
	Verdict      Verdict  `json:"verdict"`
	Confidence   int      `json:"confidence"`
	Details      []string `json:"details"`
	AnalysisTime float64  `json:"analysisTime"`
}

type Service struct {
	repo        Repository
	urls        URLAnalyzer
	screenshots ScreenshotAnalyzer
	log         *slog.Logger
}

func NewService(repo Repository, urls URLAnalyzer, screenshots ScreenshotAnalyzer, log *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		urls:        urls,
		screenshots: screenshots,
		log:         log.With("component", "scan_service"),
	}
}

// AnalyzeURL прогоняет URL через скорер и сохраняет скан.
func (s *Service) AnalyzeURL(ctx context.Context, rawURL string) (AnalyzeResult, error) {
	if strings.TrimSpace(rawURL) == "" {
		return AnalyzeResult{}, ErrInvalidInput
	}

	analysis := s.urls.AnalyzeURL(rawURL)

	record := &Scan{
		Type:       TypeURL,
		Target:     rawURL,
		Verdict:    analysis.Verdict,
		Confidence: analysis.Confidence,
		Details:    analysis.Details,
		CreatedAt:  time.Now(),
	}

	scanID, err := s.repo.Create(ctx, record)
	if err != nil {
		s.log.Error("failed to store url scan", "error", err)
		return AnalyzeResult{}, fmt.Errorf("create scan: %w", err)
	}

	s.log.Info("url analyzed",
		"scan_id", scanID,
		"verdict", analysis.Verdict,
		"confidence", analysis.Confidence,
	)

	return AnalyzeResult{
		ScanID:       scanID,
		Verdict:      analysis.Verdict,
		Confidence:   analysis.Confidence,
		Details:      analysis.Details,
		AnalysisTime: rand.Float64()*2 + 0.5,
	}, nil
}

// AnalyzeScreenshot прогоняет скриншот через мок-скорер и сохраняет скан.
// target — оригинальное имя файла.
func (s *Service) AnalyzeScreenshot(ctx context.Context, filename string, data []byte) (AnalyzeResult, error) {
	if filename == "" {
		return AnalyzeResult{}, ErrInvalidInput
	}

	analysis := s.screenshots.AnalyzeScreenshot(filename, data)

	record := &Scan{
		Type:       TypeScreenshot,
		Target:     filename,
		Verdict:    analysis.Verdict,
		Confidence: analysis.Confidence,
		Details:    analysis.Details,
		CreatedAt:  time.Now(),
	}

	scanID, err := s.repo.Create(ctx, record)
	if err != nil {
		s.log.Error("failed to store screenshot scan", "error", err)
		return AnalyzeResult{}, fmt.Errorf("create scan: %w", err)
	}

	s.log.Info("screenshot analyzed",
		"scan_id", scanID,
		"filename", filename,
		"verdict", analysis.Verdict,
		"confidence", analysis.Confidence,
	)

	return AnalyzeResult{
		ScanID:       scanID,
		Verdict:      analysis.Verdict,
		Confidence:   analysis.Confidence,
		Details:      analysis.Details,
		AnalysisTime: rand.Float64()*3 + 1,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Scan, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get scan", "scan_id", id, "error", err)
		return nil, fmt.Errorf("get scan: %w", err)
	}

	return record, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Scan, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.log.Error("failed to list scans", "error", err)
		return nil, fmt.Errorf("list scans: %w", err)
	}

	return records, nil
}

func (s *Service) ListByType(ctx context.Context, typ ScanType, limit int) ([]Scan, error) {
	if !typ.Valid() {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	records, err := s.repo.ListByType(ctx, typ, limit)
	if err != nil {
		s.log.Error("failed to list scans by type", "type", typ, "error", err)
		return nil, fmt.Errorf("list scans by type: %w", err)
	}

	return records, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.log.Error("failed to get stats", "error", err)
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}

	return stats, nil
}
